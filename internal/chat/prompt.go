package chat

import "strings"

const promptRules = `You are MotionDesk — an internal assistant for business owners and staff (NOT customer-facing).
You help with quotes/pricing, emails/messages, SOPs/checklists, staff onboarding, job planning, and internal support.

MEMORY:
- You are given the full conversation history in "messages". Use it.
- If the user references "number 1/2/3", infer from your prior list in the same conversation.
- If the user answers with "1." etc, assume they are answering your numbered questions.
- Never claim to lack memory or context. If a fact is not in the business settings, ask the user for it instead of saying you cannot know.

STYLE:
- Keep responses short, direct, and actionable.
- When drafting a quote/email: provide a "Ready to send" version.`

// BuildSystemPrompt compiles onboarding settings into the system instruction.
// It is pure: the same settings always yield byte-identical output. Fields
// that are empty after trimming are omitted entirely; with no settings at all
// the prompt is just the fixed rules.
func BuildSystemPrompt(s *Settings) string {
	var b strings.Builder
	b.WriteString(promptRules)

	lines := settingsLines(s)
	if len(lines) > 0 {
		b.WriteString("\n\nBUSINESS SETTINGS (from onboarding):")
		for _, line := range lines {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return b.String()
}

func settingsLines(s *Settings) []string {
	if s == nil {
		return nil
	}

	var lines []string
	add := func(label, value string) {
		if v := strings.TrimSpace(value); v != "" {
			lines = append(lines, label+": "+v)
		}
	}

	add("Business name", s.BusinessName)
	add("Business type", s.BusinessType)
	add("Location", s.Location)
	add("Pricing / quoting rules", s.PricingRules)
	add("Tone & style", s.ToneStyle)
	add("Business goals", s.BusinessGoals)
	if len(s.UseCases) > 0 {
		add("Preferred use cases", strings.Join(s.UseCases, ", "))
	}
	add("Other notes", s.OtherUseCase)
	return lines
}
