package chat

import (
	"strings"
	"testing"
)

func TestBuildSystemPrompt_Deterministic(t *testing.T) {
	s := &Settings{
		BusinessName: "Acme Removals",
		PricingRules: "per m3",
		UseCases:     []string{"Quotes", "Emails"},
	}
	first := BuildSystemPrompt(s)
	second := BuildSystemPrompt(s)
	if first != second {
		t.Fatalf("prompt not byte-identical across calls")
	}
}

func TestBuildSystemPrompt_NoSettings(t *testing.T) {
	for _, s := range []*Settings{nil, {}} {
		p := BuildSystemPrompt(s)
		if strings.Contains(p, "BUSINESS SETTINGS") {
			t.Fatalf("expected no settings section, got:\n%s", p)
		}
		if !strings.Contains(p, "You are MotionDesk") {
			t.Fatalf("fixed rules missing from prompt")
		}
		if !strings.Contains(p, "Never claim to lack memory") {
			t.Fatalf("memory disclaimer missing from prompt")
		}
	}
}

func TestBuildSystemPrompt_OmitsEmptyFields(t *testing.T) {
	p := BuildSystemPrompt(&Settings{
		BusinessName: "Acme Removals",
		Location:     "   ", // whitespace only
	})

	if !strings.Contains(p, "Business name: Acme Removals") {
		t.Fatalf("business name line missing:\n%s", p)
	}
	for _, label := range []string{"Location:", "Business type:", "Pricing / quoting rules:", "Tone & style:", "Business goals:", "Preferred use cases:", "Other notes:"} {
		if strings.Contains(p, label) {
			t.Fatalf("unexpected %q line for absent field:\n%s", label, p)
		}
	}
}

func TestBuildSystemPrompt_UseCases(t *testing.T) {
	p := BuildSystemPrompt(&Settings{
		UseCases:     []string{"Quotes & pricing", "Other"},
		OtherUseCase: "Fleet scheduling",
	})
	if !strings.Contains(p, "Preferred use cases: Quotes & pricing, Other") {
		t.Fatalf("use cases not comma-joined in given order:\n%s", p)
	}
	if !strings.Contains(p, "Other notes: Fleet scheduling") {
		t.Fatalf("other notes missing:\n%s", p)
	}
}

func TestBuildSystemPrompt_OtherUseCaseWithoutSentinel(t *testing.T) {
	// other_use_case renders independently of the "Other" label being picked.
	p := BuildSystemPrompt(&Settings{
		UseCases:     []string{"Quotes & pricing"},
		OtherUseCase: "Fleet scheduling",
	})
	if !strings.Contains(p, "Other notes: Fleet scheduling") {
		t.Fatalf("other notes should not depend on the Other sentinel:\n%s", p)
	}
}

func TestBuildSystemPrompt_TrimsValues(t *testing.T) {
	p := BuildSystemPrompt(&Settings{BusinessName: "  Acme Removals  "})
	if !strings.HasSuffix(p, "Business name: Acme Removals") {
		t.Fatalf("value not trimmed:\n%s", p)
	}
}
