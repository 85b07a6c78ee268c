package chat

import (
	"encoding/json"
	"strings"
)

// rawPayload covers every request shape the API has ever accepted. Pointer
// fields distinguish "absent" from "present but empty".
type rawPayload struct {
	Messages *[]Message `json:"messages"`
	Settings *Settings  `json:"settings"`

	// Legacy single-turn shape.
	Message *string `json:"message"`

	// Legacy flat settings fields.
	BusinessInfo string `json:"businessInfo"`
	PricingRules string `json:"pricingRules"`
	Tone         string `json:"tone"`
}

// messageShape is one way of reading a message list out of a payload.
// Shapes are tried in order; the first match wins, so the canonical shape
// always takes precedence over the legacy one.
type messageShape struct {
	name    string
	matches func(*rawPayload) bool
	extract func(*rawPayload) []Message
}

var messageShapes = []messageShape{
	{
		name:    "canonical",
		matches: func(p *rawPayload) bool { return p.Messages != nil },
		extract: func(p *rawPayload) []Message { return *p.Messages },
	},
	{
		name:    "legacy-single-turn",
		matches: func(p *rawPayload) bool { return p.Message != nil },
		extract: func(p *rawPayload) []Message {
			return []Message{{Role: RoleUser, Content: *p.Message}}
		},
	},
}

// Normalize coerces an inbound payload into the canonical ConversationRequest.
// It returns ErrMalformedRequest when the payload matches no accepted shape
// and ErrEmptyConversation when it is well formed but carries no messages.
func Normalize(payload []byte) (*ConversationRequest, error) {
	var raw rawPayload
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, ErrMalformedRequest
	}

	var msgs []Message
	matched := false
	for _, shape := range messageShapes {
		if shape.matches(&raw) {
			msgs = shape.extract(&raw)
			matched = true
			break
		}
	}
	if !matched || len(msgs) == 0 {
		return nil, ErrEmptyConversation
	}
	for _, m := range msgs {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return nil, ErrMalformedRequest
		}
	}

	// Canonical settings win outright; the legacy flat fields are only
	// consulted to fill the gap when no settings object was sent.
	settings := raw.Settings
	if settings == nil {
		settings = legacySettings(&raw)
	}

	return &ConversationRequest{Messages: msgs, Settings: settings}, nil
}

// legacySettings maps the old flat fields into a Settings object so old
// clients keep getting a customized prompt. businessInfo has no modern
// counterpart and is blended into pricing_rules as free text.
func legacySettings(raw *rawPayload) *Settings {
	if raw.BusinessInfo == "" && raw.PricingRules == "" && raw.Tone == "" {
		return nil
	}
	s := &Settings{
		PricingRules: raw.PricingRules,
		ToneStyle:    raw.Tone,
	}
	if raw.BusinessInfo != "" {
		s.PricingRules = strings.TrimSpace(raw.BusinessInfo + "\n\nPricing rules:\n" + s.PricingRules)
	}
	return s
}
