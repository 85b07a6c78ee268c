package ai

import "context"

// Message is one entry of the provider payload. Role "system" appears only
// here; the domain model restricts itself to user/assistant.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider performs a single chat completion against an external model API.
type Provider interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// ProviderError wraps any transport or provider-reported failure so callers
// can tell a failed completion apart from a legitimately empty reply.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return "completion provider: " + e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }

// Gateway sends a compiled system instruction plus the full conversation to
// one provider, system message first, conversation order preserved. One call,
// no retry, no fallback.
type Gateway struct {
	provider Provider
}

func NewGateway(p Provider) *Gateway {
	return &Gateway{provider: p}
}

func (g *Gateway) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	payload := make([]Message, 0, len(messages)+1)
	payload = append(payload, Message{Role: "system", Content: system})
	payload = append(payload, messages...)

	reply, err := g.provider.Chat(ctx, payload)
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	// An empty reply is valid if the provider really returned no content.
	return reply, nil
}
