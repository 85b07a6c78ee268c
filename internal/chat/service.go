package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/motiondesk/server/internal/ai"
)

// EmptyConversationReply is returned for a well-formed request with no
// messages. The provider is never called in that case.
const EmptyConversationReply = "Send a message to start."

// titleDeriveLen is how much of the first user message becomes the default
// title when the caller saves without one.
const titleDeriveLen = 48

// Service orchestrates one exchange: normalize the payload, compile the
// system prompt, call the completion gateway. It holds no state between
// exchanges; the caller supplies the full history every time.
type Service struct {
	repo    *Repo
	gateway *ai.Gateway
}

func NewService(repo *Repo, gateway *ai.Gateway) *Service {
	return &Service{repo: repo, gateway: gateway}
}

func (s *Service) Converse(ctx context.Context, payload []byte) (string, error) {
	req, err := Normalize(payload)
	if err != nil {
		if errors.Is(err, ErrEmptyConversation) {
			return EmptyConversationReply, nil
		}
		return "", err
	}

	system := BuildSystemPrompt(req.Settings)

	msgs := make([]ai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, ai.Message{Role: m.Role, Content: m.Content})
	}
	return s.gateway.Complete(ctx, system, msgs)
}

// Save persists a transcript under the caller's identity. An empty title is
// derived from the first user message; persistence itself is delegated to the
// repo's transactional Save.
func (s *Service) Save(ctx context.Context, userID, title string, msgs []Message, settings *Settings) (string, error) {
	if len(msgs) == 0 {
		return "", ErrEmptyConversation
	}
	for _, m := range msgs {
		if m.Role != RoleUser && m.Role != RoleAssistant {
			return "", ErrMalformedRequest
		}
	}
	title = strings.TrimSpace(title)
	if title == "" {
		title = deriveTitle(msgs)
	}
	return s.repo.Save(ctx, userID, title, msgs, settings)
}

func (s *Service) List(ctx context.Context, userID string) ([]ChatSummary, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID, chatID string) ([]Message, *Settings, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func deriveTitle(msgs []Message) string {
	for _, m := range msgs {
		if m.Role != RoleUser {
			continue
		}
		t := strings.TrimSpace(m.Content)
		if t == "" {
			continue
		}
		if rs := []rune(t); len(rs) > titleDeriveLen {
			t = string(rs[:titleDeriveLen])
		}
		return t
	}
	return "Saved chat"
}
