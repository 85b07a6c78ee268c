package chat

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// TitleMaxLen is the hard cap on a saved chat title; longer titles are
	// truncated silently.
	TitleMaxLen = 120

	// ListLimit caps how many chats List returns.
	ListLimit = 50
)

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Save creates the chat row and all of its messages in one transaction, so a
// chat with zero messages is never visible to readers. Returns the new chat id.
func (r *Repo) Save(ctx context.Context, userID, title string, msgs []Message, settings *Settings) (string, error) {
	if len(msgs) == 0 {
		return "", ErrEmptyConversation
	}

	if rs := []rune(title); len(rs) > TitleMaxLen {
		title = string(rs[:TitleMaxLen])
	}

	var settingsJSON datatypes.JSON
	if settings != nil {
		b, err := json.Marshal(settings)
		if err != nil {
			return "", err
		}
		settingsJSON = datatypes.JSON(b)
	}

	chatID := uuid.NewString()
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		c := &Chat{
			ID:       chatID,
			UserID:   userID,
			Title:    title,
			Settings: settingsJSON,
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		rows := make([]StoredMessage, 0, len(msgs))
		for _, m := range msgs {
			rows = append(rows, StoredMessage{
				ChatID:  chatID,
				Role:    m.Role,
				Content: m.Content,
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return "", err
	}
	return chatID, nil
}

// List returns the caller's chats, newest first, capped at ListLimit.
func (r *Repo) List(ctx context.Context, userID string) ([]ChatSummary, error) {
	var chats []ChatSummary
	err := r.db.WithContext(ctx).
		Model(&Chat{}).
		Select("id", "title", "created_at").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(ListLimit).
		Scan(&chats).Error
	if err != nil {
		return nil, err
	}
	return chats, nil
}

// Get returns the full ordered transcript and stored settings of one chat.
// The ownership check runs before any message row is read: a missing chat is
// ErrNotFound, someone else's chat is ErrForbidden.
func (r *Repo) Get(ctx context.Context, userID, chatID string) ([]Message, *Settings, error) {
	var c Chat
	if err := r.db.WithContext(ctx).First(&c, "id = ?", chatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	if c.UserID != userID {
		return nil, nil, ErrForbidden
	}

	var rows []StoredMessage
	if err := r.db.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	msgs := make([]Message, 0, len(rows))
	for _, row := range rows {
		msgs = append(msgs, Message{Role: row.Role, Content: row.Content})
	}

	var settings *Settings
	if len(c.Settings) > 0 {
		var s Settings
		if err := json.Unmarshal(c.Settings, &s); err != nil {
			return nil, nil, err
		}
		settings = &s
	}
	return msgs, settings, nil
}
