package chat

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a conversation as supplied by the caller.
// Ordering is significant; the caller sends the full history on every request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Settings holds the per-business onboarding configuration. Every field is
// optional; absent means "not provided".
type Settings struct {
	BusinessName  string   `json:"business_name,omitempty"`
	BusinessType  string   `json:"business_type,omitempty"`
	Location      string   `json:"location,omitempty"`
	PricingRules  string   `json:"pricing_rules,omitempty"`
	ToneStyle     string   `json:"tone_style,omitempty"`
	BusinessGoals string   `json:"business_goals,omitempty"`
	UseCases      []string `json:"use_cases,omitempty"`
	OtherUseCase  string   `json:"other_use_case,omitempty"`
}

// ConversationRequest is the canonical shape every accepted payload is
// normalized into.
type ConversationRequest struct {
	Messages []Message
	Settings *Settings
}

type Chat struct {
	ID        string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID    string         `gorm:"type:varchar(64);index;not null" json:"-"`
	Title     string         `gorm:"type:varchar(120);not null" json:"title"`
	Settings  datatypes.JSON `gorm:"type:json" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
}

func (Chat) TableName() string { return "motiondesk_chats" }

type StoredMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"-"`
	ChatID    string    `gorm:"type:varchar(36);index;not null" json:"-"`
	Role      string    `gorm:"type:varchar(16);not null" json:"role"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (StoredMessage) TableName() string { return "motiondesk_messages" }

// ChatSummary is the projection returned by List.
type ChatSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
