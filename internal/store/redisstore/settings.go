// Package redisstore remembers each user's last-used business settings so a
// fresh client can pick them up again. This is a convenience collaborator:
// the conversation core never reads it and callers still attach settings to
// every request themselves.
package redisstore

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/motiondesk/server/internal/chat"
)

const settingsTTL = 90 * 24 * time.Hour

type Store struct {
	rdb *redis.Client
}

func New(addr, password string) *Store {
	return &Store{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

func settingsKey(userID string) string { return "settings:" + userID }

func (s *Store) SaveSettings(ctx context.Context, userID string, settings *chat.Settings) error {
	b, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, settingsKey(userID), b, settingsTTL).Err()
}

// GetSettings returns nil, nil when the user has no remembered settings.
func (s *Store) GetSettings(ctx context.Context, userID string) (*chat.Settings, error) {
	raw, err := s.rdb.Get(ctx, settingsKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var settings chat.Settings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *Store) Close() error { return s.rdb.Close() }
