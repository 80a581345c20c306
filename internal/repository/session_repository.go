package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campushub/student-assist-api/internal/models"
)

// SessionRepository stores per-remote-user bot conversation state in Redis.
// Every write refreshes the TTL, so idle sessions expire on their own instead
// of accumulating in an unbounded map.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("bot:session:%d", userID)
}

// Get loads the session for a remote user, or nil when none exists.
func (r *SessionRepository) Get(ctx context.Context, userID int64) (*models.BotSession, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bot session %d: %w", userID, err)
	}

	var session models.BotSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal bot session %d: %w", userID, err)
	}
	return &session, nil
}

// Put stores the session and refreshes its TTL.
func (r *SessionRepository) Put(ctx context.Context, userID int64, session *models.BotSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal bot session %d: %w", userID, err)
	}
	if err := r.client.Set(ctx, sessionKey(userID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("set bot session %d: %w", userID, err)
	}
	return nil
}

// Delete removes the session entirely.
func (r *SessionRepository) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("delete bot session %d: %w", userID, err)
	}
	return nil
}
