package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shopbot/internal/domain"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds abandoned workflows; a sender who walks away mid-wizard
// starts fresh after this long.
const sessionTTL = 24 * time.Hour

// RedisStore persists pending workflows in Redis so sessions survive a
// process restart and can be shared between instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by the given Redis client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(sender string) string {
	return "session:" + sender
}

// Get returns the sender's pending workflow, or nil
func (s *RedisStore) Get(sender string) (*domain.Workflow, error) {
	data, err := s.client.Get(context.Background(), sessionKey(sender)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var wf domain.Workflow
	if err := json.Unmarshal(data, &wf); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &wf, nil
}

// Set replaces the sender's pending workflow
func (s *RedisStore) Set(sender string, wf *domain.Workflow) error {
	data, err := json.Marshal(wf)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(context.Background(), sessionKey(sender), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear removes the sender's pending workflow
func (s *RedisStore) Clear(sender string) error {
	if err := s.client.Del(context.Background(), sessionKey(sender)).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
