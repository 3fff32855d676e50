// Package session persists in-progress wizard sessions. The Redis store is
// used when Redis is configured; deployments without Redis fall back to the
// in-memory store (sessions then do not survive a restart).
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"talentai-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const wizardKeyPrefix = "wizard:session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a wizard session repository backed by Redis.
// Sessions expire after ttl of inactivity.
func NewRedisStore(client *redis.Client, ttl time.Duration) domain.WizardSessionRepository {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Get(ctx context.Context, userID string) (*domain.WizardState, error) {
	raw, err := s.client.Get(ctx, wizardKeyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var state domain.WizardState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *redisStore) Save(ctx context.Context, state *domain.WizardState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wizardKeyPrefix+state.UserID, raw, s.ttl).Err()
}

func (s *redisStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, wizardKeyPrefix+userID).Err()
}
