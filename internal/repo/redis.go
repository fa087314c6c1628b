package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
)

// redisSlotRepo stores each slot as a plain Redis string under prefix+key.
// SET replaces the value in one step, which gives Put its atomicity.
type redisSlotRepo struct {
	client redis.Cmdable
	prefix string
}

// NewRedisSlotRepo constructs a SlotRepo on top of an existing Redis client.
// prefix namespaces the keys, e.g. "trips:".
func NewRedisSlotRepo(client redis.Cmdable, prefix string) SlotRepo {
	return &redisSlotRepo{client: client, prefix: prefix}
}

func (r *redisSlotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, fmt.Errorf("repo.redisSlotRepo.Get: %w", err)
	}
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("repo.redisSlotRepo.Get: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.redisSlotRepo.Get: %w", err)
	}
	return data, nil
}

func (r *redisSlotRepo) Put(ctx context.Context, key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.redisSlotRepo.Put: %w", err)
	}
	if err := r.client.Set(ctx, r.prefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("repo.redisSlotRepo.Put: %w", err)
	}
	return nil
}

func (r *redisSlotRepo) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return fmt.Errorf("repo.redisSlotRepo.Delete: %w", err)
	}
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("repo.redisSlotRepo.Delete: %w", err)
	}
	return nil
}
