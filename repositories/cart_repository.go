package repositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// CartRepository adapts Redis to the cart.KV contract: plain byte values
// keyed per user, no expiry. A missing key reads as (nil, nil).
type CartRepository struct {
	client *redis.Client
}

func NewCartRepository(client *redis.Client) *CartRepository {
	return &CartRepository{client: client}
}

func (r *CartRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if r.client == nil {
		return nil, nil
	}
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set reports an error when Redis is down; callers treat persistence as
// best-effort and keep the in-memory cart.
func (r *CartRepository) Set(ctx context.Context, key string, value []byte) error {
	if r.client == nil {
		return errors.New("redis unavailable")
	}
	return r.client.Set(ctx, key, value, 0).Err()
}
