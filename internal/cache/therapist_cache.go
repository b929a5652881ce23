package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"serenity-backend/internal/model"
)

// ErrMiss is returned when a key is not cached.
var ErrMiss = errors.New("cache miss")

const (
	therapistPrefix = "therapists:list:"
	therapistGenKey = "therapists:gen"
	invalidateBatch = 100
)

// TherapistCache holds directory listings keyed by their filter.
//
// Listings are stored under a generation number. Readers take the
// generation before querying the database and write back under it, so a
// listing computed before an Invalidate can never be served after it.
type TherapistCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, key string) ([]model.Therapist, error)
	Set(ctx context.Context, gen int64, key string, list []model.Therapist) error
	// Invalidate retires the current generation and drops every cached listing.
	Invalidate(ctx context.Context) error
}

type therapistCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewTherapistCache(client *redis.Client, ttl time.Duration) TherapistCache {
	return &therapistCache{client: client, ttl: ttl}
}

func listKey(gen int64, key string) string {
	return fmt.Sprintf("%s%d:%s", therapistPrefix, gen, key)
}

func (c *therapistCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, therapistGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *therapistCache) Get(ctx context.Context, gen int64, key string) ([]model.Therapist, error) {
	data, err := c.client.Get(ctx, listKey(gen, key)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var list []model.Therapist
	err = json.Unmarshal([]byte(data), &list)
	return list, err
}

func (c *therapistCache) Set(ctx context.Context, gen int64, key string, list []model.Therapist) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey(gen, key), data, c.ttl).Err()
}

func (c *therapistCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, therapistGenKey).Err(); err != nil {
		return err
	}
	iter := c.client.Scan(ctx, 0, therapistPrefix+"*", invalidateBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// NewClient connects to redis and verifies the connection.
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
