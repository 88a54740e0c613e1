package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginAttemptRepository counts failed logins per username in Redis.
// A counter lives for window after its first increment.
type LoginAttemptRepository struct {
	client *redis.Client
	window time.Duration
}

func NewLoginAttemptRepository(client *redis.Client, window time.Duration) *LoginAttemptRepository {
	return &LoginAttemptRepository{
		client: client,
		window: window,
	}
}

func loginAttemptKey(username string) string {
	return fmt.Sprintf("login_attempts:%s", username)
}

// Get returns the current number of failed attempts; a missing key counts as zero.
func (r *LoginAttemptRepository) Get(ctx context.Context, username string) (int64, error) {
	key := loginAttemptKey(username)

	count, err := r.client.Get(ctx, key).Int64()

	logRedis("get", key, count, err)

	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return count, err
}

// Increment records a failed attempt and returns the new count.
func (r *LoginAttemptRepository) Increment(ctx context.Context, username string) (int64, error) {
	key := loginAttemptKey(username)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, r.window)
	_, err := pipe.Exec(ctx)

	count := incr.Val()
	logRedis("incr", key, count, err)

	if err != nil {
		return 0, err
	}
	return count, nil
}

// Reset clears the counter after a successful login.
func (r *LoginAttemptRepository) Reset(ctx context.Context, username string) error {
	key := loginAttemptKey(username)

	err := r.client.Del(ctx, key).Err()

	logRedis("del", key, "deleted", err)

	return err
}
