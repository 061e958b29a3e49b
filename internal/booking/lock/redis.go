package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisLock holds a short-lived per-slot lock while a booking mutates
// slot availability. The TTL bounds how long a crashed request can keep
// a slot held.
type RedisLock struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisLock(client *redis.Client, ttl time.Duration) *RedisLock {
	return &RedisLock{Client: client, TTL: ttl}
}

func slotKey(slotID string) string {
	return "slot_lock:" + slotID
}

func (r *RedisLock) Lock(ctx context.Context, slotID, token string) (bool, error) {
	return r.Client.SetNX(ctx, slotKey(slotID), token, r.TTL).Result()
}

// Unlock releases the lock only when it is still held by token, so an
// expired lock re-acquired by another booking is never deleted.
func (r *RedisLock) Unlock(ctx context.Context, slotID, token string) error {
	val, err := r.Client.Get(ctx, slotKey(slotID)).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}
	if val != token {
		return nil
	}
	_, err = r.Client.Del(ctx, slotKey(slotID)).Result()
	return err
}
