package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "token:revoked:"

// RedisList is a Redis-backed registry for multi-instance deployments.
// Keys carry a TTL so revocations expire with the tokens they block.
type RedisList struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisList builds a registry whose entries live for ttl, which
// should be at least the token lifetime.
func NewRedisList(rdb *redis.Client, ttl time.Duration) *RedisList {
	return &RedisList{rdb: rdb, ttl: ttl}
}

func (l *RedisList) Revoke(ctx context.Context, token string) error {
	return l.rdb.Set(ctx, revokedKeyPrefix+token, "1", l.ttl).Err()
}

func (l *RedisList) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := l.rdb.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (l *RedisList) Clear(ctx context.Context) error {
	iter := l.rdb.Scan(ctx, 0, revokedKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := l.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (l *RedisList) Size(ctx context.Context) (int64, error) {
	var n int64
	iter := l.rdb.Scan(ctx, 0, revokedKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		n++
	}
	return n, iter.Err()
}

var _ RevocationList = (*RedisList)(nil)
