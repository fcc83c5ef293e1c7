package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisDenylist keeps signed-out tokens in Redis until their natural expiry.
// Reads fail open (Redis being down must not lock everyone out); writes
// surface their error so signout can log it, but the cookie is cleared
// regardless.
type redisDenylist struct {
	client *redis.Client
}

// NewRedisDenylist creates a TokenDenylist backed by the given Redis client.
func NewRedisDenylist(client *redis.Client) TokenDenylist {
	return &redisDenylist{client: client}
}

var _ TokenDenylist = (*redisDenylist)(nil)

func denylistKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "revoked:" + hex.EncodeToString(sum[:])
}

func (d *redisDenylist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired, nothing to record
	}
	if err := d.client.Set(ctx, denylistKey(token), "1", ttl).Err(); err != nil {
		log.Printf("Failed to record revoked token: %v", err)
		return err
	}
	return nil
}

func (d *redisDenylist) IsRevoked(ctx context.Context, token string) bool {
	n, err := d.client.Exists(ctx, denylistKey(token)).Result()
	if err != nil {
		log.Printf("Denylist lookup failed, allowing token: %v", err)
		return false
	}
	return n > 0
}
