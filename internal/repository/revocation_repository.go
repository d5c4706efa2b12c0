package repository

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "auth:revoked:"

// RevocationRepository is a Redis-backed revocation store. Entries carry a
// TTL equal to the token's remaining lifetime, so they expire together with
// the token they block.
type RevocationRepository struct {
	client *redis.Client
}

// NewRevocationRepository returns a Redis-backed implementation.
func NewRevocationRepository(client *redis.Client) *RevocationRepository {
	return &RevocationRepository{client: client}
}

// Revoke marks the token revoked until its natural expiry. A non-positive
// TTL means the token already expired and nothing needs storing.
func (r *RevocationRepository) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revocationKey(token), "1", ttl).Err()
}

// IsRevoked reports whether the token has been revoked.
func (r *RevocationRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// revocationKey fingerprints the token so Redis keys stay bounded regardless
// of token length.
func revocationKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revocationKeyPrefix + base64.RawURLEncoding.EncodeToString(sum[:])
}
