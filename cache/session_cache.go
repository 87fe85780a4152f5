// Package cache holds Redis-backed lookaside state. Every helper degrades
// to a safe default when Redis is not configured, so the server can run
// without it.
package cache

import (
	"context"
	"fmt"
	"time"

	"DistroFM/db"
	"DistroFM/logger"
)

const revokedKeyPrefix = "distrofm:revoked:"

// RevokeToken marks a token id as revoked until its expiry. A no-op when
// Redis is unavailable.
func RevokeToken(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if db.RedisClient == nil || tokenID == "" {
		return nil
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil // Already expired, nothing to revoke
	}

	key := revokedKeyPrefix + tokenID
	if err := db.RedisClient.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token %s: %w", tokenID, err)
	}
	logger.Debug("Token revoked", logger.String("tokenId", tokenID))
	return nil
}

// IsTokenRevoked reports whether a token id has been revoked. Without
// Redis every token is treated as live.
func IsTokenRevoked(ctx context.Context, tokenID string) bool {
	if db.RedisClient == nil || tokenID == "" {
		return false
	}

	n, err := db.RedisClient.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		logger.Warn("Failed to check token revocation", logger.ErrorField(err))
		return false
	}
	return n > 0
}
