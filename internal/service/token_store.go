package service

import (
	"context"
	"fmt"
	"time"

	"medconnect-api/pkg/jwt"

	"github.com/redis/go-redis/v9"
)

// TokenStore tracks the IDs of issued tokens. A token whose ID is no longer
// present is treated as revoked, which is what logout and refresh rotation
// rely on.
type TokenStore interface {
	Save(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) error
}

type redisTokenStore struct {
	client *redis.Client
}

func NewRedisTokenStore(client *redis.Client) TokenStore {
	return &redisTokenStore{client: client}
}

func tokenKey(tokenType jwt.TokenType, userID uint, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", tokenType, userID, tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string, ttl time.Duration) error {
	return s.client.Set(ctx, tokenKey(tokenType, userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) (bool, error) {
	count, err := s.client.Exists(ctx, tokenKey(tokenType, userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, tokenType jwt.TokenType, userID uint, tokenID string) error {
	return s.client.Del(ctx, tokenKey(tokenType, userID, tokenID)).Err()
}
