package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore Redis 緩存服務（cache.backend=redis 時啟用）
type RedisStore struct {
	client *redis.Client
	config *config.Config
}

// NewRedisStore 創建 Redis 緩存服務
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存
func (s *RedisStore) Get(ctx context.Context, prompt string) (string, error) {
	key := s.generateKey(prompt)

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("generation", key)
			return "", common.ErrCacheDisabled
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("generation", key)
	return data, nil
}

// Set 設置緩存
func (s *RedisStore) Set(ctx context.Context, prompt, value string) error {
	key := s.generateKey(prompt)

	if err := s.client.Set(ctx, key, value, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}

	return nil
}

// generateKey 生成緩存鍵
func (s *RedisStore) generateKey(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return "ai:response:" + hex.EncodeToString(hash[:])
}

// Close 關閉 Redis 連線
func (s *RedisStore) Close() error {
	return s.client.Close()
}
