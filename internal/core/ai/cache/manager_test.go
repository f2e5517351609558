package cache

import (
	"context"
	"testing"
	"time"

	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	common.Logger = zap.NewNop()
	m.Run()
}

func newTestConfig(maxSize int, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Minute
	return cfg
}

func TestManagerSetGet(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "chicken rice prompt", "generated text"))

	val, err := m.Get(ctx, "chicken rice prompt")
	require.NoError(t, err)
	assert.Equal(t, "generated text", val)

	// 不同 prompt 不應命中
	_, err = m.Get(ctx, "another prompt")
	assert.Error(t, err)
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(newTestConfig(10, 10*time.Millisecond))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "p", "v"))

	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "p")
	assert.Error(t, err)
}

func TestManagerEviction(t *testing.T) {
	m := NewManager(newTestConfig(2, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "a", "1"))
	require.NoError(t, m.Set(ctx, "b", "2"))

	// 提升 a 的訪問次數，b 成為 LRU 淘汰對象
	_, err := m.Get(ctx, "a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "3"))

	val, err := m.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)

	_, err = m.Get(ctx, "b")
	assert.Error(t, err)
}

func TestManagerDisabled(t *testing.T) {
	cfg := newTestConfig(10, time.Minute)
	cfg.Cache.Enabled = false
	assert.Nil(t, NewManager(cfg))
}

func TestManagerStats(t *testing.T) {
	m := NewManager(newTestConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "p", "v"))
	_, _ = m.Get(ctx, "p")
	_, _ = m.Get(ctx, "missing")

	stats := m.GetStats()
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}
