package service

import (
	"context"
	"strings"
	"time"

	"recipe-analyzer/internal/core/ai/cache"
	"recipe-analyzer/internal/core/ai/openrouter"
	"recipe-analyzer/internal/core/ai/provider"
	"recipe-analyzer/internal/infrastructure/config"
	"recipe-analyzer/internal/pkg/common"

	"go.uber.org/zap"
)

// Response AI 回應結構
type Response struct {
	Content string
}

// Service AI 服務
// 統一封裝生成後端：快取查詢、超時控制、錯誤歸類
type Service struct {
	config   *config.Config
	provider provider.Provider
	store    cache.Store
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, store cache.Store) (*Service, error) {
	return &Service{
		config:   cfg,
		provider: openrouter.NewClient(cfg),
		store:    store,
	}, nil
}

// NewServiceWithProvider 使用指定的提供者創建 AI 服務
func NewServiceWithProvider(cfg *config.Config, prov provider.Provider, store cache.Store) *Service {
	return &Service{
		config:   cfg,
		provider: prov,
		store:    store,
	}
}

// ProcessRequest 統一對外方法
// 任何後端失敗（不可達、超時、空內容）都回傳 GenerationError
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (*Response, error) {
	// 統一 prompt 格式，去除多餘空白、tab、換行，確保快取 key 一致
	cacheKey := strings.Join(strings.Fields(prompt), " ")

	// 檢查緩存
	if s.config.Cache.Enabled && s.store != nil {
		if val, err := s.store.Get(ctx, cacheKey); err == nil && val != "" {
			return &Response{Content: val}, nil
		}
	}

	// 套用後端呼叫超時
	timeout := s.provider.GetTimeout()
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	resp, err := s.provider.Generate(callCtx, &provider.Request{
		Messages: []provider.Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   s.config.OpenRouter.MaxTokens,
		Temperature: s.config.OpenRouter.Temperature,
	})
	common.LogAICall(prompt, time.Since(start), err, "")

	if err != nil {
		return nil, common.NewGenerationError("generation backend failed", err)
	}
	if resp == nil || resp.Content == "" {
		return nil, common.NewGenerationError("empty generation response", nil)
	}

	if s.config.Cache.Enabled && s.store != nil {
		if err := s.store.Set(ctx, cacheKey, resp.Content); err != nil {
			common.LogWarn("快取寫入失敗", zap.Error(err))
		}
	}

	return &Response{Content: resp.Content}, nil
}
