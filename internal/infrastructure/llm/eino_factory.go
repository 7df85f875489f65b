// Package llm 提供基于 Eino 的 ChatModel 客户端管理
package llm

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"promptforge-api/internal/config"
	apperrors "promptforge-api/pkg/errors"
)

// chatModelBuilder 构造具体 ChatModel，测试中可替换
type chatModelBuilder func(ctx context.Context, cfg config.ProviderConfig) (model.BaseChatModel, error)

// EinoFactory 管理多个 Eino ChatModel 客户端实例
type EinoFactory struct {
	config *config.LLMConfig
	build  chatModelBuilder
	models map[string]model.BaseChatModel
	mu     sync.RWMutex
}

// NewEinoFactory 创建 Eino LLM 工厂
func NewEinoFactory(cfg *config.Config) *EinoFactory {
	return &EinoFactory{
		config: &cfg.LLM,
		build:  newOpenAICompatibleModel,
		models: make(map[string]model.BaseChatModel),
	}
}

// Get 获取指定名称的 ChatModel，如果未指定则返回默认客户端
// API Key 为空时返回 ErrCredentialMissing，且不缓存，便于凭证补齐后重试
func (f *EinoFactory) Get(ctx context.Context, name string) (model.BaseChatModel, error) {
	name = f.resolveName(name)

	f.mu.RLock()
	m, ok := f.models[name]
	f.mu.RUnlock()
	if ok {
		return m, nil
	}

	// 惰性加载
	f.mu.Lock()
	defer f.mu.Unlock()

	// 再次检查防止竞态
	if m, ok = f.models[name]; ok {
		return m, nil
	}

	providerCfg, ok := f.config.Providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %s not found in LLM config", name)
	}
	if strings.TrimSpace(providerCfg.APIKey) == "" {
		return nil, apperrors.ErrCredentialMissing.WithDetail(name)
	}

	chatModel, err := f.build(ctx, providerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create eino chat model for %s: %w", name, err)
	}

	f.models[name] = chatModel
	return chatModel, nil
}

// Default 返回默认 ChatModel
func (f *EinoFactory) Default(ctx context.Context) (model.BaseChatModel, error) {
	return f.Get(ctx, "")
}

// ModelName 返回提供商配置的模型名称
func (f *EinoFactory) ModelName(name string) string {
	return f.config.Providers[f.resolveName(name)].Model
}

// HasCredential 检查提供商是否配置了 API Key
func (f *EinoFactory) HasCredential(name string) bool {
	p, ok := f.config.Providers[f.resolveName(name)]
	return ok && strings.TrimSpace(p.APIKey) != ""
}

func (f *EinoFactory) resolveName(name string) string {
	if strings.TrimSpace(name) == "" {
		return f.config.DefaultProvider
	}
	return strings.TrimSpace(name)
}

// newOpenAICompatibleModel 使用 Eino 的 OpenAI 适配器，兼容 OpenAI 协议的端点均可接入
func newOpenAICompatibleModel(ctx context.Context, cfg config.ProviderConfig) (model.BaseChatModel, error) {
	mc := &openai.ChatModelConfig{
		APIKey:  cfg.APIKey,
		BaseURL: cfg.BaseURL,
		Model:   cfg.Model,
		Timeout: cfg.Timeout,
	}
	if cfg.MaxTokens > 0 {
		mc.MaxTokens = ptrInt(cfg.MaxTokens)
	}
	if cfg.Temperature > 0 {
		mc.Temperature = ptrFloat32(float32(cfg.Temperature))
	}
	return openai.NewChatModel(ctx, mc)
}

func ptrInt(v int) *int {
	return &v
}

func ptrFloat32(f float32) *float32 {
	return &f
}
