// Package wire 提供依赖注入配置
package wire

import (
	"promptforge-api/internal/application/platform"
	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/application/refine"
	"promptforge-api/internal/config"
	"promptforge-api/internal/infrastructure/llm"
	"promptforge-api/internal/interfaces/http/handler"
)

// ProvidePresetCatalog 加载内置预设目录
func ProvidePresetCatalog() (*preset.Catalog, error) {
	return preset.LoadCatalog()
}

// ProvidePlatformRegistry 加载内置平台目录并注册全部适配器
func ProvidePlatformRegistry() (*platform.Registry, error) {
	return platform.NewDefaultRegistry()
}

// ProvideRefineOptions 从配置生成流水线参数
func ProvideRefineOptions(cfg *config.Config, factory *llm.EinoFactory) refine.Options {
	provider := cfg.RefineProvider()
	return refine.Options{
		Provider:            provider,
		ModelName:           factory.ModelName(provider),
		AnalysisMaxTokens:   cfg.Refine.AnalysisMaxTokens,
		RefinementMaxTokens: cfg.Refine.RefinementMaxTokens,
		JSONResponseFormat:  cfg.Refine.JSONResponseFormat,
	}
}

// ProvideHealthHandler 提供健康检查处理器，就绪检查针对流水线实际使用的提供商
func ProvideHealthHandler(cfg *config.Config, factory *llm.EinoFactory) *handler.HealthHandler {
	return handler.NewHealthHandler(factory, cfg.RefineProvider(), cfg.App.Version)
}
