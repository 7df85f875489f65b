//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"promptforge-api/internal/application/refine"
	"promptforge-api/internal/config"
	"promptforge-api/internal/infrastructure/llm"
	"promptforge-api/internal/interfaces/http/handler"
	"promptforge-api/internal/interfaces/http/router"
	workflowport "promptforge-api/internal/workflow/port"
)

// InitializeApp 初始化整个应用（带路由器）
func InitializeApp(cfg *config.Config) (*router.Router, func(), error) {
	wire.Build(
		LLMSet,
		RefineSet,
		RouterSet,
	)
	return nil, nil, nil
}

// LLMSet LLM 客户端提供者集合
var LLMSet = wire.NewSet(
	llm.NewEinoFactory,
	wire.Bind(new(workflowport.ChatModelFactory), new(*llm.EinoFactory)),
)

// RefineSet 精炼流水线提供者集合
var RefineSet = wire.NewSet(
	ProvidePresetCatalog,
	ProvidePlatformRegistry,
	ProvideRefineOptions,
	refine.NewEngine,
)

// RouterSet 路由器提供者集合
var RouterSet = wire.NewSet(
	ProvideHealthHandler,
	handler.NewRefineHandler,
	handler.NewCatalogHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)
