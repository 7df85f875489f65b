package router

import (
	"github.com/gin-gonic/gin"

	"promptforge-api/internal/interfaces/http/handler"
)

// RegisterV1Routes 注册 v1 版本路由
func RegisterV1Routes(
	v1 *gin.RouterGroup,
	refineHandler *handler.RefineHandler,
	catalogHandler *handler.CatalogHandler,
) {
	// 提示词精炼
	v1.POST("/refine", refineHandler.Refine)

	// 目录
	v1.GET("/platforms", catalogHandler.ListPlatforms)
	v1.GET("/presets", catalogHandler.ListPresets)
}
