package handler

import (
	"github.com/gin-gonic/gin"

	"promptforge-api/internal/application/platform"
	"promptforge-api/internal/application/preset"
	"promptforge-api/internal/interfaces/http/dto"
)

// CatalogHandler 平台与预设目录
type CatalogHandler struct {
	platforms *platform.Registry
	presets   *preset.Catalog
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(platforms *platform.Registry, presets *preset.Catalog) *CatalogHandler {
	return &CatalogHandler{platforms: platforms, presets: presets}
}

// ListPlatforms 列出支持的平台
// @Summary 平台列表
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.Response[[]platform.Descriptor]
// @Router /v1/platforms [get]
func (h *CatalogHandler) ListPlatforms(c *gin.Context) {
	dto.Success(c, h.platforms.Descriptors())
}

// ListPresets 列出预设分类
// @Summary 预设目录
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.Response[[]entity.PresetCategory]
// @Router /v1/presets [get]
func (h *CatalogHandler) ListPresets(c *gin.Context) {
	dto.Success(c, h.presets.Categories())
}
