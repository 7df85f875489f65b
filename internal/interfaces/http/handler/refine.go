package handler

import (
	"github.com/gin-gonic/gin"

	"promptforge-api/internal/application/refine"
	"promptforge-api/internal/interfaces/http/dto"
	"promptforge-api/pkg/logger"
)

// RefineHandler 提示词精炼处理器
type RefineHandler struct {
	engine *refine.Engine
}

// NewRefineHandler 创建提示词精炼处理器
func NewRefineHandler(engine *refine.Engine) *RefineHandler {
	return &RefineHandler{engine: engine}
}

// Refine 精炼提示词
// @Summary 精炼提示词
// @Description 分析输入；未提供回答时返回澄清问题，否则返回目标平台的精炼提示词
// @Tags Refine
// @Accept json
// @Produce json
// @Param body body dto.RefineRequest true "精炼请求"
// @Success 200 {object} dto.Response[entity.RefinedPrompt]
// @Success 200 {object} dto.QuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /v1/refine [post]
func (h *RefineHandler) Refine(c *gin.Context) {
	var req dto.RefineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondError(c, "refine request rejected", err)
		return
	}

	res, err := h.engine.Run(c.Request.Context(), req.ToRefineRequest())
	if err != nil {
		respondError(c, "refine failed", err)
		return
	}

	if res.Prompt == nil {
		dto.Questions(c, res.Questions)
		return
	}
	logger.Debug(c.Request.Context(), "refine completed", "path", res.Run.Path())
	dto.Success(c, res.Prompt)
}
