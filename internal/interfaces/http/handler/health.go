// Package handler 提供 HTTP 请求处理器
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CredentialChecker 报告 LLM 提供商凭证是否已配置
type CredentialChecker interface {
	HasCredential(name string) bool
}

// HealthHandler 健康检查处理器
type HealthHandler struct {
	credentials CredentialChecker
	provider    string
	version     string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(credentials CredentialChecker, provider, version string) *HealthHandler {
	return &HealthHandler{
		credentials: credentials,
		provider:    provider,
		version:     version,
	}
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

type readinessCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status string                     `json:"status"`
	Checks map[string]*readinessCheck `json:"checks,omitempty"`
}

// Health 健康检查接口
// @Summary 健康检查
// @Description 检查服务健康状态
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}

// Ready 就绪检查接口
// 唯一的外部依赖是 LLM 提供商，凭证缺失时不接收流量
// @Summary 就绪检查
// @Description 检查服务是否可以接收流量
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	check := &readinessCheck{Status: "ok"}
	switch {
	case h == nil || h.credentials == nil:
		check.Status = "missing"
		check.Error = "llm factory not configured"
	case !h.credentials.HasCredential(h.provider):
		check.Status = "missing"
		check.Error = "api key not configured for provider " + h.provider
	}

	resp := readinessResponse{
		Status: "ok",
		Checks: map[string]*readinessCheck{"llm": check},
	}
	if check.Status != "ok" {
		resp.Status = "not_ready"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Live 存活检查接口
// @Summary 存活检查
// @Description 检查服务是否存活
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
