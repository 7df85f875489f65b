// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "promptforge-api/pkg/errors"
)

// Response 统一成功响应结构
type Response[T any] struct {
	Success   bool   `json:"success"`
	Data      T      `json:"data,omitempty"`
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// QuestionsResponse 需要用户澄清时的响应
type QuestionsResponse struct {
	Success   bool     `json:"success"`
	Questions []string `json:"questions"`
	TraceID   string   `json:"trace_id,omitempty"`
	RequestID string   `json:"request_id,omitempty"`
}

// ErrorResponse 错误响应结构
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	TraceID   string `json:"trace_id,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Success 返回成功响应
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Success:   true,
		Data:      data,
		TraceID:   c.GetString("trace_id"),
		RequestID: c.GetString("request_id"),
	})
}

// Questions 返回澄清问题
func Questions(c *gin.Context, questions []string) {
	c.JSON(http.StatusOK, QuestionsResponse{
		Success:   true,
		Questions: questions,
		TraceID:   c.GetString("trace_id"),
		RequestID: c.GetString("request_id"),
	})
}

// Fail 将错误渲染为失败响应，未分类的错误一律视为内部错误
func Fail(c *gin.Context, err error) {
	appErr := ToAppError(err)
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		Success:   false,
		Error:     appErr.PublicMessage(),
		Code:      string(appErr.Code),
		TraceID:   c.GetString("trace_id"),
		RequestID: c.GetString("request_id"),
	})
}

// AbortWithError 中断处理链并返回失败响应
func AbortWithError(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}

// BadRequest 返回 400 错误
func BadRequest(c *gin.Context, detail string) {
	Fail(c, apperrors.ErrInvalidParam.WithDetail(detail))
}

// ToAppError 分类错误；非 AppError 归入内部错误并保留原因
func ToAppError(err error) *apperrors.AppError {
	if apperrors.IsAppError(err) {
		return apperrors.AsAppError(err)
	}
	return apperrors.ErrInternalError.WithError(err)
}
