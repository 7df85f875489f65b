package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promptforge-api/internal/interfaces/http/dto"
	"promptforge-api/pkg/logger"
)

// respondError 在边界记录一次错误日志并返回失败响应
// 客户端错误记 warn，其余记 error
func respondError(c *gin.Context, msg string, err error) {
	ctx := c.Request.Context()
	appErr := dto.ToAppError(err)

	if appErr.HTTPStatus < http.StatusInternalServerError {
		logger.Warn(ctx, msg,
			"code", string(appErr.Code),
			"error", appErr.PublicMessage(),
		)
	} else {
		logger.Error(ctx, msg, appErr,
			"code", string(appErr.Code),
			"status", appErr.HTTPStatus,
		)
	}
	dto.Fail(c, appErr)
}
