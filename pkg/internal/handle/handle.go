// Package handle 提供HTTP请求处理器的实现.
package handle

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/internal/service"
	"github.com/yeisme/foldervault/pkg/internal/types"
	"github.com/yeisme/foldervault/pkg/log"
)

// writeServiceError 把服务层错误映射为HTTP响应.
//   - 校验与冲突类错误返回 400
//   - 未找到返回 404
//   - 其余视为内部错误，返回 500 并附带端点级提示信息.
func writeServiceError(c *gin.Context, err error, fallback string) {
	var (
		verr *service.ValidationError
		nerr *service.NotFoundError
		cerr *service.ConflictError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Message: verr.Error()})
	case errors.As(err, &nerr):
		c.JSON(http.StatusNotFound, types.ErrorResponse{Message: nerr.Error()})
	case errors.As(err, &cerr):
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Message: cerr.Error()})
	default:
		l := log.Logger()
		l.Error().Err(err).Str("path", c.Request.URL.Path).Msg(fallback)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: fallback, Error: err.Error()})
	}
}
