package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/context"
	"github.com/yeisme/foldervault/pkg/internal/storage"
)

// StorageMiddleware 把存储管理器注入请求 context，供服务层获取客户端.
func StorageMiddleware(manager *storage.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithStorageManager(c.Request.Context(), manager)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
