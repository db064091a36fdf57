// Package router 管理路由配置，将路径绑定到 handle 包提供的处理器.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/configs"
)

// RegisterRoutes 注册全部业务路由.
func RegisterRoutes(engine *gin.Engine, config *configs.AppConfig) {
	root := engine.Group("/")

	RegisterFolderRoutes(root, config)
	RegisterFileRoutes(root, config)
	RegisterHealthCheckRoute(root)
	RegisterSchedulerRoutes(root)
}
