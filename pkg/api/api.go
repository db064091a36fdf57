// Package api 对外暴露路由注册入口，供应用层或嵌入方挂载全部业务路由.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/configs"
	"github.com/yeisme/foldervault/pkg/internal/router"
)

// RegisterGroup 将文件夹与文件相关的路由注册到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine, config *configs.AppConfig) *gin.Engine {
	router.RegisterRoutes(e, config)

	return e
}
