package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/configs"
	"github.com/yeisme/foldervault/pkg/internal/handle"
)

// RegisterFolderRoutes 注册文件夹相关路由.
func RegisterFolderRoutes(g *gin.RouterGroup, _ *configs.AppConfig) {
	// 创建入口保留独立前缀
	g.POST("/folder/create", handle.CreateFolder)

	foldersRoutes := g.Group("/folders")
	{
		foldersRoutes.GET("", handle.ListFolders)
		foldersRoutes.GET("/:folderId", handle.GetFolder)
		foldersRoutes.PUT("/:folderId", handle.UpdateFolder)
		foldersRoutes.DELETE("/:folderId", handle.DeleteFolder)
	}
}
