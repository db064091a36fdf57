package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/configs"
	"github.com/yeisme/foldervault/pkg/internal/handle"
	"github.com/yeisme/foldervault/pkg/middleware"
)

// RegisterFileRoutes 注册文件相关路由.
// 上传与删除属于写操作中影响对象存储的入口，单独挂认证中间件.
func RegisterFileRoutes(g *gin.RouterGroup, config *configs.AppConfig) {
	auth := middleware.AuthMiddleware(config.Auth)

	// 跨文件夹按类型检索
	g.GET("/files", handle.ListFilesByType)

	filesRoutes := g.Group("/folders/:folderId")
	{
		filesRoutes.POST("/files", auth, handle.UploadFile)
		filesRoutes.GET("/files", handle.ListFilesInFolder)
		filesRoutes.GET("/files/metadata", handle.GetFileMetadata)
		filesRoutes.GET("/filesBySort", handle.SortFiles)

		filesRoutes.PUT("/files/:fileId", handle.UpdateFileDescription)
		filesRoutes.DELETE("/files/:fileId", auth, handle.DeleteFile)
	}
}
