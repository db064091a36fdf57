package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/internal/service"
	"github.com/yeisme/foldervault/pkg/internal/types"
	"github.com/yeisme/foldervault/pkg/log"
)

// CreateFolder 处理创建文件夹请求.
//
//	@Summary		创建文件夹
//	@Description	创建一个类型化文件夹，名称全局唯一，类型限定 csv/img/pdf/ppt
//	@Tags			文件夹
//	@Accept			json
//	@Produce		json
//	@Param			folder	body		types.CreateFolderRequest	true	"创建文件夹请求"
//	@Success		201		{object}	types.FolderResponse		"创建成功"
//	@Failure		400		{object}	types.ErrorResponse			"请求参数错误"
//	@Failure		500		{object}	types.ErrorResponse			"服务器内部错误"
//	@Router			/folder/create [post]
func CreateFolder(c *gin.Context) {
	var req types.CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid create folder request")
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "All fields are required"})

		return
	}

	svc := service.NewFolderService(c.Request.Context())

	folder, err := svc.CreateFolder(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Error creating folder")

		return
	}

	c.JSON(http.StatusCreated, types.FolderResponse{Message: "Folder created successfully", Folder: folder})
}

// UpdateFolder 处理更新文件夹请求.
//
//	@Summary		更新文件夹
//	@Description	按需更新文件夹名称或容量上限，类型不可修改
//	@Tags			文件夹
//	@Accept			json
//	@Produce		json
//	@Param			folderId	path		string						true	"文件夹ID"
//	@Param			folder		body		types.UpdateFolderRequest	true	"更新文件夹请求"
//	@Success		200			{object}	types.FolderResponse		"更新成功"
//	@Failure		400			{object}	types.ErrorResponse			"请求参数错误"
//	@Failure		404			{object}	types.ErrorResponse			"文件夹不存在"
//	@Router			/folders/{folderId} [put]
func UpdateFolder(c *gin.Context) {
	var req types.UpdateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l := log.Logger()
		l.Warn().Err(err).Msg("invalid update folder request")
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "Invalid request body"})

		return
	}

	svc := service.NewFolderService(c.Request.Context())

	folder, err := svc.UpdateFolder(c.Request.Context(), c.Param("folderId"), &req)
	if err != nil {
		writeServiceError(c, err, "Error updating folder")

		return
	}

	c.JSON(http.StatusOK, types.FolderResponse{Message: "Folder updated successfully", Folder: folder})
}

// DeleteFolder 处理删除文件夹请求，级联删除其下文件记录.
//
//	@Summary		删除文件夹
//	@Description	删除文件夹并级联删除其下所有文件记录
//	@Tags			文件夹
//	@Produce		json
//	@Param			folderId	path		string					true	"文件夹ID"
//	@Success		200			{object}	types.MessageResponse	"删除成功"
//	@Failure		404			{object}	types.ErrorResponse		"文件夹不存在"
//	@Router			/folders/{folderId} [delete]
func DeleteFolder(c *gin.Context) {
	svc := service.NewFolderService(c.Request.Context())

	if err := svc.DeleteFolder(c.Request.Context(), c.Param("folderId")); err != nil {
		writeServiceError(c, err, "Error deleting folder")

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "Folder and its files deleted successfully"})
}

// GetFolder 处理获取单个文件夹请求，附带其文件列表.
//
//	@Summary		获取文件夹详情
//	@Description	获取单个文件夹及其下所有文件
//	@Tags			文件夹
//	@Produce		json
//	@Param			folderId	path		string					true	"文件夹ID"
//	@Success		200			{object}	types.FolderResponse	"获取成功"
//	@Failure		404			{object}	types.ErrorResponse		"文件夹不存在"
//	@Router			/folders/{folderId} [get]
func GetFolder(c *gin.Context) {
	svc := service.NewFolderService(c.Request.Context())

	folder, err := svc.GetFolder(c.Request.Context(), c.Param("folderId"))
	if err != nil {
		writeServiceError(c, err, "Error fetching folder")

		return
	}

	c.JSON(http.StatusOK, types.FolderResponse{Message: "Folder retrieved successfully", Folder: folder})
}

// ListFolders 处理文件夹列表请求，返回摘要数组.
//
//	@Summary		文件夹列表
//	@Description	获取全部文件夹的摘要信息
//	@Tags			文件夹
//	@Produce		json
//	@Success		200	{array}		types.FolderSummary	"文件夹列表"
//	@Failure		500	{object}	types.ErrorResponse	"服务器内部错误"
//	@Router			/folders [get]
func ListFolders(c *gin.Context) {
	svc := service.NewFolderService(c.Request.Context())

	folders, err := svc.ListFolders(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Failed to fetch folders")

		return
	}

	c.JSON(http.StatusOK, folders)
}
