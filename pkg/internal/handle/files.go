package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/foldervault/pkg/internal/service"
	"github.com/yeisme/foldervault/pkg/internal/types"
	"github.com/yeisme/foldervault/pkg/log"
)

// UploadFile 处理 multipart 文件上传，表单字段 file 为文件内容，description 为可选描述.
//
//	@Summary		上传文件
//	@Description	上传文件到指定文件夹，MIME 类型须与文件夹类型匹配，单文件上限 10MB
//	@Tags			文件
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			folderId	path		string						true	"文件夹ID"
//	@Param			file		formData	file						true	"文件内容"
//	@Param			description	formData	string						false	"文件描述"
//	@Success		201			{object}	types.UploadFileResponse	"上传成功"
//	@Failure		400			{object}	types.ErrorResponse			"请求参数错误"
//	@Failure		404			{object}	types.ErrorResponse			"文件夹不存在"
//	@Security		BearerAuth
//	@Router			/folders/{folderId}/files [post]
func UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "No file uploaded"})

		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		l := log.Logger()
		l.Error().Err(err).Msg("failed to open multipart file")
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Error uploading file", Error: err.Error()})

		return
	}
	defer src.Close() //nolint:errcheck

	var description *string
	if d := c.PostForm("description"); d != "" {
		description = &d
	}

	contentType := fileHeader.Header.Get("Content-Type")

	svc := service.NewFileService(c.Request.Context())

	file, err := svc.UploadFile(
		c.Request.Context(),
		c.Param("folderId"),
		fileHeader.Filename,
		contentType,
		fileHeader.Size,
		src,
		description,
	)
	if err != nil {
		writeServiceError(c, err, "Error uploading file")

		return
	}

	c.JSON(http.StatusCreated, types.UploadFileResponse{Message: "File uploaded successfully", File: file})
}

// UpdateFileDescription 处理更新文件描述请求.
//
//	@Summary		更新文件描述
//	@Description	更新指定文件夹下某个文件的描述文本
//	@Tags			文件
//	@Accept			json
//	@Produce		json
//	@Param			folderId	path		string									true	"文件夹ID"
//	@Param			fileId		path		string									true	"文件ID"
//	@Param			body		body		types.UpdateFileDescriptionRequest		true	"描述"
//	@Success		200			{object}	types.UpdateFileDescriptionResponse		"更新成功"
//	@Failure		400			{object}	types.ErrorResponse						"请求参数错误"
//	@Failure		404			{object}	types.ErrorResponse						"文件不存在"
//	@Router			/folders/{folderId}/files/{fileId} [put]
func UpdateFileDescription(c *gin.Context) {
	var req types.UpdateFileDescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "Description is required and must be a non-empty string."})

		return
	}

	svc := service.NewFileService(c.Request.Context())

	file, err := svc.UpdateFileDescription(c.Request.Context(), c.Param("folderId"), c.Param("fileId"), req.Description)
	if err != nil {
		writeServiceError(c, err, "Error updating file description")

		return
	}

	c.JSON(http.StatusOK, types.UpdateFileDescriptionResponse{
		Message: "File description updated successfully",
		Files: types.UpdatedFileDescription{
			FileID:      file.FileID,
			Description: file.Description,
		},
	})
}

// DeleteFile 处理删除文件请求，先删除远端对象再删除元数据行.
//
//	@Summary		删除文件
//	@Description	从对象存储和数据库中删除文件
//	@Tags			文件
//	@Produce		json
//	@Param			folderId	path		string					true	"文件夹ID"
//	@Param			fileId		path		string					true	"文件ID"
//	@Success		200			{object}	types.MessageResponse	"删除成功"
//	@Failure		404			{object}	types.ErrorResponse		"文件不存在"
//	@Security		BearerAuth
//	@Router			/folders/{folderId}/files/{fileId} [delete]
func DeleteFile(c *gin.Context) {
	svc := service.NewFileService(c.Request.Context())

	if err := svc.DeleteFile(c.Request.Context(), c.Param("folderId"), c.Param("fileId")); err != nil {
		writeServiceError(c, err, "Error deleting file")

		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: "File deleted successfully from database and object storage"})
}

// ListFilesInFolder 处理列出文件夹下全部文件请求.
//
//	@Summary		文件夹内文件列表
//	@Description	列出指定文件夹下的全部文件
//	@Tags			文件
//	@Produce		json
//	@Param			folderId	path		string				true	"文件夹ID"
//	@Success		200			{array}		model.File			"文件列表"
//	@Failure		404			{object}	types.ErrorResponse	"文件夹不存在"
//	@Router			/folders/{folderId}/files [get]
func ListFilesInFolder(c *gin.Context) {
	svc := service.NewFileService(c.Request.Context())

	files, err := svc.ListFiles(c.Request.Context(), c.Param("folderId"))
	if err != nil {
		writeServiceError(c, err, "Failed to fetch files")

		return
	}

	c.JSON(http.StatusOK, files)
}

// SortFiles 处理排序列出文件请求，支持按 size 或 uploadedAt 排序.
//
//	@Summary		排序文件列表
//	@Description	按 size 或 uploadedAt 对文件夹内文件排序
//	@Tags			文件
//	@Produce		json
//	@Param			folderId	path		string						true	"文件夹ID"
//	@Param			sort		query		string						true	"排序字段: size/uploadedAt"
//	@Param			order		query		string						false	"排序方向: asc/desc，默认 desc"
//	@Success		200			{object}	types.SortedFilesResponse	"排序结果"
//	@Failure		400			{object}	types.ErrorResponse			"排序字段非法"
//	@Router			/folders/{folderId}/filesBySort [get]
func SortFiles(c *gin.Context) {
	var query types.SortFilesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "Invalid query parameters"})

		return
	}

	svc := service.NewFileService(c.Request.Context())

	files, order, err := svc.SortFiles(c.Request.Context(), c.Param("folderId"), query.Sort, query.Order)
	if err != nil {
		writeServiceError(c, err, "Error retrieving sorted files")

		return
	}

	c.JSON(http.StatusOK, types.SortedFilesResponse{
		Message: "Files sorted by " + query.Sort + " " + order,
		Files:   files,
	})
}

// ListFilesByType 处理跨文件夹按类型检索文件请求.
//
//	@Summary		按类型检索文件
//	@Description	跨文件夹按文件夹类型检索文件，查询参数 type 必填
//	@Tags			文件
//	@Produce		json
//	@Param			type	query		string				true	"文件夹类型: csv/img/pdf/ppt"
//	@Success		200		{array}		model.File			"文件列表"
//	@Failure		400		{object}	types.ErrorResponse	"缺少类型参数"
//	@Failure		404		{object}	types.ErrorResponse	"无匹配文件"
//	@Router			/files [get]
func ListFilesByType(c *gin.Context) {
	var query types.FileTypeQuery
	_ = c.ShouldBindQuery(&query)

	svc := service.NewFileService(c.Request.Context())

	files, err := svc.ListFilesByType(c.Request.Context(), query.Type)
	if err != nil {
		writeServiceError(c, err, "Error retrieving files by type")

		return
	}

	c.JSON(http.StatusOK, files)
}

// GetFileMetadata 处理获取文件元数据请求.
//
//	@Summary		文件元数据列表
//	@Description	返回文件夹下文件的 fileId/name/size/description 投影
//	@Tags			文件
//	@Produce		json
//	@Param			folderId	path		string						true	"文件夹ID"
//	@Success		200			{object}	types.FileMetadataResponse	"元数据列表"
//	@Failure		500			{object}	types.ErrorResponse			"服务器内部错误"
//	@Router			/folders/{folderId}/files/metadata [get]
func GetFileMetadata(c *gin.Context) {
	svc := service.NewFileService(c.Request.Context())

	items, err := svc.GetFileMetadata(c.Request.Context(), c.Param("folderId"))
	if err != nil {
		writeServiceError(c, err, "Error fetching file metadata")

		return
	}

	c.JSON(http.StatusOK, types.FileMetadataResponse{Files: items})
}
