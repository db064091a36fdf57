package types

import (
	"time"

	"github.com/yeisme/foldervault/pkg/internal/model"
)

// UpdateFileDescriptionRequest 更新文件描述请求.
type UpdateFileDescriptionRequest struct {
	Description string `json:"description"`
}

// SortFilesQuery 文件排序查询参数.
type SortFilesQuery struct {
	Sort  string `form:"sort"`
	Order string `form:"order,default=desc"`
}

// FileTypeQuery 按类型过滤文件的查询参数.
type FileTypeQuery struct {
	Type string `form:"type"`
}

// UploadFileResponse 上传成功响应.
type UploadFileResponse struct {
	Message string      `json:"message"`
	File    *model.File `json:"file"`
}

// SortedFileItem 排序接口的文件投影.
type SortedFileItem struct {
	FileID      string    `json:"fileId"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	Description *string   `json:"description"`
}

// SortedFilesResponse 排序接口响应.
type SortedFilesResponse struct {
	Message string           `json:"message"`
	Files   []SortedFileItem `json:"files"`
}

// FileMetadataItem 元数据接口的文件投影.
type FileMetadataItem struct {
	FileID      string  `json:"fileId"`
	Name        string  `json:"name"`
	Size        int64   `json:"size"`
	Description *string `json:"description"`
}

// FileMetadataResponse 元数据接口响应.
type FileMetadataResponse struct {
	Files []FileMetadataItem `json:"files"`
}

// UpdateFileDescriptionResponse 更新描述成功响应.
type UpdateFileDescriptionResponse struct {
	Message string                 `json:"message"`
	Files   UpdatedFileDescription `json:"files"`
}

// UpdatedFileDescription 更新描述结果投影.
type UpdatedFileDescription struct {
	FileID      string  `json:"fileId"`
	Description *string `json:"description"`
}
