// Package types 定义 HTTP 请求与响应结构.
package types

import "github.com/yeisme/foldervault/pkg/internal/model"

// CreateFolderRequest 创建文件夹请求.
type CreateFolderRequest struct {
	Name         string `json:"name"`         // 文件夹名称，全局唯一
	Type         string `json:"type"`         // 文件夹类型: csv/img/pdf/ppt
	MaxFileLimit int    `json:"maxFileLimit"` // 容量上限，必须为正整数
}

// UpdateFolderRequest 更新文件夹请求，字段均可选，类型不可修改.
type UpdateFolderRequest struct {
	Name         *string `json:"name,omitempty"`
	MaxFileLimit *int    `json:"maxFileLimit,omitempty"`
}

// FolderSummary 文件夹列表项投影.
type FolderSummary struct {
	FolderID     string           `json:"folderId"`
	Name         string           `json:"name"`
	Type         model.FolderType `json:"type"`
	MaxFileLimit int              `json:"maxFileLimit"`
}

// FolderResponse 携带提示信息的文件夹响应.
type FolderResponse struct {
	Message string        `json:"message"`
	Folder  *model.Folder `json:"folder"`
}

// MessageResponse 仅携带提示信息的响应.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse 错误响应，Error 仅在内部错误时填充.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
