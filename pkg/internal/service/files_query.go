package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/types"
)

// 排序接口允许的字段，键为查询参数名，值为列名.
var sortColumns = map[string]string{
	"size":       "size",
	"uploadedAt": "uploaded_at",
}

// ListFiles 列出文件夹下的全部文件记录.
func (fs *FileService) ListFiles(ctx context.Context, folderID string) ([]model.File, error) {
	var folder model.Folder

	err := fs.dbClient.WithContext(ctx).First(&folder, "folder_id = ?", folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Folder not found")
		}

		return nil, fmt.Errorf("find folder: %w", err)
	}

	var files []model.File

	if err := fs.dbClient.WithContext(ctx).Where("folder_id = ?", folderID).Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return files, nil
}

// SortFiles 按 size 或 uploadedAt 排序返回文件投影.
// order 支持 asc/desc（不区分大小写），非法值回退为 DESC.
// 返回标准化后的排序方向，供响应消息使用.
func (fs *FileService) SortFiles(ctx context.Context, folderID, sort, order string) ([]types.SortedFileItem, string, error) {
	var folder model.Folder

	err := fs.dbClient.WithContext(ctx).First(&folder, "folder_id = ?", folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", NewNotFoundError("Folder not found")
		}

		return nil, "", fmt.Errorf("find folder: %w", err)
	}

	column, ok := sortColumns[sort]
	if !ok {
		return nil, "", NewValidationError("Invalid sort field. Use one of: size, uploadedAt")
	}

	sortOrder := "DESC"
	if strings.EqualFold(order, "asc") {
		sortOrder = "ASC"
	} else if strings.EqualFold(order, "desc") {
		sortOrder = "DESC"
	}

	var files []model.File

	err = fs.dbClient.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order(fmt.Sprintf("%s %s", column, sortOrder)).
		Find(&files).Error
	if err != nil {
		return nil, "", fmt.Errorf("list sorted files: %w", err)
	}

	items := make([]types.SortedFileItem, 0, len(files))
	for _, f := range files {
		items = append(items, types.SortedFileItem{
			FileID:      f.FileID,
			Name:        f.Name,
			Size:        f.Size,
			UploadedAt:  f.UploadedAt,
			Description: f.Description,
		})
	}

	return items, sortOrder, nil
}

// ListFilesByType 跨文件夹按文件夹类型检索文件.
// 过滤依据是文件夹声明的类型而非单个文件的 MIME 类型，
// 文件夹是单类型容器，两种口径仅在历史数据上有差别.
func (fs *FileService) ListFilesByType(ctx context.Context, folderType string) ([]model.File, error) {
	if folderType == "" {
		return nil, NewValidationError("File type query param is required (e.g., ?type=pdf)")
	}

	var folderIDs []string

	err := fs.dbClient.WithContext(ctx).Model(&model.Folder{}).
		Where("type = ?", folderType).
		Pluck("folder_id", &folderIDs).Error
	if err != nil {
		return nil, fmt.Errorf("list folders by type: %w", err)
	}

	var files []model.File

	if len(folderIDs) > 0 {
		if err := fs.dbClient.WithContext(ctx).Where("folder_id IN ?", folderIDs).Find(&files).Error; err != nil {
			return nil, fmt.Errorf("list files by type: %w", err)
		}
	}

	if len(files) == 0 {
		return nil, NewNotFoundError(fmt.Sprintf("No files found with type: %s", folderType))
	}

	return files, nil
}

// GetFileMetadata 返回文件夹下文件的元数据投影.
// 不校验文件夹是否存在，未知 folderId 返回空列表.
func (fs *FileService) GetFileMetadata(ctx context.Context, folderID string) ([]types.FileMetadataItem, error) {
	var files []model.File

	if err := fs.dbClient.WithContext(ctx).Where("folder_id = ?", folderID).Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list file metadata: %w", err)
	}

	items := make([]types.FileMetadataItem, 0, len(files))
	for _, f := range files {
		items = append(items, types.FileMetadataItem{
			FileID:      f.FileID,
			Name:        f.Name,
			Size:        f.Size,
			Description: f.Description,
		})
	}

	return items, nil
}
