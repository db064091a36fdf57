package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/types"
	"github.com/yeisme/foldervault/pkg/queue"
)

// CreateFolder 创建类型化文件夹，名称全局唯一.
func (s *FolderService) CreateFolder(ctx context.Context, req *types.CreateFolderRequest) (*model.Folder, error) {
	if req.Name == "" || req.Type == "" || req.MaxFileLimit == 0 {
		return nil, NewValidationError("All fields are required")
	}

	folderType := model.FolderType(req.Type)
	if !model.IsValidFolderType(folderType) {
		return nil, NewValidationError("Invalid folder type")
	}

	if req.MaxFileLimit < 0 {
		return nil, NewValidationError("maxFileLimit must be a positive integer")
	}

	// 名称唯一性检查；name 列上另有唯一索引兜底并发写入
	var existing model.Folder

	err := s.dbClient.WithContext(ctx).Where("name = ?", req.Name).First(&existing).Error
	if err == nil {
		return nil, NewConflictError("Folder name must be unique")
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check folder name: %w", err)
	}

	folder := &model.Folder{
		FolderID:     uuid.NewString(),
		Name:         req.Name,
		Type:         folderType,
		MaxFileLimit: req.MaxFileLimit,
	}

	if err := s.dbClient.WithContext(ctx).Create(folder).Error; err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	s.publishFolderEvent(ctx, queue.TopicFolderCreated, folder, 0)

	return folder, nil
}

// UpdateFolder 部分更新文件夹，类型不可修改.
func (s *FolderService) UpdateFolder(ctx context.Context, folderID string, req *types.UpdateFolderRequest) (*model.Folder, error) {
	var folder model.Folder

	err := s.dbClient.WithContext(ctx).First(&folder, "folder_id = ?", folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Folder not found")
		}

		return nil, fmt.Errorf("find folder: %w", err)
	}

	if req.Name != nil {
		name := *req.Name
		if strings.TrimSpace(name) == "" {
			return nil, NewValidationError("Invalid folder name")
		}

		// 与自身同名视为无冲突
		var existing model.Folder

		err := s.dbClient.WithContext(ctx).Where("name = ?", name).First(&existing).Error
		if err == nil && existing.FolderID != folderID {
			return nil, NewConflictError("Folder name must be unique")
		}

		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check folder name: %w", err)
		}

		folder.Name = name
	}

	if req.MaxFileLimit != nil {
		if *req.MaxFileLimit <= 0 {
			return nil, NewValidationError("maxFileLimit must be a positive integer")
		}

		folder.MaxFileLimit = *req.MaxFileLimit
	}

	if err := s.dbClient.WithContext(ctx).Save(&folder).Error; err != nil {
		return nil, fmt.Errorf("update folder: %w", err)
	}

	s.publishFolderEvent(ctx, queue.TopicFolderUpdated, &folder, 0)

	return &folder, nil
}

// DeleteFolder 删除文件夹并级联删除文件记录；远端对象由清理任务回收.
func (s *FolderService) DeleteFolder(ctx context.Context, folderID string) error {
	var folder model.Folder

	err := s.dbClient.WithContext(ctx).First(&folder, "folder_id = ?", folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Folder not found")
		}

		return fmt.Errorf("find folder: %w", err)
	}

	// 应用层级联删除文件记录，兼容未启用外键约束的数据库
	res := s.dbClient.WithContext(ctx).Where("folder_id = ?", folderID).Delete(&model.File{})
	if res.Error != nil {
		return fmt.Errorf("delete folder files: %w", res.Error)
	}

	if err := s.dbClient.WithContext(ctx).Delete(&folder).Error; err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	s.publishFolderEvent(ctx, queue.TopicFolderDeleted, &folder, int(res.RowsAffected))

	return nil
}

// GetFolder 获取文件夹及其文件列表.
func (s *FolderService) GetFolder(ctx context.Context, folderID string) (*model.Folder, error) {
	var folder model.Folder

	err := s.dbClient.WithContext(ctx).Preload("Files").First(&folder, "folder_id = ?", folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Folder not found")
		}

		return nil, fmt.Errorf("find folder: %w", err)
	}

	return &folder, nil
}

// ListFolders 列出所有文件夹的概要信息.
func (s *FolderService) ListFolders(ctx context.Context) ([]types.FolderSummary, error) {
	var folders []model.Folder

	if err := s.dbClient.WithContext(ctx).Find(&folders).Error; err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	summaries := make([]types.FolderSummary, 0, len(folders))
	for _, f := range folders {
		summaries = append(summaries, types.FolderSummary{
			FolderID:     f.FolderID,
			Name:         f.Name,
			Type:         f.Type,
			MaxFileLimit: f.MaxFileLimit,
		})
	}

	return summaries, nil
}
