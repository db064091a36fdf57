package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/metrics"
	"github.com/yeisme/foldervault/pkg/queue"
)

// buildObjectKey 构建对象存储路径，以文件夹名作为前缀命名空间.
// uuid 前缀避免同名文件相互覆盖.
func buildObjectKey(folderName, fileName string) string {
	return fmt.Sprintf("%s/%s_%s", folderName, uuid.NewString(), fileName)
}

// UploadFile 校验并上传文件：先写对象存储，成功后写入元数据行.
// 远端失败时中止，不产生半写状态；行写入失败时远端对象交由清理任务回收.
func (fs *FileService) UploadFile(
	ctx context.Context,
	folderID, fileName, mimeType string,
	size int64,
	reader io.Reader,
	description *string,
) (*model.File, error) {
	if reader == nil || fileName == "" {
		return nil, NewValidationError("No file uploaded")
	}

	if size > MaxUploadSize {
		return nil, NewValidationError("File size exceeds 10MB limit")
	}

	var folder model.Folder

	err := fs.dbClient.WithContext(ctx).First(&folder, "folder_id = ?", folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("Folder not found")
		}

		return nil, fmt.Errorf("find folder: %w", err)
	}

	if !model.MimeAllowed(folder.Type, mimeType) {
		return nil, NewValidationError(fmt.Sprintf("Invalid file type. Expected %s", folder.Type))
	}

	var count int64
	if err := fs.dbClient.WithContext(ctx).Model(&model.File{}).
		Where("folder_id = ?", folderID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count folder files: %w", err)
	}

	if count >= int64(folder.MaxFileLimit) {
		return nil, NewValidationError("Folder has reached its maximum file limit")
	}

	key := buildObjectKey(folder.Name, fileName)

	info, err := fs.store.Upload(ctx, key, reader, size, mimeType)
	if err != nil {
		return nil, fmt.Errorf("upload object: %w", err)
	}

	file := &model.File{
		FileID:      uuid.NewString(),
		FolderID:    folderID,
		Name:        fileName,
		Description: description,
		Type:        mimeType,
		Size:        size,
		SecureURL:   info.SecureURL,
		PublicID:    info.Key,
		UploadedAt:  time.Now().UTC(),
	}

	if err := fs.dbClient.WithContext(ctx).Create(file).Error; err != nil {
		return nil, fmt.Errorf("create file record: %w", err)
	}

	metrics.UploadedBytes.WithLabelValues(string(folder.Type)).Add(float64(size))

	fs.publishFileEvent(ctx, queue.TopicFileUploaded, file, info.ETag)

	return file, nil
}

// UpdateFileDescription 更新指定文件夹下文件的描述.
func (fs *FileService) UpdateFileDescription(ctx context.Context, folderID, fileID, description string) (*model.File, error) {
	if strings.TrimSpace(description) == "" {
		return nil, NewValidationError("Description is required and must be a non-empty string.")
	}

	var file model.File

	err := fs.dbClient.WithContext(ctx).
		Where("file_id = ? AND folder_id = ?", fileID, folderID).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("File does not exist in the specified folder.")
		}

		return nil, fmt.Errorf("find file: %w", err)
	}

	file.Description = &description

	if err := fs.dbClient.WithContext(ctx).Save(&file).Error; err != nil {
		return nil, fmt.Errorf("update file description: %w", err)
	}

	fs.publishFileEvent(ctx, queue.TopicFileUpdated, &file, "")

	return &file, nil
}

// DeleteFile 删除文件：先确认远端对象存在并删除，再删除元数据行.
// 远端删除失败时中止，保留元数据行以便重试.
func (fs *FileService) DeleteFile(ctx context.Context, folderID, fileID string) error {
	var file model.File

	err := fs.dbClient.WithContext(ctx).
		Where("file_id = ? AND folder_id = ?", fileID, folderID).
		First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("File not found in the specified folder")
		}

		return fmt.Errorf("find file: %w", err)
	}

	var folder model.Folder

	err = fs.dbClient.WithContext(ctx).First(&folder, "folder_id = ?", folderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NewNotFoundError("Parent folder not found")
		}

		return fmt.Errorf("find folder: %w", err)
	}

	if file.PublicID == "" {
		return NewValidationError("Storage key not found for this file.")
	}

	// 先确认对象存在，避免远端状态与元数据漂移时静默吞掉错误
	if _, err := fs.store.Stat(ctx, file.PublicID); err != nil {
		return fmt.Errorf("stat object: %w", err)
	}

	if err := fs.store.Remove(ctx, file.PublicID); err != nil {
		return fmt.Errorf("remove object: %w", err)
	}

	if err := fs.dbClient.WithContext(ctx).Delete(&file).Error; err != nil {
		return fmt.Errorf("delete file record: %w", err)
	}

	fs.publishFileEvent(ctx, queue.TopicFileDeleted, &file, "")

	return nil
}
