package service

import (
	"context"

	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/storage/mq"
	nlog "github.com/yeisme/foldervault/pkg/log"
	"github.com/yeisme/foldervault/pkg/queue"
)

const eventProducer = "foldervault"

// publishEvent 尽力而为地发布事件：MQ 未启用时跳过，失败只记日志，不影响请求结果.
func publishEvent[T any](ctx context.Context, client *mq.Client, topic string, payload T) {
	if client == nil {
		return
	}

	msg, err := queue.NewWatermillMessage(topic, payload, queue.WithProducer(eventProducer))
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("failed to encode event")

		return
	}

	if err := client.Publish(ctx, topic, msg); err != nil {
		nlog.Logger().Warn().Err(err).Str("topic", topic).Msg("failed to publish event")
	}
}

func (s *FolderService) publishFolderEvent(ctx context.Context, topic string, folder *model.Folder, deletedFiles int) {
	publishEvent(ctx, s.mqClient, topic, queue.FolderEventPayload{
		FolderID:     folder.FolderID,
		Name:         folder.Name,
		Type:         string(folder.Type),
		MaxFileLimit: folder.MaxFileLimit,
		DeletedFiles: deletedFiles,
	})
}

func (fs *FileService) publishFileEvent(ctx context.Context, topic string, file *model.File, etag string) {
	var bucket string
	if fs.store != nil {
		bucket = fs.store.Bucket()
	}

	publishEvent(ctx, fs.mqClient, topic, queue.FileEventPayload{
		FileID:   file.FileID,
		FolderID: file.FolderID,
		Name:     file.Name,
		MimeType: file.Type,
		Size:     file.Size,
		Object: queue.ObjectRef{
			Bucket:      bucket,
			ObjectKey:   file.PublicID,
			ETag:        etag,
			Size:        file.Size,
			ContentType: file.Type,
		},
	})
}
