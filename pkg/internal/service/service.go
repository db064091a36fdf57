// Package service 实现文件夹与文件的业务逻辑，不处理 HTTP 细节.
package service

import (
	"context"
	"io"

	ctxPkg "github.com/yeisme/foldervault/pkg/context"
	"github.com/yeisme/foldervault/pkg/internal/storage/db"
	"github.com/yeisme/foldervault/pkg/internal/storage/mq"
	"github.com/yeisme/foldervault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/foldervault/pkg/log"
)

// MaxUploadSize 单文件上传大小上限（10MB）.
const MaxUploadSize = 10 * 1024 * 1024

// ObjectGateway 抽象对象存储操作，s3.Client 为默认实现.
type ObjectGateway interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*s3.ObjectInfo, error)
	Stat(ctx context.Context, key string) (*s3.ObjectStat, error)
	Remove(ctx context.Context, key string) error
	Bucket() string
}

// FolderService 负责文件夹相关业务逻辑.
type FolderService struct {
	dbClient *db.Client
	mqClient *mq.Client
}

// NewFolderService 从 context 获取依赖实例.
func NewFolderService(c context.Context) *FolderService {
	dbc := ctxPkg.GetDBClient(c)
	mqc := ctxPkg.GetMQClient(c)

	// 依赖缺失说明初始化顺序有误，直接终止而不是让后续调用逐个判空
	if dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &FolderService{
		dbClient: dbc,
		mqClient: mqc,
	}
}

// FileService 负责文件相关业务逻辑（对象存储、元数据处理等）.
type FileService struct {
	dbClient *db.Client
	store    ObjectGateway
	mqClient *mq.Client
}

// NewFileService 从 context 获取依赖实例.
func NewFileService(c context.Context) *FileService {
	s3c := ctxPkg.GetS3Client(c)
	dbc := ctxPkg.GetDBClient(c)
	mqc := ctxPkg.GetMQClient(c)

	if s3c == nil || s3c.Client == nil || dbc == nil || dbc.DB == nil {
		nlog.Logger().Fatal().Msg("storage clients not initialized")
	}

	return &FileService{
		dbClient: dbc,
		store:    s3c,
		mqClient: mqc,
	}
}
