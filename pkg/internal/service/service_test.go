package service

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/storage/db"
	s3c "github.com/yeisme/foldervault/pkg/internal/storage/s3"
)

// newTestDB 打开内存 SQLite 并迁移模型.
func newTestDB(t *testing.T) *db.Client {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	// 内存库在多连接下会各自为政，限制为单连接
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&model.Folder{}, &model.File{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &db.Client{DB: gdb}
}

// fakeGateway 内存对象存储，记录 Upload/Remove 调用.
type fakeGateway struct {
	objects   map[string]*s3c.ObjectStat
	statErr   error
	uploadErr error
	removed   []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{objects: map[string]*s3c.ObjectStat{}}
}

func (g *fakeGateway) Upload(_ context.Context, key string, reader io.Reader, size int64, contentType string) (*s3c.ObjectInfo, error) {
	if g.uploadErr != nil {
		return nil, g.uploadErr
	}

	if reader != nil {
		_, _ = io.Copy(io.Discard, reader)
	}

	g.objects[key] = &s3c.ObjectStat{Key: key, Size: size, ContentType: contentType}

	return &s3c.ObjectInfo{
		Key:       key,
		SecureURL: "http://localhost:9000/foldervault/" + key,
		Size:      size,
		ETag:      "fake-etag",
	}, nil
}

func (g *fakeGateway) Stat(_ context.Context, key string) (*s3c.ObjectStat, error) {
	if g.statErr != nil {
		return nil, g.statErr
	}

	stat, ok := g.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}

	return stat, nil
}

func (g *fakeGateway) Remove(_ context.Context, key string) error {
	delete(g.objects, key)
	g.removed = append(g.removed, key)

	return nil
}

func (g *fakeGateway) Bucket() string { return "foldervault" }

// newTestServices 构造共享同一数据库的文件夹/文件服务.
func newTestServices(t *testing.T) (*FolderService, *FileService, *fakeGateway) {
	t.Helper()

	dbc := newTestDB(t)
	gw := newFakeGateway()

	return &FolderService{dbClient: dbc},
		&FileService{dbClient: dbc, store: gw},
		gw
}
