// Package storage 处理存储操作，聚合数据库、对象存储与消息队列客户端.
//
// Example:
//
// 初始化
//
//	 ctx := context.Background()
//	 mgr, err := storage.Init(ctx)
//
//		if err != nil {
//		    // 处理错误
//		}
//
// 获取存储客户端
//
//	s3Client := mgr.GetS3Client()
//	dbClient := mgr.GetDBClient()
package storage

import (
	"context"
	"sync"

	"github.com/yeisme/foldervault/pkg/configs"
	dbc "github.com/yeisme/foldervault/pkg/internal/storage/db"
	mqc "github.com/yeisme/foldervault/pkg/internal/storage/mq"
	s3c "github.com/yeisme/foldervault/pkg/internal/storage/s3"
	nlog "github.com/yeisme/foldervault/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	S3 *s3c.Client
	DB *dbc.Client
	MQ *mqc.Client
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置.重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		// DB
		dbi, e := dbc.New(ctx)
		if e != nil {
			err = e

			return
		}

		m.DB = dbi

		// S3
		s3i, e := s3c.New(ctx, &cfg.S3)
		if e != nil {
			err = e

			return
		}

		m.S3 = s3i

		// MQ 可选，未启用时事件发布为空操作
		if cfg.MQ.Enabled {
			mqi, e := mqc.New(&cfg.MQ)
			if e != nil {
				err = e

				return
			}

			m.MQ = mqi
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// GetS3Client 获取 S3 客户端.
func (m *Manager) GetS3Client() *s3c.Client {
	return m.S3
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetMQClient 获取 MQ 客户端，未启用时返回 nil.
func (m *Manager) GetMQClient() *mqc.Client {
	return m.MQ
}

// Close 关闭需要显式释放的存储资源.
func (m *Manager) Close() {
	if m == nil {
		return
	}

	if m.MQ != nil {
		if err := m.MQ.Close(); err != nil {
			nlog.Logger().Warn().Err(err).Msg("failed to close mq client")
		}
	}
}
