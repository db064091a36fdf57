// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/yeisme/foldervault/pkg/configs"
	ctxPkg "github.com/yeisme/foldervault/pkg/context"
	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/storage"
	"github.com/yeisme/foldervault/pkg/log"
	"github.com/yeisme/foldervault/pkg/scheduler"
)

// RegisterCronJobs 配置业务定时任务：
//   - 周期执行存储对账，清理没有元数据行指向的孤儿对象，
//     并对缺失远端对象的元数据行打日志告警.
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	cfg := configs.GetConfig().Jobs
	if !cfg.Enabled {
		return nil
	}

	// 将 storage manager 注入到 context，便于任务内部使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return sched.AddCron(JobStorageReconcile, cfg.ReconcileCron, func(ctx context.Context) {
		runStorageReconcile(ctx, mgr, cfg.ReconcileMaxSweep)
	}, baseCtx)
}

// runStorageReconcile 对比对象存储与元数据表：
//   - 远端存在但无元数据行指向的对象视为孤儿，直接删除
//     （上传流程先写远端后写行，行写入失败会留下孤儿对象）
//   - 元数据行指向的对象在远端缺失时仅告警，不自动删行.
func runStorageReconcile(ctx context.Context, mgr *storage.Manager, maxSweep int) {
	l := log.Logger().With().Str("job", JobStorageReconcile).Logger()

	s3c := mgr.GetS3Client()
	dbc := mgr.GetDBClient()

	if s3c == nil || dbc == nil {
		l.Error().Msg("storage clients not available")
		return
	}

	keys, err := s3c.ListKeys(ctx, "", maxSweep)
	if err != nil {
		l.Error().Err(err).Msg("list remote objects failed")
		return
	}

	var rows []model.File
	if err := dbc.WithContext(ctx).Select("public_id").Find(&rows).Error; err != nil {
		l.Error().Err(err).Msg("list file rows failed")
		return
	}

	known := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if r.PublicID != "" {
			known[r.PublicID] = struct{}{}
		}
	}

	remote := make(map[string]struct{}, len(keys))

	var orphans int

	for _, key := range keys {
		remote[key] = struct{}{}

		if _, ok := known[key]; ok {
			continue
		}

		// 忽略非本服务命名风格的对象，避免误删共享桶里的数据
		if !strings.Contains(key, "/") {
			continue
		}

		if err := s3c.Remove(ctx, key); err != nil {
			l.Warn().Err(err).Str("key", key).Msg("failed to remove orphan object")
			continue
		}

		orphans++
	}

	var dangling int

	// 远端列举被截断时跳过缺失检测，避免把未列举到的对象误报为缺失
	if len(keys) < maxSweep {
		for key := range known {
			if _, ok := remote[key]; !ok {
				l.Warn().Str("key", key).Msg("file row points to missing remote object")

				dangling++
			}
		}
	}

	if orphans > 0 || dangling > 0 {
		l.Info().Int("orphans_removed", orphans).Int("dangling_rows", dangling).Msg("storage reconcile finished")
	}
}
