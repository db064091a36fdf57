// Package app 提供应用程序的初始化和启动功能.
package app

import (
	contextPkg "context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yeisme/foldervault/pkg/api"
	"github.com/yeisme/foldervault/pkg/configs"
	"github.com/yeisme/foldervault/pkg/internal/jobs"
	"github.com/yeisme/foldervault/pkg/internal/model"
	"github.com/yeisme/foldervault/pkg/internal/storage"
	"github.com/yeisme/foldervault/pkg/log"
	"github.com/yeisme/foldervault/pkg/metrics"
	"github.com/yeisme/foldervault/pkg/middleware"
	"github.com/yeisme/foldervault/pkg/scheduler"
)

// App 聚合 HTTP 引擎与运行所需的资源.
type App struct {
	Engine  *gin.Engine
	config  *configs.AppConfig
	manager *storage.Manager
	sched   *scheduler.Scheduler
}

// NewApp 按固定顺序完成初始化：配置、日志、监控、存储、路由、定时任务.
func NewApp(configPath string) *App {
	ctx := contextPkg.Background()

	// 初始化配置
	if err := configs.InitConfig(configPath); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	config := configs.GetConfig()

	// 初始化日志，内部按 debug 开关设置 gin 运行模式
	log.Init()

	// 初始化监控
	if err := metrics.InitMetrics(config.Metrics); err != nil {
		fmt.Printf("Error initializing metrics: %v\n", err)
		os.Exit(1)
	}

	// 初始化存储
	manager, err := storage.Init(ctx)
	if err != nil {
		fmt.Printf("Error initializing storage: %v\n", err)
		os.Exit(1)
	}

	// 同步表结构
	if err := manager.GetDBClient().AutoMigrate(&model.Folder{}, &model.File{}); err != nil {
		fmt.Printf("Error migrating schema: %v\n", err)
		os.Exit(1)
	}

	l := log.Logger()
	gin.DefaultWriter = log.NewGinWriter(l, zerolog.InfoLevel)
	gin.DefaultErrorWriter = log.NewGinWriter(l, zerolog.ErrorLevel)

	engine := gin.New()

	engine.Use(
		gin.Recovery(),
		middleware.GinLoggerMiddleware(),
		middleware.CORSMiddleware(config.Server),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.PrometheusMiddleware(),
		middleware.RateLimitMiddleware(config.RateLimit),
		middleware.CircuitBreakerMiddleware(config.CircuitBreaker),
		middleware.StorageMiddleware(manager),
	)

	// 定时任务
	var sched *scheduler.Scheduler

	if config.Jobs.Enabled {
		sched, err = scheduler.NewScheduler()
		if err != nil {
			fmt.Printf("Error initializing scheduler: %v\n", err)
			os.Exit(1)
		}

		if err := jobs.RegisterCronJobs(sched, manager); err != nil {
			fmt.Printf("Error registering cron jobs: %v\n", err)
			os.Exit(1)
		}

		engine.Use(middleware.SchedulerMiddleware(sched))
	}

	api.RegisterGroup(engine, config)

	if config.Metrics.Enabled {
		metrics.RegisterMetricsRoutes(config.Metrics, engine)
	}

	return &App{
		Engine:  engine,
		config:  config,
		manager: manager,
		sched:   sched,
	}
}

// Run 启动 HTTP 服务并在收到终止信号后优雅关闭.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)

	srv := &http.Server{
		Addr:        addr,
		Handler:     a.Engine,
		ReadTimeout: a.config.Server.GetTimeoutDuration(),
	}

	errCh := make(chan error, 1)

	go func() {
		log.Logger().Info().Str("addr", addr).Msg("HTTP server starting")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	if a.sched != nil {
		a.sched.Start()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Logger().Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := contextPkg.WithTimeout(contextPkg.Background(), a.config.Server.GetTimeoutDuration())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Logger().Error().Err(err).Msg("server shutdown failed")
	}

	a.close()

	return nil
}

// close 释放调度器与存储资源.
func (a *App) close() {
	if a.sched != nil {
		if err := a.sched.Stop(); err != nil {
			log.Logger().Warn().Err(err).Msg("failed to stop scheduler")
		}
	}

	a.manager.Close()

	// 等待日志和事件落盘
	time.Sleep(100 * time.Millisecond)
}
