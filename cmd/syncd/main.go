package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"github.com/Albiehao/kanban/config"
	"github.com/Albiehao/kanban/internal/api"
	"github.com/Albiehao/kanban/internal/store"
	"github.com/Albiehao/kanban/pkg/credential"
	"github.com/Albiehao/kanban/pkg/kvstore"
	applogger "github.com/Albiehao/kanban/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("同步客户端启动中...",
		zap.String("base_url", cfg.API.BaseURL),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// 3. 初始化本地存储（Redis 失败时降级到文件存储，不中断启动）
	var kv kvstore.Store
	var redisStore *kvstore.RedisStore
	if cfg.Storage.Backend == "redis" {
		redisStore, err = kvstore.NewRedisStore(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("Redis 存储不可用，降级到文件存储", zap.Error(err))
		} else {
			kv = redisStore
		}
	}
	if kv == nil {
		fileStore, err := kvstore.NewFileStore(filepath.Join(cfg.Storage.Dir, "kanban.json"))
		if err != nil {
			logger.Fatal("初始化本地存储失败", zap.Error(err))
		}
		kv = fileStore
	}

	// 4. 依赖注入: 凭证 → API 客户端 → Store
	cred := credential.NewManager(kv)
	client := api.New(&cfg.API, cred, logger)
	stores := store.New(cfg, store.Deps{
		Dashboard: client,
		Auth:      client,
		Notify:    client,
		Admin:     client,
		Cred:      cred,
		KV:        kv,
		Logger:    logger,
	})
	client.OnUnauthorized(stores.Auth.HandleUnauthorized)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 5. 恢复认证状态并做首次全量加载
	stores.Auth.Init(ctx)
	if stores.Auth.IsAuthenticated() {
		logger.Info("认证状态已恢复", zap.String("username", stores.Auth.User().Username))
	}
	if err := stores.Dashboard.LoadAll(ctx); err != nil {
		logger.Warn("首次全量加载失败", zap.Error(err))
	}

	// 6. 按配置启动周期刷新
	if cfg.Refresh.Enabled {
		stores.Dashboard.StartAutoRefresh(ctx)
		logger.Info("周期刷新已启动", zap.Duration("interval", cfg.Refresh.Interval))
	}

	// 7. 监听系统信号：SIGUSR1 按需导出快照，SIGINT/SIGTERM 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	dump := make(chan os.Signal, 1)
	signal.Notify(dump, syscall.SIGUSR1)

loop:
	for {
		select {
		case <-dump:
			exportSnapshot(stores.Dashboard, cfg.Storage.Dir, logger)
		case sig := <-quit:
			logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))
			break loop
		}
	}

	stores.Dashboard.StopAutoRefresh()
	cancel()

	if redisStore != nil {
		redisStore.Close()
	}

	logger.Info("同步客户端已退出")
}

// exportSnapshot 把当前内存快照写出到本地目录：当日日程为 .ics，账本为 .xlsx
func exportSnapshot(d *store.Dashboard, dir string, logger *zap.Logger) {
	buf, name, err := d.ExportDaySchedule()
	if err != nil {
		logger.Warn("导出当日日程失败", zap.Error(err))
	} else {
		writeExport(filepath.Join(dir, name), buf.Bytes(), logger)
	}

	buf, name, err = d.ExportLedger()
	if err != nil {
		logger.Warn("导出账本失败", zap.Error(err))
	} else {
		writeExport(filepath.Join(dir, name), buf.Bytes(), logger)
	}
}

func writeExport(path string, data []byte, logger *zap.Logger) {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Warn("写入导出文件失败", zap.String("file", path), zap.Error(err))
		return
	}
	logger.Info("导出完成", zap.String("file", path))
}
