package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Albiehao/kanban/internal/dto"
)

// Admin 管理面板状态容器
type Admin struct {
	mu sync.Mutex

	api    AdminAPI
	logger *zap.Logger

	stats    dto.AdminStats
	users    []dto.AdminUser
	settings dto.SystemSettings
	logs     []dto.SystemLog
	server   dto.ServerInfo
}

// NewAdmin 创建管理面板 Store
func NewAdmin(adminAPI AdminAPI, logger *zap.Logger) *Admin {
	return &Admin{api: adminAPI, logger: logger}
}

// Load 并发拉取统计、用户列表与系统设置。
// 任一资源族失败都保留该族现值，错误合并返回。
func (a *Admin) Load(ctx context.Context) error {
	var (
		stats    dto.AdminStats
		statsErr error

		users    []dto.AdminUser
		usersErr error

		settings    dto.SystemSettings
		settingsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, statsErr = a.api.AdminStats(gctx)
		return nil
	})
	g.Go(func() error {
		users, usersErr = a.api.AdminUsers(gctx)
		return nil
	})
	g.Go(func() error {
		settings, settingsErr = a.api.SystemSettings(gctx)
		return nil
	})
	_ = g.Wait()

	a.mu.Lock()
	if statsErr == nil {
		a.stats = stats
	}
	if usersErr == nil {
		a.users = users
	}
	if settingsErr == nil {
		a.settings = settings
	}
	a.mu.Unlock()

	for _, err := range []error{statsErr, usersErr, settingsErr} {
		if err != nil {
			return err
		}
	}
	return nil
}

// ── 状态读取 ──

// Stats 返回管理统计
func (a *Admin) Stats() dto.AdminStats {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.stats
}

// Users 返回用户列表快照
func (a *Admin) Users() []dto.AdminUser {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]dto.AdminUser(nil), a.users...)
}

// Settings 返回系统设置
func (a *Admin) Settings() dto.SystemSettings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// Logs 返回系统日志快照
func (a *Admin) Logs() []dto.SystemLog {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]dto.SystemLog(nil), a.logs...)
}

// Server 返回服务器运行信息
func (a *Admin) Server() dto.ServerInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.server
}

// ── 刷新与写路径 ──

// LoadLogs 按条件拉取系统日志
func (a *Admin) LoadLogs(ctx context.Context, q dto.LogQuery) error {
	logs, err := a.api.SystemLogs(ctx, q)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.logs = logs
	a.mu.Unlock()
	return nil
}

// LoadServerInfo 拉取服务器运行信息
func (a *Admin) LoadServerInfo(ctx context.Context) error {
	info, err := a.api.ServerInfo(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.server = info
	a.mu.Unlock()
	return nil
}

// UpdateSettings 更新系统设置，以服务端返回为准
func (a *Admin) UpdateSettings(ctx context.Context, settings dto.SystemSettings) error {
	updated, err := a.api.UpdateSystemSettings(ctx, settings)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.settings = updated
	a.mu.Unlock()
	return nil
}

// AddLog 追加系统日志
func (a *Admin) AddLog(ctx context.Context, log dto.SystemLog) error {
	created, err := a.api.AddSystemLog(ctx, log)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.logs = append(a.logs, created)
	a.mu.Unlock()
	return nil
}

// DeleteLog 删除单条系统日志
func (a *Admin) DeleteLog(ctx context.Context, logID int) error {
	if err := a.api.DeleteSystemLog(ctx, logID); err != nil {
		return err
	}
	a.mu.Lock()
	filtered := a.logs[:0:0]
	for _, log := range a.logs {
		if log.ID != logID {
			filtered = append(filtered, log)
		}
	}
	a.logs = filtered
	a.mu.Unlock()
	return nil
}

// ClearLogs 清空系统日志
func (a *Admin) ClearLogs(ctx context.Context) error {
	if err := a.api.ClearSystemLogs(ctx); err != nil {
		return err
	}
	a.mu.Lock()
	a.logs = nil
	a.mu.Unlock()
	return nil
}

// UpdateUserStatus 变更用户启停状态
func (a *Admin) UpdateUserStatus(ctx context.Context, userID int, status string) error {
	updated, err := a.api.UpdateUserStatus(ctx, userID, status)
	if err != nil {
		return err
	}
	a.applyUser(updated)
	return nil
}

// UpdateUser 更新用户信息
func (a *Admin) UpdateUser(ctx context.Context, userID int, user dto.AdminUser) error {
	updated, err := a.api.UpdateAdminUser(ctx, userID, user)
	if err != nil {
		return err
	}
	a.applyUser(updated)
	return nil
}

// DeleteUser 删除用户
func (a *Admin) DeleteUser(ctx context.Context, userID int) error {
	if err := a.api.DeleteAdminUser(ctx, userID); err != nil {
		return err
	}
	a.mu.Lock()
	filtered := a.users[:0:0]
	for _, u := range a.users {
		if u.ID != userID {
			filtered = append(filtered, u)
		}
	}
	a.users = filtered
	a.mu.Unlock()
	return nil
}

func (a *Admin) applyUser(updated dto.AdminUser) {
	a.mu.Lock()
	for i := range a.users {
		if a.users[i].ID == updated.ID {
			a.users[i] = updated
			break
		}
	}
	a.mu.Unlock()
}
