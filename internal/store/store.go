// Package store 持有镜像自后端的客户端状态，是本仓库的同步核心。
// 每个 Store 都是显式构造、依赖注入的状态容器：读路径把失败降级为
// "保持现值或置空"，写路径后端优先、失败原样上抛，由调用方负责呈现。
package store

import (
	"context"

	"go.uber.org/zap"

	"github.com/Albiehao/kanban/config"
	"github.com/Albiehao/kanban/internal/dto"
	"github.com/Albiehao/kanban/pkg/credential"
	"github.com/Albiehao/kanban/pkg/kvstore"
)

// ── Store 消费的 API 能力接口（由 internal/api.Client 实现）──

// CourseAPI 课程资源族
type CourseAPI interface {
	ListCourses(ctx context.Context, startDate, endDate string) ([]dto.CoursePayload, error)
}

// TaskAPI 任务资源族
type TaskAPI interface {
	ListTasks(ctx context.Context, q dto.TaskQuery) (dto.TaskListResponse, error)
	AddTask(ctx context.Context, task dto.TaskPayload) (dto.TaskPayload, error)
	UpdateTask(ctx context.Context, id int, updates dto.TaskPayload) (dto.TaskPayload, error)
	DeleteTask(ctx context.Context, id int) error
	BatchDeleteTasks(ctx context.Context, taskIDs []int) error
	ToggleTask(ctx context.Context, id int) (dto.TaskPayload, error)
}

// FinanceAPI 财务资源族
type FinanceAPI interface {
	ListTransactions(ctx context.Context) ([]dto.TransactionPayload, error)
	FinanceStats(ctx context.Context) (dto.FinanceStatsPayload, error)
	AddTransaction(ctx context.Context, t dto.TransactionPayload) (dto.TransactionPayload, error)
	UpdateTransaction(ctx context.Context, id int, updates dto.TransactionPayload) (dto.TransactionPayload, error)
	DeleteTransaction(ctx context.Context, id int) error
}

// AuthAPI 认证资源族
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (dto.LoginResponse, error)
	Logout(ctx context.Context) error
	VerifyToken(ctx context.Context) dto.VerifyResponse
}

// NotificationAPI 通知资源族
type NotificationAPI interface {
	ListNotifications(ctx context.Context, unreadOnly bool) ([]dto.NotificationPayload, error)
	AddNotification(ctx context.Context, n dto.NotificationPayload) (dto.NotificationPayload, error)
	DeleteNotification(ctx context.Context, id int) error
	MarkNotificationRead(ctx context.Context, id int) (dto.NotificationPayload, error)
	MarkAllNotificationsRead(ctx context.Context) error
}

// AdminAPI 管理资源族
type AdminAPI interface {
	AdminStats(ctx context.Context) (dto.AdminStats, error)
	AdminUsers(ctx context.Context) ([]dto.AdminUser, error)
	SystemSettings(ctx context.Context) (dto.SystemSettings, error)
	UpdateSystemSettings(ctx context.Context, settings dto.SystemSettings) (dto.SystemSettings, error)
	ServerInfo(ctx context.Context) (dto.ServerInfo, error)
	SystemLogs(ctx context.Context, q dto.LogQuery) ([]dto.SystemLog, error)
	AddSystemLog(ctx context.Context, log dto.SystemLog) (dto.SystemLog, error)
	DeleteSystemLog(ctx context.Context, logID int) error
	ClearSystemLogs(ctx context.Context) error
	UpdateUserStatus(ctx context.Context, userID int, status string) (dto.AdminUser, error)
	UpdateAdminUser(ctx context.Context, userID int, user dto.AdminUser) (dto.AdminUser, error)
	DeleteAdminUser(ctx context.Context, userID int) error
}

// DashboardAPI 仪表盘 Store 消费的能力集合
type DashboardAPI interface {
	CourseAPI
	TaskAPI
	FinanceAPI
}

// CredentialStore 凭证能力（由 pkg/credential.Manager 实现）
type CredentialStore interface {
	HasToken() bool
	RemoveToken() error
	PeekClaims() (*credential.Claims, error)
}

// Stores 所有 Store 的聚合入口
type Stores struct {
	Dashboard     *Dashboard
	Auth          *Auth
	Notifications *Notifications
	Admin         *Admin
}

// Deps Store 层的全部依赖
type Deps struct {
	Dashboard DashboardAPI
	Auth      AuthAPI
	Notify    NotificationAPI
	Admin     AdminAPI
	Cred      CredentialStore
	KV        kvstore.Store
	Logger    *zap.Logger
}

// New 创建 Store 聚合
func New(cfg *config.Config, deps Deps) *Stores {
	return &Stores{
		Dashboard:     NewDashboard(cfg, deps.Dashboard, deps.KV, deps.Logger),
		Auth:          NewAuth(deps.Auth, deps.Cred, deps.KV, deps.Logger),
		Notifications: NewNotifications(deps.Notify, deps.Logger),
		Admin:         NewAdmin(deps.Admin, deps.Logger),
	}
}
