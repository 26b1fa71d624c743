package store

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/Albiehao/kanban/internal/model"
	"github.com/Albiehao/kanban/pkg/kvstore"
)

// authUserKey 持久化的用户信息键，与浏览器端约定一致
const authUserKey = "auth_user"

// Auth 认证状态容器
type Auth struct {
	mu sync.Mutex

	api    AuthAPI
	cred   CredentialStore
	kv     kvstore.Store
	logger *zap.Logger

	user          *model.AuthUser
	authenticated bool
}

// NewAuth 创建认证 Store
func NewAuth(authAPI AuthAPI, cred CredentialStore, kv kvstore.Store, logger *zap.Logger) *Auth {
	return &Auth{
		api:    authAPI,
		cred:   cred,
		kv:     kv,
		logger: logger,
	}
}

// Init 恢复认证状态：
//   - 有 Token 时向后端校验，有效则采用服务端返回的用户，无效则清空本地凭证；
//     校验通过但响应未附带用户时，退回本地快照或 Token 声明中的 sub；
//   - 无 Token 但存在历史遗留的 auth_user 快照时直接采用（未经校验，
//     与旧版浏览器端行为保持一致，后续任何 401 都会触发清理）。
func (a *Auth) Init(ctx context.Context) {
	if a.cred.HasToken() {
		resp := a.api.VerifyToken(ctx)
		if resp.Valid {
			if resp.User != nil {
				user := resp.User.ToAuthUser()
				a.setUser(&user)
				a.persistUser(&user)
				return
			}
			a.adoptLocalIdentity()
			return
		}

		a.logger.Info("Token 校验未通过，清空本地凭证")
		a.clearLocal()
		return
	}

	if user, ok := a.readSnapshot(); ok {
		a.setUser(&user)
	}
}

// adoptLocalIdentity Token 有效但后端未附带用户信息时的回退链：
// 先取本地用户快照，缺失或损坏再取 Token 声明中的 sub（未经签名校验，
// 仅作展示身份，角色按最低权限处理）
func (a *Auth) adoptLocalIdentity() {
	if user, ok := a.readSnapshot(); ok {
		a.setUser(&user)
		return
	}

	claims, err := a.cred.PeekClaims()
	if err != nil || claims.Subject == "" {
		a.logger.Warn("Token 有效但无法确定用户身份")
		return
	}
	user := model.AuthUser{Username: claims.Subject, Role: model.RoleStudent}
	a.setUser(&user)
}

// readSnapshot 读取持久化的用户快照，损坏时就地清理
func (a *Auth) readSnapshot() (model.AuthUser, bool) {
	raw, ok := a.kv.Get(authUserKey)
	if !ok {
		return model.AuthUser{}, false
	}
	var user model.AuthUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		a.logger.Warn("历史用户快照损坏，已丢弃", zap.Error(err))
		if err := a.kv.Delete(authUserKey); err != nil {
			a.logger.Warn("清理用户快照失败", zap.Error(err))
		}
		return model.AuthUser{}, false
	}
	return user, true
}

// Login 登录。成功返回 true 并持久化用户信息；任何失败都返回 false，
// 不向调用方抛错（失败原因记入日志）。
func (a *Auth) Login(ctx context.Context, username, password string) bool {
	resp, err := a.api.Login(ctx, username, password)
	if err != nil {
		a.logger.Warn("登录失败", zap.String("username", username), zap.Error(err))
		return false
	}
	if !resp.Success || resp.User == nil {
		a.logger.Info("登录被拒绝",
			zap.String("username", username), zap.String("message", resp.Message))
		return false
	}

	user := resp.User.ToAuthUser()
	a.setUser(&user)
	a.persistUser(&user)
	return true
}

// Logout 登出。无论后端调用是否成功，本地凭证与用户状态都会被清空；
// 后端调用的错误原样返回供调用方记录。
func (a *Auth) Logout(ctx context.Context) error {
	err := a.api.Logout(ctx)
	a.clearLocal()
	return err
}

// HandleUnauthorized 收到 401 后的清理入口，注册为 API 客户端的回调
func (a *Auth) HandleUnauthorized() {
	a.logger.Info("收到未授权响应，清空认证状态")
	a.clearLocal()
}

// ── 状态读取 ──

// User 返回当前用户，未登录时为 nil
func (a *Auth) User() *model.AuthUser {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.user == nil {
		return nil
	}
	user := *a.user
	return &user
}

// IsAuthenticated 返回是否已认证
func (a *Auth) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}

// IsAdmin 返回当前用户是否为管理员级角色
func (a *Auth) IsAdmin() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.user.IsAdminClass()
}

// HasPermission 返回当前用户是否持有指定权限
func (a *Auth) HasPermission(permission string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil && a.user.HasPermission(permission)
}

// ── 内部辅助 ──

func (a *Auth) setUser(user *model.AuthUser) {
	a.mu.Lock()
	a.user = user
	a.authenticated = user != nil
	a.mu.Unlock()
}

// persistUser 把用户信息写入 kv，供下次启动时离线恢复
func (a *Auth) persistUser(user *model.AuthUser) {
	raw, err := json.Marshal(user)
	if err != nil {
		a.logger.Warn("序列化用户信息失败", zap.Error(err))
		return
	}
	if err := a.kv.Set(authUserKey, string(raw)); err != nil {
		a.logger.Warn("持久化用户信息失败", zap.Error(err))
	}
}

// clearLocal 清空内存状态、持久化快照与 Token
func (a *Auth) clearLocal() {
	a.setUser(nil)
	if err := a.kv.Delete(authUserKey); err != nil {
		a.logger.Warn("清理用户快照失败", zap.Error(err))
	}
	if err := a.cred.RemoveToken(); err != nil {
		a.logger.Warn("清理 Token 失败", zap.Error(err))
	}
}
