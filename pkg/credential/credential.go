package credential

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"github.com/Albiehao/kanban/pkg/kvstore"
)

// tokenKey 凭证在本地存储中的固定键，与浏览器端约定一致
const tokenKey = "auth_token"

var ErrNoToken = errors.New("本地不存在凭证")

// Manager Bearer 凭证管理器
// 仅负责凭证的存取与清除；不做客户端侧过期跟踪，
// 过期通过后端返回 401 被动发现
type Manager struct {
	store kvstore.Store
}

// NewManager 创建凭证管理器
func NewManager(store kvstore.Store) *Manager {
	return &Manager{store: store}
}

// SetToken 保存凭证
func (m *Manager) SetToken(token string) error {
	return m.store.Set(tokenKey, token)
}

// Token 读取凭证，不存在时第二个返回值为 false
func (m *Manager) Token() (string, bool) {
	return m.store.Get(tokenKey)
}

// RemoveToken 清除凭证
func (m *Manager) RemoveToken() error {
	return m.store.Delete(tokenKey)
}

// HasToken 判断凭证是否存在
func (m *Manager) HasToken() bool {
	return kvstore.Has(m.store, tokenKey)
}

// Claims 凭证中可供展示的声明
// 仅用于展示场景（如兼容旧版缓存用户的回退路径），不构成安全边界
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// PeekClaims 不验证签名地解码凭证声明
// 后端使用 HS256 签发，sub 为用户名；签名校验由后端 /auth/verify 完成
func (m *Manager) PeekClaims() (*Claims, error) {
	token, ok := m.Token()
	if !ok {
		return nil, ErrNoToken
	}

	var claims jwtv5.RegisteredClaims
	if _, _, err := jwtv5.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, err
	}

	c := &Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		c.ExpiresAt = claims.ExpiresAt.Time
	}
	return c, nil
}
