package dto

import "github.com/Albiehao/kanban/internal/model"

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserInfo 认证接口返回的用户信息
type UserInfo struct {
	ID          int      `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// LoginResponse 登录/注册响应
type LoginResponse struct {
	Success bool      `json:"success"`
	Token   string    `json:"token"`
	User    *UserInfo `json:"user"`
	Message string    `json:"message,omitempty"`
}

// VerifyResponse Token 校验响应
type VerifyResponse struct {
	Valid bool      `json:"valid"`
	User  *UserInfo `json:"user,omitempty"`
}

// RefreshResponse Token 刷新响应
type RefreshResponse struct {
	Token string `json:"token"`
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// ToAuthUser 转换为客户端用户实体
func (u *UserInfo) ToAuthUser() model.AuthUser {
	return model.AuthUser{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        model.Role(u.Role),
		Permissions: u.Permissions,
	}
}
