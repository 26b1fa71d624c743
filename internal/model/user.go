package model

// Role 用户角色
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleTeacher    Role = "teacher"
	RoleStudent    Role = "student"
)

// AuthUser 已认证用户
type AuthUser struct {
	ID          int      `json:"id"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}

// IsAdminClass 是否为管理员级角色（超级管理员或管理员）
func (u *AuthUser) IsAdminClass() bool {
	return u.Role == RoleSuperAdmin || u.Role == RoleAdmin
}

// HasRole 判断用户是否为指定角色
func (u *AuthUser) HasRole(role Role) bool {
	return u.Role == role
}

// HasPermission 判断权限列表中是否包含指定权限
func (u *AuthUser) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
