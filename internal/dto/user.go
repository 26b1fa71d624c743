package dto

// UserProfile 用户资料
type UserProfile struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	Avatar          string `json:"avatar"`
	CompletedTasks  int    `json:"completedTasks"`
	InProgressTasks int    `json:"inProgressTasks"`
	DaysJoined      int    `json:"daysJoined"`
}

// UserPreferences 用户偏好
type UserPreferences struct {
	DarkMode             bool `json:"darkMode"`
	EmailNotifications   bool `json:"emailNotifications"`
	DesktopNotifications bool `json:"desktopNotifications"`
}

// UserSettings 用户设置聚合
type UserSettings struct {
	Profile     UserProfile     `json:"profile"`
	Preferences UserPreferences `json:"preferences"`
}

// ChangePasswordRequest 修改密码请求（新路径字段名）
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// changePasswordLegacyRequest 旧路径使用 snake_case 字段名
type ChangePasswordLegacyRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
