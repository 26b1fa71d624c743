package dto

// AdminStats 管理面板统计
type AdminStats struct {
	TotalUsers     int `json:"totalUsers"`
	ActiveCourses  int `json:"activeCourses"`
	PendingTasks   int `json:"pendingTasks"`
	SystemWarnings int `json:"systemWarnings"`
}

// AdminUser 管理面板用户条目
type AdminUser struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"` // active | inactive
	LastLogin string `json:"last_login,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// SystemSettings 系统设置
type SystemSettings struct {
	MaintenanceMode    bool `json:"maintenanceMode"`
	AutoBackup         bool `json:"autoBackup"`
	EmailNotifications bool `json:"emailNotifications"`
}

// SystemLog 系统日志条目
type SystemLog struct {
	ID        int    `json:"id"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source,omitempty"`
}

// ServerInfo 服务器运行信息
type ServerInfo struct {
	Version   string  `json:"version"`
	Uptime    string  `json:"uptime"`
	CPUUsage  float64 `json:"cpu_usage"`
	MemUsage  float64 `json:"mem_usage"`
	DiskUsage float64 `json:"disk_usage"`
}

// AdminData 管理面板聚合数据
type AdminData struct {
	Stats    AdminStats     `json:"stats"`
	Users    []AdminUser    `json:"users"`
	Settings SystemSettings `json:"systemSettings"`
}

// LogQuery 日志查询参数
type LogQuery struct {
	Level string
	Limit int
}
