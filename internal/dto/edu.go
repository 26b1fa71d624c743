package dto

// EduBindRequest 教务系统绑定请求
type EduBindRequest struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
}

// EduBindingStatus 教务系统绑定状态
type EduBindingStatus struct {
	Bound     bool   `json:"bound"`
	StudentID string `json:"student_id,omitempty"`
	BoundAt   string `json:"bound_at,omitempty"`
}

// StatusMessage 通用操作结果
type StatusMessage struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
