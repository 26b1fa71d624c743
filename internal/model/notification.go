package model

// NotificationType 通知级别
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

// Notification 站内通知
type Notification struct {
	ID        int              `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp string           `json:"timestamp"`
	Read      bool             `json:"read"`
	Category  string           `json:"category"` // system | course | task | user
	ActionURL string           `json:"actionUrl,omitempty"`
}
