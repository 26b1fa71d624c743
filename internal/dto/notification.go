package dto

import "github.com/Albiehao/kanban/internal/model"

// NotificationPayload 通知的后端线上形态
type NotificationPayload struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
	Category  string `json:"category"`
	ActionURL string `json:"actionUrl,omitempty"`
}

// ToNotification 转换为客户端通知实体
func (p *NotificationPayload) ToNotification() model.Notification {
	return model.Notification{
		ID:        p.ID,
		Title:     p.Title,
		Message:   p.Message,
		Type:      model.NotificationType(p.Type),
		Timestamp: p.Timestamp,
		Read:      p.Read,
		Category:  p.Category,
		ActionURL: p.ActionURL,
	}
}
