package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Albiehao/kanban/internal/dto"
	"github.com/Albiehao/kanban/internal/model"
)

// Notifications 通知状态容器，写路径后端优先
type Notifications struct {
	mu sync.Mutex

	api    NotificationAPI
	logger *zap.Logger

	items []model.Notification
}

// NewNotifications 创建通知 Store
func NewNotifications(notifyAPI NotificationAPI, logger *zap.Logger) *Notifications {
	return &Notifications{api: notifyAPI, logger: logger}
}

// Load 拉取通知列表，unreadOnly 为 true 时仅拉取未读。
// 失败时保留现有列表并返回错误。
func (n *Notifications) Load(ctx context.Context, unreadOnly bool) error {
	payloads, err := n.api.ListNotifications(ctx, unreadOnly)
	if err != nil {
		return err
	}

	items := make([]model.Notification, 0, len(payloads))
	for i := range payloads {
		items = append(items, payloads[i].ToNotification())
	}

	n.mu.Lock()
	n.items = items
	n.mu.Unlock()
	return nil
}

// Items 返回通知快照
func (n *Notifications) Items() []model.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Notification(nil), n.items...)
}

// UnreadCount 返回未读通知数
func (n *Notifications) UnreadCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	count := 0
	for _, item := range n.items {
		if !item.Read {
			count++
		}
	}
	return count
}

// Add 创建通知并入列
func (n *Notifications) Add(ctx context.Context, notification model.Notification) (model.Notification, error) {
	payload := dto.NotificationPayload{
		Title:     notification.Title,
		Message:   notification.Message,
		Type:      string(notification.Type),
		Timestamp: notification.Timestamp,
		Category:  notification.Category,
		ActionURL: notification.ActionURL,
	}
	created, err := n.api.AddNotification(ctx, payload)
	if err != nil {
		return model.Notification{}, err
	}

	item := created.ToNotification()
	n.mu.Lock()
	n.items = append(n.items, item)
	n.mu.Unlock()
	return item, nil
}

// Delete 删除通知
func (n *Notifications) Delete(ctx context.Context, id int) error {
	if err := n.api.DeleteNotification(ctx, id); err != nil {
		return err
	}

	n.mu.Lock()
	filtered := n.items[:0:0]
	for _, item := range n.items {
		if item.ID != id {
			filtered = append(filtered, item)
		}
	}
	n.items = filtered
	n.mu.Unlock()
	return nil
}

// MarkRead 标记单条已读，以服务端返回为准
func (n *Notifications) MarkRead(ctx context.Context, id int) error {
	updated, err := n.api.MarkNotificationRead(ctx, id)
	if err != nil {
		return err
	}

	item := updated.ToNotification()
	n.mu.Lock()
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i] = item
			break
		}
	}
	n.mu.Unlock()
	return nil
}

// MarkAllRead 标记全部已读
func (n *Notifications) MarkAllRead(ctx context.Context) error {
	if err := n.api.MarkAllNotificationsRead(ctx); err != nil {
		return err
	}

	n.mu.Lock()
	for i := range n.items {
		n.items[i].Read = true
	}
	n.mu.Unlock()
	return nil
}
