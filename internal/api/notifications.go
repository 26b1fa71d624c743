package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Albiehao/kanban/internal/dto"
)

// ListNotifications 获取通知列表，unreadOnly 为 true 时仅返回未读
func (c *Client) ListNotifications(ctx context.Context, unreadOnly bool) ([]dto.NotificationPayload, error) {
	path := "/notifications"
	if unreadOnly {
		path += "?unread_only=true"
	}

	raw, err := c.get(ctx, path, requestOptions{})
	if err != nil {
		return nil, err
	}
	return dto.DecodeEnvelope[[]dto.NotificationPayload](raw)
}

// AddNotification 创建通知
func (c *Client) AddNotification(ctx context.Context, n dto.NotificationPayload) (dto.NotificationPayload, error) {
	raw, err := c.do(ctx, http.MethodPost, "/notifications", n, requestOptions{})
	if err != nil {
		return dto.NotificationPayload{}, err
	}
	return dto.DecodeEnvelope[dto.NotificationPayload](raw)
}

// UpdateNotification 更新通知
func (c *Client) UpdateNotification(ctx context.Context, id int, n dto.NotificationPayload) (dto.NotificationPayload, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d", id), n, requestOptions{})
	if err != nil {
		return dto.NotificationPayload{}, err
	}
	return dto.DecodeEnvelope[dto.NotificationPayload](raw)
}

// DeleteNotification 删除通知
func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", id), nil, requestOptions{})
	return err
}

// MarkNotificationRead 标记单条已读
func (c *Client) MarkNotificationRead(ctx context.Context, id int) (dto.NotificationPayload, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/notifications/%d/read", id), nil, requestOptions{})
	if err != nil {
		return dto.NotificationPayload{}, err
	}
	return dto.DecodeEnvelope[dto.NotificationPayload](raw)
}

// MarkAllNotificationsRead 标记全部已读
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPut, "/notifications/read-all", nil, requestOptions{})
	return err
}
