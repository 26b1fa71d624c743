package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Albiehao/kanban/internal/dto"
)

// AdminData 获取管理面板聚合数据
func (c *Client) AdminData(ctx context.Context) (dto.AdminData, error) {
	raw, err := c.get(ctx, "/admin/data", requestOptions{})
	if err != nil {
		return dto.AdminData{}, err
	}
	return dto.DecodeEnvelope[dto.AdminData](raw)
}

// AdminStats 获取管理面板统计
func (c *Client) AdminStats(ctx context.Context) (dto.AdminStats, error) {
	raw, err := c.get(ctx, "/admin/stats", requestOptions{})
	if err != nil {
		return dto.AdminStats{}, err
	}
	return dto.DecodeEnvelope[dto.AdminStats](raw)
}

// AdminUsers 获取用户列表
func (c *Client) AdminUsers(ctx context.Context) ([]dto.AdminUser, error) {
	raw, err := c.get(ctx, "/admin/users", requestOptions{})
	if err != nil {
		return nil, err
	}
	return dto.DecodeEnvelope[[]dto.AdminUser](raw)
}

// SystemSettings 获取系统设置
func (c *Client) SystemSettings(ctx context.Context) (dto.SystemSettings, error) {
	raw, err := c.get(ctx, "/admin/settings", requestOptions{})
	if err != nil {
		return dto.SystemSettings{}, err
	}
	return dto.DecodeEnvelope[dto.SystemSettings](raw)
}

// UpdateSystemSettings 更新系统设置
func (c *Client) UpdateSystemSettings(ctx context.Context, settings dto.SystemSettings) (dto.SystemSettings, error) {
	raw, err := c.do(ctx, http.MethodPut, "/admin/settings", settings, requestOptions{})
	if err != nil {
		return dto.SystemSettings{}, err
	}
	return dto.DecodeEnvelope[dto.SystemSettings](raw)
}

// ServerInfo 获取服务器运行信息
func (c *Client) ServerInfo(ctx context.Context) (dto.ServerInfo, error) {
	raw, err := c.get(ctx, "/admin/server/info", requestOptions{})
	if err != nil {
		return dto.ServerInfo{}, err
	}
	return dto.DecodeEnvelope[dto.ServerInfo](raw)
}

// SystemLogs 查询系统日志
func (c *Client) SystemLogs(ctx context.Context, q dto.LogQuery) ([]dto.SystemLog, error) {
	params := url.Values{}
	if q.Level != "" {
		params.Set("level", q.Level)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	path := "/admin/logs"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	raw, err := c.get(ctx, path, requestOptions{})
	if err != nil {
		return nil, err
	}
	return dto.DecodeEnvelope[[]dto.SystemLog](raw)
}

// AddSystemLog 写入一条系统日志
func (c *Client) AddSystemLog(ctx context.Context, log dto.SystemLog) (dto.SystemLog, error) {
	raw, err := c.do(ctx, http.MethodPost, "/admin/logs", log, requestOptions{})
	if err != nil {
		return dto.SystemLog{}, err
	}
	return dto.DecodeEnvelope[dto.SystemLog](raw)
}

// DeleteSystemLog 删除单条系统日志
func (c *Client) DeleteSystemLog(ctx context.Context, logID int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/logs/%d", logID), nil, requestOptions{})
	return err
}

// ClearSystemLogs 清空系统日志
func (c *Client) ClearSystemLogs(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/admin/logs", nil, requestOptions{})
	return err
}

// UpdateUserStatus 启用/停用用户
func (c *Client) UpdateUserStatus(ctx context.Context, userID int, status string) (dto.AdminUser, error) {
	body := map[string]string{"status": status}
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/status", userID), body, requestOptions{})
	if err != nil {
		return dto.AdminUser{}, err
	}
	return dto.DecodeEnvelope[dto.AdminUser](raw)
}

// UpdateAdminUser 更新用户信息
func (c *Client) UpdateAdminUser(ctx context.Context, userID int, user dto.AdminUser) (dto.AdminUser, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d", userID), user, requestOptions{})
	if err != nil {
		return dto.AdminUser{}, err
	}
	return dto.DecodeEnvelope[dto.AdminUser](raw)
}

// DeleteAdminUser 删除用户
func (c *Client) DeleteAdminUser(ctx context.Context, userID int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", userID), nil, requestOptions{})
	return err
}
