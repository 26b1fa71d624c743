package api

import (
	"context"
	"net/http"

	"github.com/Albiehao/kanban/internal/dto"
)

// 教务系统绑定：后端接口从 /user/bind-edu 迁移到了 /edu/bind，
// 为兼容旧部署，新路径失败时单次回退旧路径

// BindEdu 绑定教务系统账号
func (c *Client) BindEdu(ctx context.Context, req dto.EduBindRequest) (dto.StatusMessage, error) {
	raw, err := c.do(ctx, http.MethodPost, "/edu/bind", req, requestOptions{})
	if err != nil {
		raw, err = c.do(ctx, http.MethodPost, "/user/bind-edu", req, requestOptions{})
		if err != nil {
			return dto.StatusMessage{}, err
		}
	}
	return dto.DecodeEnvelope[dto.StatusMessage](raw)
}

// EduBindingStatus 查询绑定状态
func (c *Client) EduBindingStatus(ctx context.Context) (dto.EduBindingStatus, error) {
	raw, err := c.get(ctx, "/edu/bind/status", requestOptions{})
	if err != nil {
		raw, err = c.get(ctx, "/user/bind-edu", requestOptions{})
		if err != nil {
			return dto.EduBindingStatus{}, err
		}
	}
	return dto.DecodeEnvelope[dto.EduBindingStatus](raw)
}

// UpdateEduBinding 更新绑定信息
func (c *Client) UpdateEduBinding(ctx context.Context, req dto.EduBindRequest) (dto.StatusMessage, error) {
	raw, err := c.do(ctx, http.MethodPut, "/edu/bind", req, requestOptions{})
	if err != nil {
		return dto.StatusMessage{}, err
	}
	return dto.DecodeEnvelope[dto.StatusMessage](raw)
}

// UnbindEdu 解除绑定
func (c *Client) UnbindEdu(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/edu/bind", nil, requestOptions{})
	return err
}
