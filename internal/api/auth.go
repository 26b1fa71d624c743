package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Albiehao/kanban/internal/dto"
)

// Login 登录并在成功后保存凭证
func (c *Client) Login(ctx context.Context, username, password string) (dto.LoginResponse, error) {
	body := dto.LoginRequest{Username: username, Password: password}
	raw, err := c.do(ctx, http.MethodPost, "/auth/login", body, requestOptions{skipAuth: true})
	if err != nil {
		return dto.LoginResponse{}, err
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return dto.LoginResponse{}, fmt.Errorf("解码登录响应失败: %w", err)
	}

	if resp.Token != "" {
		if err := c.cred.SetToken(resp.Token); err != nil {
			return dto.LoginResponse{}, fmt.Errorf("保存凭证失败: %w", err)
		}
	}

	return resp, nil
}

// Logout 通知后端登出；无论后端调用是否成功，本地凭证一律清除
func (c *Client) Logout(ctx context.Context) error {
	var callErr error
	if c.cred.HasToken() {
		_, callErr = c.do(ctx, http.MethodPost, "/auth/logout", nil, requestOptions{})
	}
	if err := c.cred.RemoveToken(); err != nil {
		c.logger.Warn("清除凭证失败", zap.Error(err))
	}
	return callErr
}

// VerifyToken 校验本地凭证的有效性
// 无凭证或校验失败都归一化为 Valid=false，不向上抛错
func (c *Client) VerifyToken(ctx context.Context) dto.VerifyResponse {
	if !c.cred.HasToken() {
		return dto.VerifyResponse{Valid: false}
	}

	raw, err := c.get(ctx, "/auth/verify", requestOptions{})
	if err != nil {
		return dto.VerifyResponse{Valid: false}
	}

	var resp dto.VerifyResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return dto.VerifyResponse{Valid: false}
	}
	if resp.User != nil {
		resp.Valid = true
	}
	return resp
}

// RefreshToken 刷新凭证，成功时保存并返回新凭证
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	if !c.cred.HasToken() {
		return "", fmt.Errorf("本地没有可刷新的凭证")
	}

	raw, err := c.do(ctx, http.MethodPost, "/auth/refresh", nil, requestOptions{})
	if err != nil {
		return "", err
	}

	var resp dto.RefreshResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("解码刷新响应失败: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("刷新响应中没有凭证")
	}

	if err := c.cred.SetToken(resp.Token); err != nil {
		return "", fmt.Errorf("保存凭证失败: %w", err)
	}
	return resp.Token, nil
}

// Register 注册并在成功后保存凭证
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) (dto.LoginResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/auth/register", req, requestOptions{skipAuth: true})
	if err != nil {
		return dto.LoginResponse{}, err
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return dto.LoginResponse{}, fmt.Errorf("解码注册响应失败: %w", err)
	}

	if resp.Token != "" {
		if err := c.cred.SetToken(resp.Token); err != nil {
			return dto.LoginResponse{}, fmt.Errorf("保存凭证失败: %w", err)
		}
	}
	return resp, nil
}
