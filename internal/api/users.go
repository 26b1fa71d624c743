package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"

	"github.com/Albiehao/kanban/internal/dto"
)

// UserSettings 获取用户设置
// 优先新路径 /user/profile，失败时回退旧路径 /user/settings（单次固定回退，无退避）
func (c *Client) UserSettings(ctx context.Context) (dto.UserSettings, error) {
	raw, err := c.get(ctx, "/user/profile", requestOptions{})
	if err != nil {
		raw, err = c.get(ctx, "/user/settings", requestOptions{})
		if err != nil {
			return dto.UserSettings{}, err
		}
	}
	return dto.DecodeEnvelope[dto.UserSettings](raw)
}

// UpdateProfile 更新用户资料
func (c *Client) UpdateProfile(ctx context.Context, profile dto.UserProfile) (dto.UserProfile, error) {
	raw, err := c.do(ctx, http.MethodPut, "/user/profile", profile, requestOptions{})
	if err != nil {
		return dto.UserProfile{}, err
	}
	return dto.DecodeEnvelope[dto.UserProfile](raw)
}

// UpdatePreferences 更新用户偏好
func (c *Client) UpdatePreferences(ctx context.Context, prefs dto.UserPreferences) (dto.UserPreferences, error) {
	raw, err := c.do(ctx, http.MethodPut, "/user/preferences", prefs, requestOptions{})
	if err != nil {
		return dto.UserPreferences{}, err
	}
	return dto.DecodeEnvelope[dto.UserPreferences](raw)
}

// ChangePassword 修改密码
// 新接口为 POST /user/password；失败时回退旧接口 PUT，且旧接口使用 snake_case 字段名
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := dto.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}
	if _, err := c.do(ctx, http.MethodPost, "/user/password", body, requestOptions{}); err == nil {
		return nil
	}

	legacy := dto.ChangePasswordLegacyRequest{OldPassword: oldPassword, NewPassword: newPassword}
	_, err := c.do(ctx, http.MethodPut, "/user/password", legacy, requestOptions{})
	return err
}

// UpdateBio 更新个人简介
func (c *Client) UpdateBio(ctx context.Context, bio string) error {
	_, err := c.do(ctx, http.MethodPut, "/user/bio", map[string]string{"bio": bio}, requestOptions{})
	return err
}

// UpdateUsername 更新用户名
func (c *Client) UpdateUsername(ctx context.Context, username string) error {
	_, err := c.do(ctx, http.MethodPut, "/user/username", map[string]string{"username": username}, requestOptions{})
	return err
}

// UpdateEmail 更新邮箱
func (c *Client) UpdateEmail(ctx context.Context, email string) error {
	_, err := c.do(ctx, http.MethodPut, "/user/email", map[string]string{"email": email}, requestOptions{})
	return err
}

// UploadAvatar 上传头像（multipart 表单，不走 JSON 管道）
func (c *Client) UploadAvatar(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("avatar", filename)
	if err != nil {
		return "", fmt.Errorf("构造上传表单失败: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("写入上传内容失败: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("关闭上传表单失败: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/user/avatar", &buf)
	if err != nil {
		return "", fmt.Errorf("构造请求失败: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("X-Request-ID", uuid.New().String())
	if token, ok := c.cred.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("上传头像失败: %v", err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Status: resp.StatusCode, Message: fmt.Sprintf("读取响应失败: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{Status: resp.StatusCode}
	}

	result, err := dto.DecodeEnvelope[struct {
		Avatar string `json:"avatar"`
	}](raw)
	if err != nil {
		return "", err
	}
	return result.Avatar, nil
}
