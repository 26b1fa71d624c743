package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Albiehao/kanban/config"
	"github.com/Albiehao/kanban/pkg/credential"
)

// Client 后端 REST API 客户端
// 所有资源族共用同一个请求管道：凭证附加、请求追踪 ID、
// 状态码到错误分类的映射
type Client struct {
	baseURL string
	hc      *http.Client
	cred    *credential.Manager
	logger  *zap.Logger

	// onUnauthorized 任一已认证请求返回 401 时触发，凭证已先行清除
	onUnauthorized func()
}

// New 创建 API 客户端
func New(cfg *config.APIConfig, cred *credential.Manager, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		hc:      &http.Client{Timeout: cfg.Timeout},
		cred:    cred,
		logger:  logger,
	}
}

// OnUnauthorized 注册 401 信号回调（对应浏览器端的 auth:unauthorized 事件）
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// requestOptions 单次请求的行为开关
type requestOptions struct {
	// tagNotFound 将 404 标记为"后端未实现"而非一般失败
	tagNotFound bool
	// skipAuth 不附加凭证（登录/注册等匿名端点）
	skipAuth bool
}

// do 执行一次 JSON 请求并返回响应体
// 凭证存在时附加 Bearer 头，不存在时从不发送该头
func (c *Client) do(ctx context.Context, method, path string, body any, opts requestOptions) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("序列化请求体失败: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("构造请求失败: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if !opts.skipAuth {
		if token, ok := c.cred.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("请求 %s 失败: %v", path, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: fmt.Sprintf("读取响应失败: %v", err)}
	}

	// 任一已认证端点返回 401：先清除凭证，再向上抛出
	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.cred.RemoveToken(); err != nil {
			c.logger.Warn("清除凭证失败", zap.Error(err))
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil, &Error{Status: http.StatusUnauthorized}
	}

	if resp.StatusCode == http.StatusNotFound && opts.tagNotFound {
		return nil, &Error{Status: http.StatusNotFound, NotImplemented: true}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("API 请求失败",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return nil, &Error{Status: resp.StatusCode}
	}

	return raw, nil
}

// get 发起 GET 请求
func (c *Client) get(ctx context.Context, path string, opts requestOptions) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, opts)
}
