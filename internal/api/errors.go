package api

import (
	"errors"
	"fmt"
)

// Error 传输/HTTP 层失败
// Status 为 0 表示网络层拒绝（未拿到 HTTP 状态码）
type Error struct {
	Status int
	// NotImplemented 标记"后端未实现"：仅财务资源族的 404 会带上该标记，
	// 调用方据此静默降级而不是上报错误
	NotImplemented bool
	Message        string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Status > 0 {
		return fmt.Sprintf("HTTP 请求失败: status=%d", e.Status)
	}
	return "HTTP 请求失败"
}

// IsNotImplemented 判断错误是否为"后端未实现"条件
func IsNotImplemented(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.NotImplemented
}

// StatusOf 提取错误携带的 HTTP 状态码，无状态码时返回 0
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
