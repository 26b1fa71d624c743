package dto

import (
	"encoding/json"
	"fmt"
)

// 后端对同一资源族可能返回 {data: T} 包裹或裸 T 两种形态，
// DecodeEnvelope 在客户端边界统一做带校验的解码，格式不符时报错而不是猜测

// DecodeEnvelope 将响应体解码为 T：优先提取 data 字段，否则按裸载荷解析
func DecodeEnvelope[T any](raw []byte) (T, error) {
	var zero T

	if len(raw) == 0 {
		return zero, fmt.Errorf("响应体为空")
	}

	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		var v T
		if err := json.Unmarshal(env.Data, &v); err != nil {
			return zero, fmt.Errorf("解码 data 字段失败: %w", err)
		}
		return v, nil
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, fmt.Errorf("解码响应体失败: %w", err)
	}
	return v, nil
}
