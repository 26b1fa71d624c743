package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Albiehao/kanban/internal/dto"
)

// ListTasks 获取任务列表
// 后端可能返回分页格式 {items, pagination} 或直接返回数组，两种形态都归一化为分页格式
func (c *Client) ListTasks(ctx context.Context, q dto.TaskQuery) (dto.TaskListResponse, error) {
	params := url.Values{}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Date != "" {
		params.Set("date", q.Date)
	}
	if q.Completed != nil {
		params.Set("completed", strconv.FormatBool(*q.Completed))
	}
	if q.Priority != "" {
		params.Set("priority", q.Priority)
	}
	if q.HasReminder != nil {
		params.Set("has_reminder", strconv.FormatBool(*q.HasReminder))
	}

	path := "/tasks"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	raw, err := c.get(ctx, path, requestOptions{})
	if err != nil {
		return dto.TaskListResponse{}, err
	}

	return normalizeTaskList(raw)
}

// normalizeTaskList 归一化任务列表的两种响应形态
func normalizeTaskList(raw []byte) (dto.TaskListResponse, error) {
	// 先剥掉可能存在的 {data: ...} 包裹
	inner, err := dto.DecodeEnvelope[json.RawMessage](raw)
	if err != nil {
		return dto.TaskListResponse{}, err
	}

	// 裸数组：包装为单页
	var items []dto.TaskPayload
	if err := json.Unmarshal(inner, &items); err == nil {
		return dto.TaskListResponse{
			Items: items,
			Pagination: dto.Pagination{
				Page:       1,
				Limit:      100,
				Total:      len(items),
				TotalPages: 1,
			},
		}, nil
	}

	var list dto.TaskListResponse
	if err := json.Unmarshal(inner, &list); err != nil || list.Items == nil {
		return dto.TaskListResponse{}, fmt.Errorf("任务列表响应格式不符合预期")
	}
	return list, nil
}

// AddTask 创建任务
func (c *Client) AddTask(ctx context.Context, task dto.TaskPayload) (dto.TaskPayload, error) {
	raw, err := c.do(ctx, http.MethodPost, "/tasks", task, requestOptions{})
	if err != nil {
		return dto.TaskPayload{}, err
	}
	return dto.DecodeEnvelope[dto.TaskPayload](raw)
}

// UpdateTask 更新任务
func (c *Client) UpdateTask(ctx context.Context, id int, updates dto.TaskPayload) (dto.TaskPayload, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/%d", id), updates, requestOptions{})
	if err != nil {
		return dto.TaskPayload{}, err
	}
	return dto.DecodeEnvelope[dto.TaskPayload](raw)
}

// DeleteTask 删除任务
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, requestOptions{})
	return err
}

// BatchDeleteTasks 批量删除任务
func (c *Client) BatchDeleteTasks(ctx context.Context, taskIDs []int) error {
	body := map[string][]int{"task_ids": taskIDs}
	_, err := c.do(ctx, http.MethodDelete, "/tasks/batch", body, requestOptions{})
	return err
}

// ToggleTask 切换任务完成状态
func (c *Client) ToggleTask(ctx context.Context, id int) (dto.TaskPayload, error) {
	raw, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/tasks/%d/toggle", id), nil, requestOptions{})
	if err != nil {
		return dto.TaskPayload{}, err
	}
	return dto.DecodeEnvelope[dto.TaskPayload](raw)
}
