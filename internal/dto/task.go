package dto

import (
	"github.com/Albiehao/kanban/internal/model"
)

// TaskPayload 任务的后端线上形态
// has_reminder 与核心状态 HasReminder 的互转只发生在本文件
type TaskPayload struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Completed    bool   `json:"completed"`
	Priority     string `json:"priority"`
	Date         string `json:"date"`
	Time         string `json:"time,omitempty"`
	HasReminder  *bool  `json:"has_reminder,omitempty"`
	ReminderTime string `json:"reminder_time,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Pagination 分页元数据
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// TaskListResponse 任务列表的分页响应
type TaskListResponse struct {
	Items      []TaskPayload `json:"items"`
	Pagination Pagination    `json:"pagination"`
}

// TaskQuery 任务列表查询参数
type TaskQuery struct {
	Page        int
	Limit       int
	Date        string
	Completed   *bool
	Priority    string
	HasReminder *bool
}

// ToTask 转换为客户端任务实体
func (p *TaskPayload) ToTask() model.Task {
	t := model.Task{
		ID:           p.ID,
		Title:        p.Title,
		Completed:    p.Completed,
		Priority:     model.Priority(p.Priority),
		Date:         p.Date,
		Time:         p.Time,
		ReminderTime: p.ReminderTime,
		Description:  p.Description,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if p.HasReminder != nil {
		t.HasReminder = *p.HasReminder
	}
	return t
}

// TaskToPayload 转换为线上形态
func TaskToPayload(t model.Task) TaskPayload {
	hasReminder := t.HasReminder
	return TaskPayload{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Completed:    t.Completed,
		Priority:     string(t.Priority),
		Date:         t.Date,
		Time:         t.Time,
		HasReminder:  &hasReminder,
		ReminderTime: t.ReminderTime,
	}
}
