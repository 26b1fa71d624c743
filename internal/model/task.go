package model

// Priority 任务优先级
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Task 任务条目
// 提醒标志在核心状态中只有 HasReminder 一个拼写；
// 与后端 has_reminder 的映射收敛在 dto 层
type Task struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Completed    bool     `json:"completed"`
	Priority     Priority `json:"priority"`
	Date         string   `json:"date"`
	Time         string   `json:"time,omitempty"`
	HasReminder  bool     `json:"hasReminder,omitempty"`
	ReminderTime string   `json:"reminderTime,omitempty"`
	Description  string   `json:"description,omitempty"`
}
