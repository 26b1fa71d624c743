package model

// Column 仪表盘列位
type Column string

const (
	ColumnLeft   Column = "left"
	ColumnMiddle Column = "middle"
	ColumnRight  Column = "right"
)

// ModuleConfig 仪表盘模块的可见性配置，纯 UI 状态，不回写后端
type ModuleConfig struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Column  Column `json:"column"`
}

// DefaultModules 返回默认模块布局
func DefaultModules() []ModuleConfig {
	return []ModuleConfig{
		{ID: "calendar", Name: "日历", Visible: true, Column: ColumnLeft},
		{ID: "task-stats", Name: "任务统计", Visible: true, Column: ColumnLeft},
		{ID: "finance-stats", Name: "财务统计", Visible: true, Column: ColumnLeft},
		{ID: "stats", Name: "数据统计", Visible: true, Column: ColumnLeft},
		{ID: "tasks", Name: "任务列表", Visible: true, Column: ColumnMiddle},
		{ID: "courses", Name: "课程表", Visible: true, Column: ColumnMiddle},
		{ID: "finance", Name: "账本", Visible: true, Column: ColumnRight},
		{ID: "ai-chat", Name: "AI助手", Visible: true, Column: ColumnRight},
		{ID: "reminders", Name: "事件提醒", Visible: true, Column: ColumnRight},
		{ID: "chart", Name: "完成量图表", Visible: true, Column: ColumnRight},
	}
}
