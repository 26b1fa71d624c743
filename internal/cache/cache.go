// Package cache 实现本地回退缓存：网络资源尚未取得或后端不可用时的降级数据源。
// 浏览器端由 localStorage 承担的角色在这里落到 kvstore 上，
// 键名与容器结构保持与浏览器端一致。
package cache

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/Albiehao/kanban/internal/model"
	"github.com/Albiehao/kanban/pkg/kvstore"
)

// 存储键，与浏览器端约定一致
const (
	financeKey       = "finance_data"
	initialLoadedKey = "initial_transactions_loaded"
	tasksKey         = "tasks_data"
	userDataKey      = "user_data"
)

//go:embed fixture/course-data-sample.json
var initialFixture []byte

// 本地生成的 max+1 标识符在并发写入下不安全；
// 该缓存按单进程使用设计，与原始系统的单标签页假设对应

// UserData 用户资料的缓存形态
type UserData struct {
	Profile struct {
		Username        string `json:"username"`
		Email           string `json:"email"`
		Bio             string `json:"bio"`
		Avatar          string `json:"avatar"`
		CompletedTasks  int    `json:"completedTasks"`
		InProgressTasks int    `json:"inProgressTasks"`
		DaysJoined      int    `json:"daysJoined"`
	} `json:"profile"`
	Preferences struct {
		DarkMode             bool `json:"darkMode"`
		EmailNotifications   bool `json:"emailNotifications"`
		DesktopNotifications bool `json:"desktopNotifications"`
	} `json:"preferences"`
}

// financeContainer finance_data 键下的容器结构
type financeContainer struct {
	Transactions []model.Transaction `json:"transactions"`
	FinanceStats *model.FinanceStats `json:"financeStats"`
}

// tasksContainer tasks_data 键下的容器结构
type tasksContainer struct {
	Tasks []model.Task `json:"tasks"`
}

// fixtureData 内置初始数据的结构
type fixtureData struct {
	Transactions []model.Transaction `json:"transactions"`
	FinanceStats *model.FinanceStats `json:"financeStats"`
	Tasks        []fixtureTask       `json:"tasks"`
	UserData     *UserData           `json:"userData"`
}

// fixtureTask 初始数据中任务使用线上字段名
type fixtureTask struct {
	ID           int    `json:"id"`
	Title        string `json:"title"`
	Completed    bool   `json:"completed"`
	Priority     string `json:"priority"`
	Date         string `json:"date"`
	Time         string `json:"time,omitempty"`
	HasReminder  bool   `json:"has_reminder,omitempty"`
	ReminderTime string `json:"reminder_time,omitempty"`
}

// Cache 本地回退缓存
type Cache struct {
	store  kvstore.Store
	logger *zap.Logger
}

// New 创建回退缓存
func New(store kvstore.Store, logger *zap.Logger) *Cache {
	return &Cache{store: store, logger: logger}
}

// ── 交易记录 ──

// ReadTransactions 读取缓存中的全部交易记录，缓存缺失或损坏时返回空
func (c *Cache) ReadTransactions() []model.Transaction {
	raw, ok := c.store.Get(financeKey)
	if !ok {
		return nil
	}
	var container financeContainer
	if err := json.Unmarshal([]byte(raw), &container); err != nil {
		c.logger.Warn("读取交易记录缓存失败", zap.Error(err))
		return nil
	}
	return container.Transactions
}

// WriteTransactions 写入交易记录，保留容器中的其他字段
func (c *Cache) WriteTransactions(transactions []model.Transaction) error {
	var container financeContainer
	if raw, ok := c.store.Get(financeKey); ok {
		_ = json.Unmarshal([]byte(raw), &container)
	}
	container.Transactions = transactions

	raw, err := json.Marshal(container)
	if err != nil {
		return fmt.Errorf("序列化交易记录失败: %w", err)
	}
	return c.store.Set(financeKey, string(raw))
}

// LoadInitialTransactions 首次使用时从内置初始数据播种，之后直接读取已持久化的快照
func (c *Cache) LoadInitialTransactions() ([]model.Transaction, error) {
	if kvstore.Has(c.store, initialLoadedKey) {
		return c.ReadTransactions(), nil
	}

	var fixture fixtureData
	if err := json.Unmarshal(initialFixture, &fixture); err != nil {
		return nil, fmt.Errorf("解析内置初始数据失败: %w", err)
	}

	container := financeContainer{
		Transactions: fixture.Transactions,
		FinanceStats: fixture.FinanceStats,
	}
	raw, err := json.Marshal(container)
	if err != nil {
		return nil, fmt.Errorf("序列化初始数据失败: %w", err)
	}
	if err := c.store.Set(financeKey, string(raw)); err != nil {
		return nil, err
	}
	if err := c.store.Set(initialLoadedKey, "true"); err != nil {
		return nil, err
	}

	c.logger.Info("已播种初始交易数据", zap.Int("count", len(fixture.Transactions)))
	return fixture.Transactions, nil
}

// AddTransaction 追加交易记录，本地 ID 取当前最大值加一（空表从 1 起）
func (c *Cache) AddTransaction(t model.Transaction) (model.Transaction, error) {
	transactions := c.ReadTransactions()
	t.ID = nextID(transactionIDs(transactions))
	if err := c.WriteTransactions(append(transactions, t)); err != nil {
		return model.Transaction{}, err
	}
	return t, nil
}

// UpdateTransaction 更新指定交易记录
func (c *Cache) UpdateTransaction(id int, updated model.Transaction) (model.Transaction, error) {
	transactions := c.ReadTransactions()
	for i := range transactions {
		if transactions[i].ID == id {
			updated.ID = id
			transactions[i] = updated
			if err := c.WriteTransactions(transactions); err != nil {
				return model.Transaction{}, err
			}
			return updated, nil
		}
	}
	return model.Transaction{}, fmt.Errorf("交易记录 %d 不存在", id)
}

// DeleteTransaction 删除指定交易记录
func (c *Cache) DeleteTransaction(id int) error {
	transactions := c.ReadTransactions()
	filtered := transactions[:0:0]
	for _, t := range transactions {
		if t.ID != id {
			filtered = append(filtered, t)
		}
	}
	if len(filtered) == len(transactions) {
		return fmt.Errorf("交易记录 %d 不存在", id)
	}
	return c.WriteTransactions(filtered)
}

// TransactionsByDate 返回指定日期的交易记录
func (c *Cache) TransactionsByDate(date string) []model.Transaction {
	var result []model.Transaction
	for _, t := range c.ReadTransactions() {
		if t.Date == date {
			result = append(result, t)
		}
	}
	return result
}

// ResetTransactions 清空缓存与播种标记，下次加载重新播种
func (c *Cache) ResetTransactions() error {
	if err := c.store.Delete(financeKey); err != nil {
		return err
	}
	return c.store.Delete(initialLoadedKey)
}

// ── 任务 ──

// ReadTasks 读取缓存中的全部任务
func (c *Cache) ReadTasks() []model.Task {
	raw, ok := c.store.Get(tasksKey)
	if !ok {
		return nil
	}
	var container tasksContainer
	if err := json.Unmarshal([]byte(raw), &container); err != nil {
		c.logger.Warn("读取任务缓存失败", zap.Error(err))
		return nil
	}
	return container.Tasks
}

// WriteTasks 写入任务快照
func (c *Cache) WriteTasks(tasks []model.Task) error {
	raw, err := json.Marshal(tasksContainer{Tasks: tasks})
	if err != nil {
		return fmt.Errorf("序列化任务失败: %w", err)
	}
	return c.store.Set(tasksKey, string(raw))
}

// AddTask 追加任务，本地 ID 规则同交易记录
func (c *Cache) AddTask(t model.Task) (model.Task, error) {
	tasks := c.ReadTasks()
	ids := make([]int, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	t.ID = nextID(ids)
	if err := c.WriteTasks(append(tasks, t)); err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// LoadInitialTasks 任务缓存缺失时从内置初始数据播种
func (c *Cache) LoadInitialTasks() ([]model.Task, error) {
	if kvstore.Has(c.store, tasksKey) {
		return c.ReadTasks(), nil
	}

	var fixture fixtureData
	if err := json.Unmarshal(initialFixture, &fixture); err != nil {
		return nil, fmt.Errorf("解析内置初始数据失败: %w", err)
	}

	tasks := make([]model.Task, 0, len(fixture.Tasks))
	for _, ft := range fixture.Tasks {
		tasks = append(tasks, model.Task{
			ID:           ft.ID,
			Title:        ft.Title,
			Completed:    ft.Completed,
			Priority:     model.Priority(ft.Priority),
			Date:         ft.Date,
			Time:         ft.Time,
			HasReminder:  ft.HasReminder,
			ReminderTime: ft.ReminderTime,
		})
	}
	if err := c.WriteTasks(tasks); err != nil {
		return nil, err
	}

	c.logger.Info("已播种初始任务数据", zap.Int("count", len(tasks)))
	return tasks, nil
}

// ── 用户资料 ──

// ReadUserData 读取缓存中的用户资料，缺失时返回 nil
func (c *Cache) ReadUserData() *UserData {
	raw, ok := c.store.Get(userDataKey)
	if !ok {
		return nil
	}
	var data UserData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		c.logger.Warn("读取用户资料缓存失败", zap.Error(err))
		return nil
	}
	return &data
}

// WriteUserData 写入用户资料
func (c *Cache) WriteUserData(data *UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化用户资料失败: %w", err)
	}
	return c.store.Set(userDataKey, string(raw))
}

// LoadInitialUserData 用户资料缓存缺失时从内置初始数据播种
func (c *Cache) LoadInitialUserData() (*UserData, error) {
	if data := c.ReadUserData(); data != nil {
		return data, nil
	}

	var fixture fixtureData
	if err := json.Unmarshal(initialFixture, &fixture); err != nil {
		return nil, fmt.Errorf("解析内置初始数据失败: %w", err)
	}
	if fixture.UserData == nil {
		return nil, nil
	}
	if err := c.WriteUserData(fixture.UserData); err != nil {
		return nil, err
	}
	return fixture.UserData, nil
}

// ── 辅助 ──

func transactionIDs(transactions []model.Transaction) []int {
	ids := make([]int, 0, len(transactions))
	for _, t := range transactions {
		ids = append(ids, t.ID)
	}
	return ids
}

// nextID 当前最大标识符加一，空集合从 1 起
func nextID(ids []int) int {
	maxID := 0
	for _, id := range ids {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
