package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/Albiehao/kanban/internal/dto"
)

// ── 测试用内存键值存储 ──

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// ── Mock DashboardAPI ──

// mockDashboardAPI 按方法挂接可替换的行为函数，未挂接的方法返回零值
type mockDashboardAPI struct {
	mu sync.Mutex

	listCoursesFn      func(ctx context.Context, start, end string) ([]dto.CoursePayload, error)
	listTasksFn        func(ctx context.Context, q dto.TaskQuery) (dto.TaskListResponse, error)
	addTaskFn          func(ctx context.Context, task dto.TaskPayload) (dto.TaskPayload, error)
	updateTaskFn       func(ctx context.Context, id int, updates dto.TaskPayload) (dto.TaskPayload, error)
	deleteTaskFn       func(ctx context.Context, id int) error
	batchDeleteFn      func(ctx context.Context, ids []int) error
	toggleTaskFn       func(ctx context.Context, id int) (dto.TaskPayload, error)
	listTransactionsFn func(ctx context.Context) ([]dto.TransactionPayload, error)
	financeStatsFn     func(ctx context.Context) (dto.FinanceStatsPayload, error)
	addTransactionFn   func(ctx context.Context, t dto.TransactionPayload) (dto.TransactionPayload, error)
	updateTxFn         func(ctx context.Context, id int, updates dto.TransactionPayload) (dto.TransactionPayload, error)
	deleteTxFn         func(ctx context.Context, id int) error

	listTasksCalls int
}

func (m *mockDashboardAPI) ListCourses(ctx context.Context, start, end string) ([]dto.CoursePayload, error) {
	if m.listCoursesFn != nil {
		return m.listCoursesFn(ctx, start, end)
	}
	return nil, nil
}

func (m *mockDashboardAPI) ListTasks(ctx context.Context, q dto.TaskQuery) (dto.TaskListResponse, error) {
	m.mu.Lock()
	m.listTasksCalls++
	m.mu.Unlock()
	if m.listTasksFn != nil {
		return m.listTasksFn(ctx, q)
	}
	return dto.TaskListResponse{Items: []dto.TaskPayload{}}, nil
}

func (m *mockDashboardAPI) taskCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listTasksCalls
}

func (m *mockDashboardAPI) AddTask(ctx context.Context, task dto.TaskPayload) (dto.TaskPayload, error) {
	if m.addTaskFn != nil {
		return m.addTaskFn(ctx, task)
	}
	return task, nil
}

func (m *mockDashboardAPI) UpdateTask(ctx context.Context, id int, updates dto.TaskPayload) (dto.TaskPayload, error) {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(ctx, id, updates)
	}
	updates.ID = id
	return updates, nil
}

func (m *mockDashboardAPI) DeleteTask(ctx context.Context, id int) error {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(ctx, id)
	}
	return nil
}

func (m *mockDashboardAPI) BatchDeleteTasks(ctx context.Context, ids []int) error {
	if m.batchDeleteFn != nil {
		return m.batchDeleteFn(ctx, ids)
	}
	return nil
}

func (m *mockDashboardAPI) ToggleTask(ctx context.Context, id int) (dto.TaskPayload, error) {
	if m.toggleTaskFn != nil {
		return m.toggleTaskFn(ctx, id)
	}
	return dto.TaskPayload{ID: id}, nil
}

func (m *mockDashboardAPI) ListTransactions(ctx context.Context) ([]dto.TransactionPayload, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(ctx)
	}
	return nil, nil
}

func (m *mockDashboardAPI) FinanceStats(ctx context.Context) (dto.FinanceStatsPayload, error) {
	if m.financeStatsFn != nil {
		return m.financeStatsFn(ctx)
	}
	return dto.FinanceStatsPayload{}, nil
}

func (m *mockDashboardAPI) AddTransaction(ctx context.Context, t dto.TransactionPayload) (dto.TransactionPayload, error) {
	if m.addTransactionFn != nil {
		return m.addTransactionFn(ctx, t)
	}
	return t, nil
}

func (m *mockDashboardAPI) UpdateTransaction(ctx context.Context, id int, updates dto.TransactionPayload) (dto.TransactionPayload, error) {
	if m.updateTxFn != nil {
		return m.updateTxFn(ctx, id, updates)
	}
	updates.ID = id
	return updates, nil
}

func (m *mockDashboardAPI) DeleteTransaction(ctx context.Context, id int) error {
	if m.deleteTxFn != nil {
		return m.deleteTxFn(ctx, id)
	}
	return nil
}

// ── Mock AuthAPI ──

type mockAuthAPI struct {
	loginFn  func(ctx context.Context, username, password string) (dto.LoginResponse, error)
	logoutFn func(ctx context.Context) error
	verifyFn func(ctx context.Context) dto.VerifyResponse
}

func (m *mockAuthAPI) Login(ctx context.Context, username, password string) (dto.LoginResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, username, password)
	}
	return dto.LoginResponse{}, fmt.Errorf("未挂接登录行为")
}

func (m *mockAuthAPI) Logout(ctx context.Context) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx)
	}
	return nil
}

func (m *mockAuthAPI) VerifyToken(ctx context.Context) dto.VerifyResponse {
	if m.verifyFn != nil {
		return m.verifyFn(ctx)
	}
	return dto.VerifyResponse{Valid: false}
}

// ── Mock NotificationAPI ──

type mockNotificationAPI struct {
	items   []dto.NotificationPayload
	listErr error
}

func (m *mockNotificationAPI) ListNotifications(_ context.Context, unreadOnly bool) ([]dto.NotificationPayload, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	if !unreadOnly {
		return m.items, nil
	}
	var unread []dto.NotificationPayload
	for _, n := range m.items {
		if !n.Read {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (m *mockNotificationAPI) AddNotification(_ context.Context, n dto.NotificationPayload) (dto.NotificationPayload, error) {
	n.ID = len(m.items) + 1
	m.items = append(m.items, n)
	return n, nil
}

func (m *mockNotificationAPI) DeleteNotification(_ context.Context, id int) error {
	filtered := m.items[:0:0]
	for _, n := range m.items {
		if n.ID != id {
			filtered = append(filtered, n)
		}
	}
	m.items = filtered
	return nil
}

func (m *mockNotificationAPI) MarkNotificationRead(_ context.Context, id int) (dto.NotificationPayload, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Read = true
			return m.items[i], nil
		}
	}
	return dto.NotificationPayload{}, fmt.Errorf("通知 %d 不存在", id)
}

func (m *mockNotificationAPI) MarkAllNotificationsRead(_ context.Context) error {
	for i := range m.items {
		m.items[i].Read = true
	}
	return nil
}
