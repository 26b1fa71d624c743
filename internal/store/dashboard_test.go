package store

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Albiehao/kanban/config"
	"github.com/Albiehao/kanban/internal/api"
	"github.com/Albiehao/kanban/internal/dto"
	"github.com/Albiehao/kanban/internal/model"
)

// ── 测试辅助 ──

func testConfig() *config.Config {
	return &config.Config{
		Refresh: config.RefreshConfig{Interval: 30 * time.Second},
	}
}

func setupTestDashboard() (*Dashboard, *mockDashboardAPI, *memStore) {
	mock := &mockDashboardAPI{}
	kv := newMemStore()
	d := NewDashboard(testConfig(), mock, kv, zap.NewNop())
	return d, mock, kv
}

func notImplementedErr() error {
	return &api.Error{Status: http.StatusNotFound, NotImplemented: true}
}

// ── 课程解析测试 ──

func TestDashboard_ParseCourseData(t *testing.T) {
	d, _, _ := setupTestDashboard()

	courses := d.ParseCourseData([]dto.CoursePayload{
		{CourseName: "软件工程", Classroom: "A301", Date: "2025-09-01", Periods: "1-2节"},
		{CourseName: "string", Date: "2025-09-01", Periods: "3-4节"}, // 占位条目
		{CourseName: "操作系统", Classroom: "B202", Date: "2025-09-01", Periods: "8-10节"},
	})

	if len(courses) != 2 {
		t.Fatalf("占位条目应被跳过，期望 2 门课，实际 %d", len(courses))
	}

	se := courses[0]
	if se.Name != "软件工程" || se.Time != "08:00-08:40" {
		t.Errorf("首课解析不符: %+v", se)
	}
	if len(se.TimeSlots) != 2 || se.TimeSlots[1] != "08:45-09:25" {
		t.Errorf("1-2节 应展开为两个时间段，实际 %v", se.TimeSlots)
	}
	if se.Day != "周一" {
		t.Errorf("2025-09-01 是周一，实际 %s", se.Day)
	}

	os := courses[1]
	if len(os.TimeSlots) != 3 || os.TimeSlots[0] != "15:45-16:25" {
		t.Errorf("8-10节 展开不符: %v", os.TimeSlots)
	}

	// ID 派生：位置计入被跳过的条目（位置 0 与 2），颜色只按保留顺序轮转
	if se.ID != 1 || os.ID != 3 {
		t.Errorf("期望 ID 1 与 3，实际 %d 与 %d", se.ID, os.ID)
	}
	if se.Color != "bg-chart-1" || os.Color != "bg-chart-2" {
		t.Errorf("颜色应按保留顺序轮转，实际 %s 与 %s", se.Color, os.Color)
	}
}

func TestDashboard_ParseCourseData_IDsContinueFromExisting(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listCoursesFn = func(context.Context, string, string) ([]dto.CoursePayload, error) {
		return []dto.CoursePayload{{CourseName: "高数", Date: "2025-09-01", Periods: "1-2节"}}, nil
	}
	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}

	// 已有 ID=1 的课程，再解析一批应从 2 起
	courses := d.ParseCourseData([]dto.CoursePayload{
		{CourseName: "英语", Date: "2025-09-02", Periods: "3-4节"},
	})
	if len(courses) != 1 || courses[0].ID != 2 {
		t.Errorf("期望新批次 ID 从 2 起，实际 %+v", courses)
	}
}

// ── LoadAll 测试 ──

func TestDashboard_LoadAll_RepeatedLoadsIdentical(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listCoursesFn = func(context.Context, string, string) ([]dto.CoursePayload, error) {
		return []dto.CoursePayload{
			{CourseName: "高数", Date: "2025-09-01", Periods: "1-2节"},
			{CourseName: "英语", Date: "2025-09-01", Periods: "3-4节"},
		}, nil
	}

	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}
	first := d.Courses()
	if len(first) != 2 || first[0].ID != 1 || first[1].ID != 2 {
		t.Fatalf("首次加载 ID 应为 1,2，实际 %+v", first)
	}

	// 同一份线上数据重复加载，结果必须逐字段一致（ID 不得漂移）
	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}
	second := d.Courses()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("重复加载结果应一致:\n首次 %+v\n再次 %+v", first, second)
	}
}

func TestDashboard_LoadAll_MergesTaskPages(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	// 页 1: {1, 2}；页 2: {2, 3}（id 2 的内容不同）；页 3: 空
	mock.listTasksFn = func(_ context.Context, q dto.TaskQuery) (dto.TaskListResponse, error) {
		switch q.Page {
		case 1:
			return dto.TaskListResponse{Items: []dto.TaskPayload{
				{ID: 1, Title: "第一页-1"},
				{ID: 2, Title: "第一页-2"},
			}}, nil
		case 2:
			return dto.TaskListResponse{Items: []dto.TaskPayload{
				{ID: 2, Title: "第二页-2"},
				{ID: 3, Title: "第二页-3"},
			}}, nil
		default:
			return dto.TaskListResponse{}, nil
		}
	}

	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}

	tasks := d.Tasks()
	if len(tasks) != 3 {
		t.Fatalf("合并去重后应有 3 条，实际 %d", len(tasks))
	}
	// 首次出现决定顺序，后出现的同 ID 覆盖内容
	if tasks[0].ID != 1 || tasks[1].ID != 2 || tasks[2].ID != 3 {
		t.Errorf("顺序应为 1,2,3，实际 %v", []int{tasks[0].ID, tasks[1].ID, tasks[2].ID})
	}
	if tasks[1].Title != "第二页-2" {
		t.Errorf("重复 ID 应保留后到的内容，实际 %q", tasks[1].Title)
	}
}

func TestDashboard_LoadAll_TaskPageFallbackToFirst(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listTasksFn = func(_ context.Context, q dto.TaskQuery) (dto.TaskListResponse, error) {
		if q.Page == 2 {
			return dto.TaskListResponse{}, fmt.Errorf("第 2 页超时")
		}
		return dto.TaskListResponse{Items: []dto.TaskPayload{{ID: 1, Title: "仅第一页"}}}, nil
	}

	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}
	tasks := d.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Errorf("非首页失败应退回第 1 页并去重，实际 %+v", tasks)
	}
}

func TestDashboard_LoadAll_TasksFallbackToCache(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listTasksFn = func(context.Context, dto.TaskQuery) (dto.TaskListResponse, error) {
		return dto.TaskListResponse{}, fmt.Errorf("后端不可达")
	}

	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}
	if len(d.Tasks()) == 0 {
		t.Error("任务加载失败时应回退到本地缓存的内置数据")
	}
}

func TestDashboard_LoadAll_FinanceNotImplementedDegrades(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listTransactionsFn = func(context.Context) ([]dto.TransactionPayload, error) {
		return nil, notImplementedErr()
	}
	mock.financeStatsFn = func(context.Context) (dto.FinanceStatsPayload, error) {
		return dto.FinanceStatsPayload{}, notImplementedErr()
	}

	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}
	if d.FinanceStats() != nil {
		t.Error("后端未实现时统计应为 nil")
	}
	if len(d.Transactions()) != 0 {
		t.Error("后端未实现时交易应为空")
	}
	if !d.FinanceUnavailable() {
		t.Error("应记录财务资源族不可用标记")
	}
}

func TestDashboard_LoadAll_GuardAgainstOverlap(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	release := make(chan struct{})
	started := make(chan struct{})
	mock.listCoursesFn = func(context.Context, string, string) ([]dto.CoursePayload, error) {
		close(started)
		<-release
		return nil, nil
	}

	done := make(chan struct{})
	go func() {
		d.LoadAll(context.Background())
		close(done)
	}()
	<-started

	// 等首次加载的 3 个任务分页请求全部落地，再观察重叠调用
	deadline := time.After(2 * time.Second)
	for mock.taskCalls() < taskPageCount {
		select {
		case <-deadline:
			t.Fatal("任务分页请求未如期发出")
		case <-time.After(5 * time.Millisecond):
		}
	}

	// 第一次加载还挂着，这次应立即空转返回
	if err := d.LoadAll(context.Background()); err != nil {
		t.Errorf("重叠加载应为空操作: %v", err)
	}
	if mock.taskCalls() != taskPageCount {
		t.Error("重叠加载不应发起新的任务请求")
	}

	close(release)
	<-done

	if d.Loading() {
		t.Error("加载结束后 loading 应复位")
	}
}

// ── RefreshAll 测试 ──

func TestDashboard_RefreshAll_Outcomes(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listCoursesFn = func(context.Context, string, string) ([]dto.CoursePayload, error) {
		return nil, fmt.Errorf("课程接口超时")
	}
	mock.listTransactionsFn = func(context.Context) ([]dto.TransactionPayload, error) {
		return nil, notImplementedErr()
	}
	mock.financeStatsFn = func(context.Context) (dto.FinanceStatsPayload, error) {
		return dto.FinanceStatsPayload{MonthlyIncome: 100}, nil
	}

	outcome := d.RefreshAll(context.Background())

	if outcome.Courses != OutcomeKept {
		t.Errorf("课程失败应为 kept，实际 %s", outcome.Courses)
	}
	if outcome.Tasks != OutcomeApplied {
		t.Errorf("任务成功应为 applied，实际 %s", outcome.Tasks)
	}
	if outcome.Transactions != OutcomeReset {
		t.Errorf("交易未实现应为 reset，实际 %s", outcome.Transactions)
	}
	if outcome.Stats != OutcomeApplied {
		t.Errorf("统计成功应为 applied，实际 %s", outcome.Stats)
	}
	if len(outcome.Errors) != 1 {
		t.Errorf("应收集 1 个错误，实际 %d", len(outcome.Errors))
	}
}

func TestDashboard_RefreshAll_KeepsStateOnFailure(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listCoursesFn = func(context.Context, string, string) ([]dto.CoursePayload, error) {
		return []dto.CoursePayload{{CourseName: "高数", Date: "2025-09-01", Periods: "1-2节"}}, nil
	}
	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}
	if len(d.Courses()) != 1 {
		t.Fatal("前置条件：应有 1 门课")
	}

	// 刷新失败：现值保留
	mock.listCoursesFn = func(context.Context, string, string) ([]dto.CoursePayload, error) {
		return nil, fmt.Errorf("接口超时")
	}
	outcome := d.RefreshAll(context.Background())
	if outcome.Courses != OutcomeKept {
		t.Errorf("期望 kept，实际 %s", outcome.Courses)
	}
	if len(d.Courses()) != 1 {
		t.Error("刷新失败后应保留刷新前的课程")
	}
}

// ── 写路径测试 ──

func TestDashboard_AddTask_BackendFirst(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.addTaskFn = func(_ context.Context, task dto.TaskPayload) (dto.TaskPayload, error) {
		task.ID = 101 // 服务端分配的 ID
		return task, nil
	}

	added, err := d.AddTask(context.Background(), model.Task{Title: "写实验报告", Date: "2025-09-01"})
	if err != nil {
		t.Fatalf("AddTask 应成功: %v", err)
	}
	if added.ID != 101 {
		t.Errorf("应采用服务端 ID，实际 %d", added.ID)
	}
	if tasks := d.Tasks(); len(tasks) != 1 || tasks[0].ID != 101 {
		t.Errorf("任务应已入列，实际 %+v", tasks)
	}
}

func TestDashboard_AddTask_FailureLeavesState(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.addTaskFn = func(context.Context, dto.TaskPayload) (dto.TaskPayload, error) {
		return dto.TaskPayload{}, fmt.Errorf("校验失败")
	}

	if _, err := d.AddTask(context.Background(), model.Task{Title: "失败的任务"}); err == nil {
		t.Fatal("后端失败应上抛错误")
	}
	if len(d.Tasks()) != 0 {
		t.Error("后端失败时本地状态不应变化")
	}
}

func TestDashboard_ToggleTask_UsesServerState(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.addTaskFn = func(_ context.Context, task dto.TaskPayload) (dto.TaskPayload, error) {
		task.ID = 1
		return task, nil
	}
	if _, err := d.AddTask(context.Background(), model.Task{Title: "待切换"}); err != nil {
		t.Fatalf("AddTask 应成功: %v", err)
	}

	mock.toggleTaskFn = func(_ context.Context, id int) (dto.TaskPayload, error) {
		return dto.TaskPayload{ID: id, Title: "待切换", Completed: true}, nil
	}
	toggled, err := d.ToggleTask(context.Background(), 1)
	if err != nil {
		t.Fatalf("ToggleTask 应成功: %v", err)
	}
	if !toggled.Completed {
		t.Error("应采用服务端返回的完成状态")
	}
	if tasks := d.Tasks(); !tasks[0].Completed {
		t.Error("本地状态应同步为服务端状态")
	}
}

func TestDashboard_BatchDeleteTasks(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	nextID := 0
	mock.addTaskFn = func(_ context.Context, task dto.TaskPayload) (dto.TaskPayload, error) {
		nextID++
		task.ID = nextID
		return task, nil
	}
	for i := 0; i < 3; i++ {
		if _, err := d.AddTask(context.Background(), model.Task{Title: "任务"}); err != nil {
			t.Fatalf("AddTask 应成功: %v", err)
		}
	}

	if err := d.BatchDeleteTasks(context.Background(), []int{1, 3}); err != nil {
		t.Fatalf("BatchDeleteTasks 应成功: %v", err)
	}
	tasks := d.Tasks()
	if len(tasks) != 1 || tasks[0].ID != 2 {
		t.Errorf("期望只剩 ID=2，实际 %+v", tasks)
	}
}

func TestDashboard_AddTransaction_RefreshesStats(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.addTransactionFn = func(_ context.Context, tx dto.TransactionPayload) (dto.TransactionPayload, error) {
		tx.ID = 1
		return tx, nil
	}
	mock.financeStatsFn = func(context.Context) (dto.FinanceStatsPayload, error) {
		return dto.FinanceStatsPayload{MonthlyExpense: 15.5, Balance: -15.5}, nil
	}

	_, err := d.AddTransaction(context.Background(), model.Transaction{
		Type: model.TransactionExpense, Amount: 15.5, Date: "2025-09-01",
	})
	if err != nil {
		t.Fatalf("AddTransaction 应成功: %v", err)
	}
	stats := d.FinanceStats()
	if stats == nil || stats.MonthlyExpense != 15.5 {
		t.Errorf("写入后应重拉统计，实际 %+v", stats)
	}
}

func TestDashboard_AddTransaction_StatsKeptWhenUnavailable(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.financeStatsFn = func(context.Context) (dto.FinanceStatsPayload, error) {
		return dto.FinanceStatsPayload{MonthlyExpense: 42}, nil
	}
	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}
	if stats := d.FinanceStats(); stats == nil || stats.MonthlyExpense != 42 {
		t.Fatalf("前置条件：统计应已加载，实际 %+v", stats)
	}

	// 写入后统计接口降级为未实现：保留现值，只打不可用标记
	mock.addTransactionFn = func(_ context.Context, tx dto.TransactionPayload) (dto.TransactionPayload, error) {
		tx.ID = 1
		return tx, nil
	}
	mock.financeStatsFn = func(context.Context) (dto.FinanceStatsPayload, error) {
		return dto.FinanceStatsPayload{}, notImplementedErr()
	}
	if _, err := d.AddTransaction(context.Background(), model.Transaction{Amount: 9, Date: "2025-09-01"}); err != nil {
		t.Fatalf("AddTransaction 应成功: %v", err)
	}

	if stats := d.FinanceStats(); stats == nil || stats.MonthlyExpense != 42 {
		t.Errorf("统计接口未实现时应保留现值，实际 %+v", stats)
	}
	if !d.FinanceUnavailable() {
		t.Error("应记录财务资源族不可用标记")
	}
}

func TestDashboard_DeleteTransaction_Failure(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.addTransactionFn = func(_ context.Context, tx dto.TransactionPayload) (dto.TransactionPayload, error) {
		tx.ID = 1
		return tx, nil
	}
	if _, err := d.AddTransaction(context.Background(), model.Transaction{Amount: 1, Date: "2025-09-01"}); err != nil {
		t.Fatalf("AddTransaction 应成功: %v", err)
	}

	mock.deleteTxFn = func(context.Context, int) error {
		return fmt.Errorf("冲正失败")
	}
	if err := d.DeleteTransaction(context.Background(), 1); err == nil {
		t.Fatal("后端失败应上抛错误")
	}
	if len(d.Transactions()) != 1 {
		t.Error("删除失败时本地记录应保留")
	}
}

// ── 快照导出测试 ──

func TestDashboard_ExportDaySchedule(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.listCoursesFn = func(context.Context, string, string) ([]dto.CoursePayload, error) {
		return []dto.CoursePayload{
			{CourseName: "软件工程", Classroom: "A301", Date: "2025-09-01", Periods: "1-2节"},
		}, nil
	}
	if err := d.LoadAll(context.Background()); err != nil {
		t.Fatalf("LoadAll 应成功: %v", err)
	}

	day, _ := model.ParseDate("2025-09-01")
	d.SetSelectedDate(day)

	buf, filename, err := d.ExportDaySchedule()
	if err != nil {
		t.Fatalf("ExportDaySchedule 应成功: %v", err)
	}
	if filename != "日程_2025-09-01.ics" {
		t.Errorf("文件名不符: %s", filename)
	}
	if !strings.Contains(buf.String(), "软件工程") {
		t.Error("选中日期的课程应出现在导出内容中")
	}
}

func TestDashboard_ExportLedger(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.addTransactionFn = func(_ context.Context, tx dto.TransactionPayload) (dto.TransactionPayload, error) {
		tx.ID = 1
		return tx, nil
	}
	if _, err := d.AddTransaction(context.Background(), model.Transaction{
		Type: model.TransactionExpense, Amount: 15.5, Category: "餐饮", Date: "2025-09-01",
	}); err != nil {
		t.Fatalf("AddTransaction 应成功: %v", err)
	}

	buf, filename, err := d.ExportLedger()
	if err != nil {
		t.Fatalf("ExportLedger 应成功: %v", err)
	}
	if filename != "账本导出.xlsx" {
		t.Errorf("文件名不符: %s", filename)
	}
	if buf.Len() == 0 {
		t.Error("导出内容不应为空")
	}
}

// ── 按日过滤与模块测试 ──

func TestDashboard_FilteredByDate(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	mock.addTaskFn = func(_ context.Context, task dto.TaskPayload) (dto.TaskPayload, error) {
		task.ID = len(task.Title)
		return task, nil
	}
	if _, err := d.AddTask(context.Background(), model.Task{Title: "a", Date: "2025-09-01"}); err != nil {
		t.Fatalf("AddTask 应成功: %v", err)
	}
	if _, err := d.AddTask(context.Background(), model.Task{Title: "bb", Date: "2025-09-02"}); err != nil {
		t.Fatalf("AddTask 应成功: %v", err)
	}

	day, _ := model.ParseDate("2025-09-01")
	d.SetSelectedDate(day)
	if d.SelectedDateStr() != "2025-09-01" {
		t.Errorf("期望 2025-09-01，实际 %s", d.SelectedDateStr())
	}
	filtered := d.FilteredTasks()
	if len(filtered) != 1 || filtered[0].Date != "2025-09-01" {
		t.Errorf("按日过滤不符: %+v", filtered)
	}
}

func TestDashboard_ToggleModule(t *testing.T) {
	d, _, _ := setupTestDashboard()

	modules := d.Modules()
	if len(modules) != 10 {
		t.Fatalf("默认应有 10 个模块，实际 %d", len(modules))
	}

	d.ToggleModule("calendar")
	for _, m := range d.Modules() {
		if m.ID == "calendar" && m.Visible {
			t.Error("calendar 切换后应不可见")
		}
	}

	// 未知 ID 不应有任何影响
	d.ToggleModule("nonexistent")
	if len(d.Modules()) != 10 {
		t.Error("未知模块 ID 不应改变布局")
	}
}

// ── 主题测试 ──

func TestDashboard_DarkModePersistence(t *testing.T) {
	kv := newMemStore()
	d := NewDashboard(testConfig(), &mockDashboardAPI{}, kv, zap.NewNop())

	if d.DarkMode() {
		t.Error("默认应为浅色主题")
	}
	if d.ToggleDarkMode() != true {
		t.Error("切换后应为深色")
	}
	if v, _ := kv.Get("darkMode"); v != "true" {
		t.Errorf("主题应以字符串 true 持久化，实际 %q", v)
	}

	// 新实例从持久化值恢复，配置偏好不再生效
	cfg := testConfig()
	cfg.Theme.PreferDark = false
	d2 := NewDashboard(cfg, &mockDashboardAPI{}, kv, zap.NewNop())
	if !d2.DarkMode() {
		t.Error("已持久化的主题应优先于配置偏好")
	}
}

func TestDashboard_DarkModeSeedFromConfig(t *testing.T) {
	kv := newMemStore()
	cfg := testConfig()
	cfg.Theme.PreferDark = true

	d := NewDashboard(cfg, &mockDashboardAPI{}, kv, zap.NewNop())
	if !d.DarkMode() {
		t.Error("无持久化值时应采用配置偏好")
	}
	if v, _ := kv.Get("darkMode"); v != "true" {
		t.Errorf("种子值应落盘，实际 %q", v)
	}
}

// ── 周期刷新测试 ──

func TestDashboard_AutoRefresh_ImmediateFirstRun(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d.SetAutoRefreshInterval(ctx, time.Hour) // 循环未启动，只改间隔
	d.StartAutoRefresh(ctx)
	defer d.StopAutoRefresh()

	// 启动后应立即执行一次刷新（间隔为 1 小时，后续不会再触发）
	deadline := time.After(2 * time.Second)
	for mock.taskCalls() == 0 {
		select {
		case <-deadline:
			t.Fatal("启动后应立即刷新一次")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestDashboard_AutoRefresh_RestartReplacesLoop(t *testing.T) {
	d, mock, _ := setupTestDashboard()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	d.SetAutoRefreshInterval(ctx, time.Hour)
	d.StartAutoRefresh(ctx)
	d.StartAutoRefresh(ctx) // 再次启动应先停掉旧循环
	d.StopAutoRefresh()

	// 停止后不应再有新的刷新
	calls := mock.taskCalls()
	time.Sleep(50 * time.Millisecond)
	if mock.taskCalls() != calls {
		t.Error("停止后不应继续刷新")
	}

	// 重复停止是空操作
	d.StopAutoRefresh()
}
