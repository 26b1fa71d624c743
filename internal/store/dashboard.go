package store

import (
	"bytes"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Albiehao/kanban/config"
	"github.com/Albiehao/kanban/internal/api"
	"github.com/Albiehao/kanban/internal/cache"
	"github.com/Albiehao/kanban/internal/dto"
	"github.com/Albiehao/kanban/internal/export"
	"github.com/Albiehao/kanban/internal/model"
	"github.com/Albiehao/kanban/pkg/kvstore"
)

// 任务列表分页拉取的固定参数
const (
	taskPageCount = 3
	taskPageLimit = 20
)

const darkModeKey = "darkMode"

// FamilyOutcome 单个资源族一次刷新的结果
type FamilyOutcome string

const (
	// OutcomeApplied 刷新成功，服务端快照已替换本地状态
	OutcomeApplied FamilyOutcome = "applied"
	// OutcomeKept 刷新失败，保留刷新前的本地状态
	OutcomeKept FamilyOutcome = "kept"
	// OutcomeReset 后端未实现该资源族，本地状态已清空
	OutcomeReset FamilyOutcome = "reset"
)

// RefreshOutcome 一次全量刷新中各资源族的结果与收集到的错误
type RefreshOutcome struct {
	Courses      FamilyOutcome
	Tasks        FamilyOutcome
	Transactions FamilyOutcome
	Stats        FamilyOutcome
	Errors       []error
}

// Dashboard 仪表盘状态容器：课程、任务、账本与模块布局的单一数据源。
// 所有读写都经内部互斥锁串行化；网络请求不持锁发起。
type Dashboard struct {
	mu sync.Mutex

	api    DashboardAPI
	cache  *cache.Cache
	kv     kvstore.Store
	logger *zap.Logger

	selectedDate time.Time
	courses      []model.Course
	tasks        []model.Task
	transactions []model.Transaction
	financeStats *model.FinanceStats
	modules      []model.ModuleConfig
	darkMode     bool
	loading      bool

	// financeUnavailable 记录财务资源族曾返回"未实现"，后续静默降级
	financeUnavailable bool

	refreshInterval time.Duration
	refreshStop     chan struct{}
	refreshDone     chan struct{}

	// onThemeChange 主题切换后的回调（可选）
	onThemeChange func(dark bool)
}

// NewDashboard 创建仪表盘 Store，选中日期初始化为今天
func NewDashboard(cfg *config.Config, dashAPI DashboardAPI, kv kvstore.Store, logger *zap.Logger) *Dashboard {
	d := &Dashboard{
		api:             dashAPI,
		cache:           cache.New(kv, logger),
		kv:              kv,
		logger:          logger,
		selectedDate:    time.Now(),
		modules:         model.DefaultModules(),
		refreshInterval: cfg.Refresh.Interval,
	}
	d.initTheme(cfg.Theme.PreferDark)
	return d
}

// ── 选中日期与按日视图 ──

// SetSelectedDate 设置选中日期
func (d *Dashboard) SetSelectedDate(t time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selectedDate = t
}

// SelectedDate 返回选中日期
func (d *Dashboard) SelectedDate() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.selectedDate
}

// SelectedDateStr 返回选中日期的 YYYY-MM-DD 形式（本地日历字段）
func (d *Dashboard) SelectedDateStr() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return model.FormatLocalDate(d.selectedDate)
}

// FilteredCourses 返回选中日期的课程
func (d *Dashboard) FilteredCourses() []model.Course {
	d.mu.Lock()
	defer d.mu.Unlock()
	date := model.FormatLocalDate(d.selectedDate)
	var result []model.Course
	for _, c := range d.courses {
		if c.Date == date {
			result = append(result, c)
		}
	}
	return result
}

// FilteredTasks 返回选中日期的任务
func (d *Dashboard) FilteredTasks() []model.Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	date := model.FormatLocalDate(d.selectedDate)
	var result []model.Task
	for _, t := range d.tasks {
		if t.Date == date {
			result = append(result, t)
		}
	}
	return result
}

// FilteredTransactions 返回选中日期的交易记录
func (d *Dashboard) FilteredTransactions() []model.Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	date := model.FormatLocalDate(d.selectedDate)
	var result []model.Transaction
	for _, t := range d.transactions {
		if t.Date == date {
			result = append(result, t)
		}
	}
	return result
}

// ── 快照读取 ──

// Courses 返回课程全量快照
func (d *Dashboard) Courses() []model.Course {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Course(nil), d.courses...)
}

// Tasks 返回任务全量快照
func (d *Dashboard) Tasks() []model.Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Task(nil), d.tasks...)
}

// Transactions 返回交易记录全量快照
func (d *Dashboard) Transactions() []model.Transaction {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Transaction(nil), d.transactions...)
}

// FinanceStats 返回财务统计，后端未实现或尚未加载时为 nil
func (d *Dashboard) FinanceStats() *model.FinanceStats {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.financeStats == nil {
		return nil
	}
	stats := *d.financeStats
	return &stats
}

// Loading 返回是否有全量加载在进行中
func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// ── 模块布局 ──

// Modules 返回模块布局快照
func (d *Dashboard) Modules() []model.ModuleConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.ModuleConfig(nil), d.modules...)
}

// ToggleModule 切换指定模块的可见性，未知 ID 不产生任何变化
func (d *Dashboard) ToggleModule(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.modules {
		if d.modules[i].ID == id {
			d.modules[i].Visible = !d.modules[i].Visible
			return
		}
	}
}

// ── 全量加载与刷新 ──

// LoadAll 并发加载四个资源族。已有加载在进行时直接返回且不产生新请求；
// 任务与交易记录在网络失败时回退到本地缓存（首次使用会播种内置初始数据）。
func (d *Dashboard) LoadAll(ctx context.Context) error {
	d.mu.Lock()
	if d.loading {
		d.mu.Unlock()
		return nil
	}
	d.loading = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	var (
		coursePayloads []dto.CoursePayload
		courseErr      error

		tasks   []model.Task
		taskErr error

		transactions []model.Transaction
		txErr        error

		stats    *model.FinanceStats
		statsErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		coursePayloads, courseErr = d.api.ListCourses(gctx, "", "")
		return nil
	})
	g.Go(func() error {
		tasks, taskErr = d.loadTaskPages(gctx)
		return nil
	})
	g.Go(func() error {
		transactions, txErr = d.loadTransactions(gctx)
		return nil
	})
	g.Go(func() error {
		stats, statsErr = d.loadFinanceStats(gctx)
		return nil
	})
	_ = g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()

	if courseErr != nil {
		d.logger.Warn("加载课程失败", zap.Error(courseErr))
	} else {
		d.courses = d.parseCourseDataLocked(coursePayloads, 0)
	}

	if taskErr != nil {
		d.logger.Warn("加载任务失败，回退本地缓存", zap.Error(taskErr))
		if cached, err := d.cache.LoadInitialTasks(); err == nil {
			d.tasks = cached
		}
	} else {
		d.tasks = tasks
		if err := d.cache.WriteTasks(tasks); err != nil {
			d.logger.Warn("写入任务缓存失败", zap.Error(err))
		}
	}

	if txErr != nil {
		d.logger.Warn("加载交易记录失败，回退本地缓存", zap.Error(txErr))
		if cached, err := d.cache.LoadInitialTransactions(); err == nil {
			d.transactions = cached
		}
	} else {
		d.transactions = transactions
		if err := d.cache.WriteTransactions(transactions); err != nil {
			d.logger.Warn("写入交易记录缓存失败", zap.Error(err))
		}
	}

	if statsErr != nil {
		d.logger.Warn("加载财务统计失败", zap.Error(statsErr))
	} else {
		d.financeStats = stats
	}

	return nil
}

// RefreshAll 全量刷新并返回每个资源族的结构化结果：
// 成功为 applied，失败保留现值为 kept，后端未实现清空为 reset
func (d *Dashboard) RefreshAll(ctx context.Context) RefreshOutcome {
	outcome := RefreshOutcome{
		Courses:      OutcomeKept,
		Tasks:        OutcomeKept,
		Transactions: OutcomeKept,
		Stats:        OutcomeKept,
	}

	var (
		coursePayloads []dto.CoursePayload
		courseErr      error

		tasks   []model.Task
		taskErr error

		txPayloads []dto.TransactionPayload
		txErr      error

		statsPayload dto.FinanceStatsPayload
		statsErr     error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		coursePayloads, courseErr = d.api.ListCourses(gctx, "", "")
		return nil
	})
	g.Go(func() error {
		tasks, taskErr = d.loadTaskPages(gctx)
		return nil
	})
	g.Go(func() error {
		txPayloads, txErr = d.api.ListTransactions(gctx)
		return nil
	})
	g.Go(func() error {
		statsPayload, statsErr = d.api.FinanceStats(gctx)
		return nil
	})
	_ = g.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()

	if courseErr == nil {
		d.courses = d.parseCourseDataLocked(coursePayloads, 0)
		outcome.Courses = OutcomeApplied
	} else {
		outcome.Errors = append(outcome.Errors, courseErr)
	}

	if taskErr == nil {
		d.tasks = tasks
		outcome.Tasks = OutcomeApplied
		if err := d.cache.WriteTasks(tasks); err != nil {
			d.logger.Warn("写入任务缓存失败", zap.Error(err))
		}
	} else {
		outcome.Errors = append(outcome.Errors, taskErr)
	}

	switch {
	case txErr == nil:
		transactions := make([]model.Transaction, 0, len(txPayloads))
		for i := range txPayloads {
			transactions = append(transactions, txPayloads[i].ToTransaction())
		}
		d.transactions = transactions
		outcome.Transactions = OutcomeApplied
		if err := d.cache.WriteTransactions(transactions); err != nil {
			d.logger.Warn("写入交易记录缓存失败", zap.Error(err))
		}
	case api.IsNotImplemented(txErr):
		d.transactions = nil
		d.financeUnavailable = true
		outcome.Transactions = OutcomeReset
	default:
		outcome.Errors = append(outcome.Errors, txErr)
	}

	switch {
	case statsErr == nil:
		stats := statsPayload.ToFinanceStats()
		d.financeStats = &stats
		outcome.Stats = OutcomeApplied
	case api.IsNotImplemented(statsErr):
		d.financeStats = nil
		d.financeUnavailable = true
		outcome.Stats = OutcomeReset
	default:
		outcome.Errors = append(outcome.Errors, statsErr)
	}

	return outcome
}

// loadTaskPages 并发拉取前 3 页任务（每页 20 条）并按页序合并去重：
// 首次出现的 ID 决定位置，后出现的同 ID 条目覆盖内容。
// 非首页失败时退回重拉第 1 页，仍失败则该页按空页处理。
func (d *Dashboard) loadTaskPages(ctx context.Context) ([]model.Task, error) {
	pages := make([][]dto.TaskPayload, taskPageCount)
	errs := make([]error, taskPageCount)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < taskPageCount; i++ {
		page := i + 1
		idx := i
		g.Go(func() error {
			resp, err := d.api.ListTasks(gctx, dto.TaskQuery{Page: page, Limit: taskPageLimit})
			if err != nil && page != 1 {
				d.logger.Debug("任务分页拉取失败，退回第 1 页",
					zap.Int("page", page), zap.Error(err))
				resp, err = d.api.ListTasks(gctx, dto.TaskQuery{Page: 1, Limit: taskPageLimit})
			}
			if err != nil {
				errs[idx] = err
				return nil
			}
			pages[idx] = resp.Items
			return nil
		})
	}
	_ = g.Wait()

	// 首页失败视为整体失败，调用方才能回退缓存
	if errs[0] != nil {
		return nil, errs[0]
	}

	order := make([]int, 0, taskPageCount*taskPageLimit)
	byID := make(map[int]model.Task)
	for _, items := range pages {
		for i := range items {
			t := items[i].ToTask()
			if _, seen := byID[t.ID]; !seen {
				order = append(order, t.ID)
			}
			byID[t.ID] = t
		}
	}

	tasks := make([]model.Task, 0, len(order))
	for _, id := range order {
		tasks = append(tasks, byID[id])
	}
	return tasks, nil
}

// loadTransactions 拉取交易记录，后端未实现时静默降级为空
func (d *Dashboard) loadTransactions(ctx context.Context) ([]model.Transaction, error) {
	payloads, err := d.api.ListTransactions(ctx)
	if err != nil {
		if api.IsNotImplemented(err) {
			d.markFinanceUnavailable()
			return nil, nil
		}
		return nil, err
	}
	transactions := make([]model.Transaction, 0, len(payloads))
	for i := range payloads {
		transactions = append(transactions, payloads[i].ToTransaction())
	}
	return transactions, nil
}

// loadFinanceStats 拉取财务统计，后端未实现时静默降级为 nil
func (d *Dashboard) loadFinanceStats(ctx context.Context) (*model.FinanceStats, error) {
	payload, err := d.api.FinanceStats(ctx)
	if err != nil {
		if api.IsNotImplemented(err) {
			d.markFinanceUnavailable()
			return nil, nil
		}
		return nil, err
	}
	stats := payload.ToFinanceStats()
	return &stats, nil
}

func (d *Dashboard) markFinanceUnavailable() {
	d.mu.Lock()
	d.financeUnavailable = true
	d.mu.Unlock()
}

// FinanceUnavailable 返回财务资源族是否被标记为后端未实现
func (d *Dashboard) FinanceUnavailable() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.financeUnavailable
}

// ── 课程解析 ──

// ParseCourseData 将线上课程条目解析为客户端课程实体，
// ID 在现有课程的最大 ID 之后继续分配（增量解析场景）
func (d *Dashboard) ParseCourseData(payloads []dto.CoursePayload) []model.Course {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.parseCourseDataLocked(payloads, d.maxCourseIDLocked())
}

// maxCourseIDLocked 现有课程中的最大 ID。调用方必须已持有 d.mu。
func (d *Dashboard) maxCourseIDLocked() int {
	maxID := 0
	for _, c := range d.courses {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID
}

// parseCourseDataLocked 解析规则：
//   - 课程名为空或为占位串 "string" 的条目跳过；
//   - ID 取 maxID 加"批次内位置加一"，位置把跳过的条目也计入；
//   - 颜色按保留条目的顺序在调色盘上轮转。
//
// 全量替换路径（LoadAll/RefreshAll）传 maxID=0，保证同一份线上数据
// 反复加载产出完全相同的课程数组；增量解析传现有最大 ID。
// 调用方必须已持有 d.mu。
func (d *Dashboard) parseCourseDataLocked(payloads []dto.CoursePayload, maxID int) []model.Course {
	courses := make([]model.Course, 0, len(payloads))
	colorIndex := 0
	for index, p := range payloads {
		if p.CourseName == "" || p.CourseName == "string" {
			continue
		}

		slots := model.ParsePeriodsToTimeSlots(p.Periods)
		course := model.Course{
			ID:        maxID + index + 1,
			Name:      p.CourseName,
			Time:      slots[0],
			TimeSlots: slots,
			Location:  p.Classroom,
			Color:     model.CoursePalette[colorIndex%len(model.CoursePalette)],
			Date:      p.Date,
			Teacher:   p.Teacher,
			Periods:   p.Periods,
		}
		if t, err := model.ParseDate(p.Date); err == nil {
			course.Day = model.DayName(t)
		}
		courses = append(courses, course)
		colorIndex++
	}
	return courses
}

// ── 任务写路径（后端优先，失败不改动本地状态）──

// AddTask 新建任务，以服务端返回的实体入列
func (d *Dashboard) AddTask(ctx context.Context, t model.Task) (model.Task, error) {
	created, err := d.api.AddTask(ctx, dto.TaskToPayload(t))
	if err != nil {
		return model.Task{}, err
	}

	task := created.ToTask()
	d.mu.Lock()
	d.tasks = append(d.tasks, task)
	d.persistTasksLocked()
	d.mu.Unlock()
	return task, nil
}

// UpdateTask 更新任务
func (d *Dashboard) UpdateTask(ctx context.Context, id int, t model.Task) (model.Task, error) {
	updated, err := d.api.UpdateTask(ctx, id, dto.TaskToPayload(t))
	if err != nil {
		return model.Task{}, err
	}

	task := updated.ToTask()
	d.mu.Lock()
	for i := range d.tasks {
		if d.tasks[i].ID == id {
			d.tasks[i] = task
			break
		}
	}
	d.persistTasksLocked()
	d.mu.Unlock()
	return task, nil
}

// DeleteTask 删除任务
func (d *Dashboard) DeleteTask(ctx context.Context, id int) error {
	if err := d.api.DeleteTask(ctx, id); err != nil {
		return err
	}

	d.mu.Lock()
	d.tasks = removeTask(d.tasks, func(t model.Task) bool { return t.ID == id })
	d.persistTasksLocked()
	d.mu.Unlock()
	return nil
}

// BatchDeleteTasks 批量删除任务
func (d *Dashboard) BatchDeleteTasks(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	if err := d.api.BatchDeleteTasks(ctx, ids); err != nil {
		return err
	}

	drop := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	d.mu.Lock()
	d.tasks = removeTask(d.tasks, func(t model.Task) bool {
		_, ok := drop[t.ID]
		return ok
	})
	d.persistTasksLocked()
	d.mu.Unlock()
	return nil
}

// ToggleTask 切换任务完成状态，以服务端返回为准
func (d *Dashboard) ToggleTask(ctx context.Context, id int) (model.Task, error) {
	toggled, err := d.api.ToggleTask(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	task := toggled.ToTask()
	d.mu.Lock()
	for i := range d.tasks {
		if d.tasks[i].ID == id {
			d.tasks[i] = task
			break
		}
	}
	d.persistTasksLocked()
	d.mu.Unlock()
	return task, nil
}

// persistTasksLocked 把任务快照写回本地缓存。调用方必须已持有 d.mu。
func (d *Dashboard) persistTasksLocked() {
	if err := d.cache.WriteTasks(d.tasks); err != nil {
		d.logger.Warn("写入任务缓存失败", zap.Error(err))
	}
}

func removeTask(tasks []model.Task, match func(model.Task) bool) []model.Task {
	filtered := tasks[:0:0]
	for _, t := range tasks {
		if !match(t) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// ── 账本写路径 ──

// AddTransaction 新建交易记录，成功后顺带刷新财务统计
func (d *Dashboard) AddTransaction(ctx context.Context, t model.Transaction) (model.Transaction, error) {
	created, err := d.api.AddTransaction(ctx, dto.TransactionToPayload(t))
	if err != nil {
		return model.Transaction{}, err
	}

	tx := created.ToTransaction()
	d.mu.Lock()
	d.transactions = append(d.transactions, tx)
	d.persistTransactionsLocked()
	d.mu.Unlock()

	d.refreshStats(ctx)
	return tx, nil
}

// UpdateTransaction 更新交易记录
func (d *Dashboard) UpdateTransaction(ctx context.Context, id int, t model.Transaction) (model.Transaction, error) {
	updated, err := d.api.UpdateTransaction(ctx, id, dto.TransactionToPayload(t))
	if err != nil {
		return model.Transaction{}, err
	}

	tx := updated.ToTransaction()
	d.mu.Lock()
	for i := range d.transactions {
		if d.transactions[i].ID == id {
			d.transactions[i] = tx
			break
		}
	}
	d.persistTransactionsLocked()
	d.mu.Unlock()

	d.refreshStats(ctx)
	return tx, nil
}

// DeleteTransaction 删除交易记录
func (d *Dashboard) DeleteTransaction(ctx context.Context, id int) error {
	if err := d.api.DeleteTransaction(ctx, id); err != nil {
		return err
	}

	d.mu.Lock()
	filtered := d.transactions[:0:0]
	for _, tx := range d.transactions {
		if tx.ID != id {
			filtered = append(filtered, tx)
		}
	}
	d.transactions = filtered
	d.persistTransactionsLocked()
	d.mu.Unlock()

	d.refreshStats(ctx)
	return nil
}

// refreshStats 账本变更后尽力重拉统计，失败只记日志不影响主流程；
// 后端未实现时保留现有统计值不动
func (d *Dashboard) refreshStats(ctx context.Context) {
	payload, err := d.api.FinanceStats(ctx)
	if err != nil {
		if api.IsNotImplemented(err) {
			d.markFinanceUnavailable()
		} else {
			d.logger.Debug("刷新财务统计失败", zap.Error(err))
		}
		return
	}
	stats := payload.ToFinanceStats()
	d.mu.Lock()
	d.financeStats = &stats
	d.mu.Unlock()
}

// persistTransactionsLocked 把交易快照写回本地缓存。调用方必须已持有 d.mu。
func (d *Dashboard) persistTransactionsLocked() {
	if err := d.cache.WriteTransactions(d.transactions); err != nil {
		d.logger.Warn("写入交易记录缓存失败", zap.Error(err))
	}
}

// ── 自动刷新 ──

// StartAutoRefresh 启动周期刷新。任意时刻至多一个刷新循环：
// 已有循环在跑时会先停掉旧的再启动，启动后立即执行一次刷新。
func (d *Dashboard) StartAutoRefresh(ctx context.Context) {
	d.StopAutoRefresh()

	d.mu.Lock()
	interval := d.refreshInterval
	stop := make(chan struct{})
	done := make(chan struct{})
	d.refreshStop = stop
	d.refreshDone = done
	d.mu.Unlock()

	go func() {
		defer close(done)

		d.runRefresh(ctx)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				d.runRefresh(ctx)
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// StopAutoRefresh 停止周期刷新并等待循环退出，未启动时为空操作
func (d *Dashboard) StopAutoRefresh() {
	d.mu.Lock()
	stop := d.refreshStop
	done := d.refreshDone
	d.refreshStop = nil
	d.refreshDone = nil
	d.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

// SetAutoRefreshInterval 调整刷新间隔，循环在跑时以新间隔重启
func (d *Dashboard) SetAutoRefreshInterval(ctx context.Context, interval time.Duration) {
	d.mu.Lock()
	d.refreshInterval = interval
	running := d.refreshStop != nil
	d.mu.Unlock()

	if running {
		d.StartAutoRefresh(ctx)
	}
}

func (d *Dashboard) runRefresh(ctx context.Context) {
	outcome := d.RefreshAll(ctx)
	for _, err := range outcome.Errors {
		d.logger.Warn("周期刷新部分失败", zap.Error(err))
	}
}

// ── 快照导出 ──

// ExportDaySchedule 把选中日期的课程与带提醒的任务导出为 iCalendar
func (d *Dashboard) ExportDaySchedule() (*bytes.Buffer, string, error) {
	return export.DaySchedule(d.SelectedDateStr(), d.Courses(), d.Tasks())
}

// ExportLedger 把账本与财务统计导出为 Excel
func (d *Dashboard) ExportLedger() (*bytes.Buffer, string, error) {
	return export.Transactions(d.Transactions(), d.FinanceStats())
}

// ── 主题 ──

// initTheme 读取持久化的主题，缺失时采用配置偏好并落盘
func (d *Dashboard) initTheme(preferDark bool) {
	if raw, ok := d.kv.Get(darkModeKey); ok {
		d.darkMode = raw == "true"
		return
	}
	d.darkMode = preferDark
	d.persistThemeLocked()
}

// DarkMode 返回当前是否为深色主题
func (d *Dashboard) DarkMode() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.darkMode
}

// ToggleDarkMode 切换主题并持久化，返回切换后的值
func (d *Dashboard) ToggleDarkMode() bool {
	d.mu.Lock()
	d.darkMode = !d.darkMode
	d.persistThemeLocked()
	dark := d.darkMode
	hook := d.onThemeChange
	d.mu.Unlock()

	if hook != nil {
		hook(dark)
	}
	return dark
}

// OnThemeChange 注册主题切换回调
func (d *Dashboard) OnThemeChange(fn func(dark bool)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onThemeChange = fn
}

// persistThemeLocked 以 "true"/"false" 字符串形式持久化主题
func (d *Dashboard) persistThemeLocked() {
	value := "false"
	if d.darkMode {
		value = "true"
	}
	if err := d.kv.Set(darkModeKey, value); err != nil {
		d.logger.Warn("持久化主题失败", zap.Error(err))
	}
}
