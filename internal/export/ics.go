// Package export 实现本地快照的离线导出：
// 当日课程表导出为 iCalendar，账本导出为 Excel。
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/Albiehao/kanban/internal/model"
)

// ── 导出业务错误 ──

var (
	ErrExportEmptyDay   = errors.New("该日期无可导出的课程或提醒")
	ErrExportBadDate    = errors.New("日期格式不合法")
	ErrExportNoData     = errors.New("无可导出的交易记录")
	ErrExportWriteFail  = errors.New("生成导出文件失败")
	errSlotFormat       = errors.New("时间段格式不合法")
)

// DaySchedule 把指定日期的课程与带提醒的任务导出为 iCalendar。
//
// 输出约定：
//   - 每门课程一个 VEVENT，起止取首个时间段的开始与末个时间段的结束；
//   - 带提醒的任务同样生成 VEVENT，时间取 reminder_time（缺失则 09:00）；
//   - 全部时间按本地时区写出。
//
// 返回值：buf（ICS 内容）, filename（建议文件名）, error
func DaySchedule(date string, courses []model.Course, tasks []model.Task) (*bytes.Buffer, string, error) {
	day, err := model.ParseDate(date)
	if err != nil {
		return nil, "", ErrExportBadDate
	}

	var dayCourses []model.Course
	for _, c := range courses {
		if c.Date == date {
			dayCourses = append(dayCourses, c)
		}
	}
	var dayTasks []model.Task
	for _, t := range tasks {
		if t.Date == date && t.HasReminder {
			dayTasks = append(dayTasks, t)
		}
	}
	if len(dayCourses) == 0 && len(dayTasks) == 0 {
		return nil, "", ErrExportEmptyDay
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//kanban//day-schedule//CN")

	now := time.Now()
	for _, c := range dayCourses {
		start, end, err := courseSpan(day, c)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("course-%d-%s@kanban", c.ID, date))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(c.Name)
		if c.Location != "" {
			event.SetLocation(c.Location)
		}
		if c.Teacher != "" {
			event.SetDescription(fmt.Sprintf("授课教师: %s", c.Teacher))
		}
	}

	for _, t := range dayTasks {
		start, err := taskStart(day, t)
		if err != nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("task-%d-%s@kanban", t.ID, date))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(30 * time.Minute))
		event.SetSummary(t.Title)
		if t.Description != "" {
			event.SetDescription(t.Description)
		}
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("日程_%s.ics", date)
	return buf, filename, nil
}

// courseSpan 课程起止时刻：首个时间段的开始到末个时间段的结束
func courseSpan(day time.Time, c model.Course) (time.Time, time.Time, error) {
	slots := c.TimeSlots
	if len(slots) == 0 {
		slots = []string{model.DefaultTimeSlot}
	}

	start, _, err := parseSlot(day, slots[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	_, end, err := parseSlot(day, slots[len(slots)-1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// taskStart 任务提醒时刻，reminder_time 缺失时默认 09:00
func taskStart(day time.Time, t model.Task) (time.Time, error) {
	at := t.ReminderTime
	if at == "" {
		at = "09:00"
	}
	return clockOn(day, at)
}

// parseSlot 解析 "HH:MM-HH:MM" 形式的时间段
func parseSlot(day time.Time, slot string) (time.Time, time.Time, error) {
	parts := strings.SplitN(slot, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, errSlotFormat
	}
	start, err := clockOn(day, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := clockOn(day, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// clockOn 把 "HH:MM" 叠加到指定日期上（本地时区）
func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, errSlotFormat
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.Local), nil
}
