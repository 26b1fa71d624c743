package model

import (
	"fmt"
	"time"
)

// FormatLocalDate 使用本地日历字段格式化日期为 YYYY-MM-DD
// 所有按日过滤的实体都以该格式比较日期；禁止经 UTC/ISO 转换再截断，
// 否则临近午夜的记录会出现漏显或重复
func FormatLocalDate(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// dayNames 以周日为起点的星期名称，与 time.Weekday 的取值对齐
var dayNames = [7]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}

// DayName 返回日期对应的中文星期名
func DayName(t time.Time) string {
	return dayNames[int(t.Weekday())]
}

// ParseDate 按本地时区解析 YYYY-MM-DD 日期串
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
