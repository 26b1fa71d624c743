package model

import "regexp"

// Course 课程表条目
// 每次拉取都整体重建；ID 由现有列表最大值加批次内位置派生，
// 跨次加载不稳定（原始系统的已知弱点，重建时以服务端 ID 为准展示）
type Course struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Time      string   `json:"time"` // 首个时间段，用于列表展示
	TimeSlots []string `json:"timeSlots"`
	Location  string   `json:"location"`
	Color     string   `json:"color"`
	Date      string   `json:"date"`
	Day       string   `json:"day,omitempty"`
	Teacher   string   `json:"teacher,omitempty"`
	Periods   string   `json:"periods,omitempty"`
}

// CoursePalette 课程颜色盘，按解析顺序轮转分配
var CoursePalette = []string{"bg-chart-1", "bg-chart-2", "bg-chart-3", "bg-chart-4", "bg-chart-5"}

// DefaultTimeSlot 节次缺失或无法解析时的兜底时间段（第 1 节）
const DefaultTimeSlot = "08:00-08:40"

// periodTimeTable 徐海学院作息时间表，共 14 节
var periodTimeTable = map[int]string{
	1:  "08:00-08:40",
	2:  "08:45-09:25",
	3:  "09:45-10:25",
	4:  "10:30-11:10",
	5:  "11:15-11:55",
	6:  "14:00-14:40",
	7:  "14:45-15:25",
	8:  "15:45-16:25",
	9:  "16:30-17:10",
	10: "17:15-17:55",
	11: "19:00-19:40",
	12: "19:45-20:25",
	13: "20:35-21:15",
	14: "21:20-22:00",
}

var periodRangeRe = regexp.MustCompile(`(\d+)-(\d+)节`)

// ParsePeriodsToTimeSlots 将节次范围串（如 "1-2节"、"8-10节"）展开为连续时间段
// 无法解析或展开结果为空时返回 [DefaultTimeSlot]
func ParsePeriodsToTimeSlots(periods string) []string {
	if periods == "" {
		return []string{DefaultTimeSlot}
	}

	m := periodRangeRe.FindStringSubmatch(periods)
	if m == nil {
		return []string{DefaultTimeSlot}
	}

	start := atoi(m[1])
	end := atoi(m[2])

	var slots []string
	for i := start; i <= end; i++ {
		if slot, ok := periodTimeTable[i]; ok {
			slots = append(slots, slot)
		}
	}

	if len(slots) == 0 {
		return []string{DefaultTimeSlot}
	}
	return slots
}

// atoi 正则已保证输入为纯数字
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
