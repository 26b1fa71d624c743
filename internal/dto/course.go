package dto

// CoursePayload 课程的后端线上形态
type CoursePayload struct {
	ID         int    `json:"id"`
	CourseName string `json:"course_name"`
	Classroom  string `json:"classroom"`
	Date       string `json:"date"`
	Teacher    string `json:"teacher"`
	Periods    string `json:"periods"`
}
