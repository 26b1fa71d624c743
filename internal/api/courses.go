package api

import (
	"context"
	"net/url"

	"github.com/Albiehao/kanban/internal/dto"
)

// ListCourses 获取课程列表，start/end 为空时不限定日期范围
func (c *Client) ListCourses(ctx context.Context, startDate, endDate string) ([]dto.CoursePayload, error) {
	params := url.Values{}
	if startDate != "" {
		params.Set("start_date", startDate)
	}
	if endDate != "" {
		params.Set("end_date", endDate)
	}

	path := "/courses"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	raw, err := c.get(ctx, path, requestOptions{})
	if err != nil {
		return nil, err
	}
	return dto.DecodeEnvelope[[]dto.CoursePayload](raw)
}

// CoursesByDate 获取指定日期的课程
func (c *Client) CoursesByDate(ctx context.Context, date string) ([]dto.CoursePayload, error) {
	return c.ListCourses(ctx, date, date)
}
