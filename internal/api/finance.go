package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Albiehao/kanban/internal/dto"
)

// 财务资源族：后端可能尚未实现这些端点，404 统一打上
// NotImplemented 标记，由调用方静默降级

// ListTransactions 获取全部交易记录
func (c *Client) ListTransactions(ctx context.Context) ([]dto.TransactionPayload, error) {
	raw, err := c.get(ctx, "/transactions", requestOptions{tagNotFound: true})
	if err != nil {
		return nil, err
	}
	return dto.DecodeEnvelope[[]dto.TransactionPayload](raw)
}

// FinanceStats 获取月度财务统计
func (c *Client) FinanceStats(ctx context.Context) (dto.FinanceStatsPayload, error) {
	raw, err := c.get(ctx, "/finance/stats", requestOptions{tagNotFound: true})
	if err != nil {
		return dto.FinanceStatsPayload{}, err
	}
	return dto.DecodeEnvelope[dto.FinanceStatsPayload](raw)
}

// AddTransaction 创建交易记录
func (c *Client) AddTransaction(ctx context.Context, t dto.TransactionPayload) (dto.TransactionPayload, error) {
	raw, err := c.do(ctx, http.MethodPost, "/transactions", t, requestOptions{tagNotFound: true})
	if err != nil {
		return dto.TransactionPayload{}, err
	}
	return dto.DecodeEnvelope[dto.TransactionPayload](raw)
}

// UpdateTransaction 更新交易记录
func (c *Client) UpdateTransaction(ctx context.Context, id int, updates dto.TransactionPayload) (dto.TransactionPayload, error) {
	raw, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/transactions/%d", id), updates, requestOptions{tagNotFound: true})
	if err != nil {
		return dto.TransactionPayload{}, err
	}
	return dto.DecodeEnvelope[dto.TransactionPayload](raw)
}

// DeleteTransaction 删除交易记录（后端语义为冲正）
func (c *Client) DeleteTransaction(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/transactions/%d", id), nil, requestOptions{tagNotFound: true})
	return err
}
