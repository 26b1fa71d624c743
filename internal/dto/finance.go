package dto

import "github.com/Albiehao/kanban/internal/model"

// TransactionPayload 交易记录的后端线上形态，字段与客户端实体一致
type TransactionPayload struct {
	ID          int     `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Time        string  `json:"time,omitempty"`
}

// FinanceStatsPayload 月度财务统计的线上形态（后端返回 camelCase 字段）
type FinanceStatsPayload struct {
	MonthlyIncome     float64 `json:"monthlyIncome"`
	MonthlyExpense    float64 `json:"monthlyExpense"`
	Balance           float64 `json:"balance"`
	ExpenseByCategory []struct {
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
		Color    string  `json:"color"`
	} `json:"expenseByCategory"`
}

// ToTransaction 转换为客户端交易实体
func (p *TransactionPayload) ToTransaction() model.Transaction {
	return model.Transaction{
		ID:          p.ID,
		Type:        model.TransactionType(p.Type),
		Amount:      p.Amount,
		Category:    p.Category,
		Description: p.Description,
		Date:        p.Date,
		Time:        p.Time,
	}
}

// TransactionToPayload 转换为线上形态
func TransactionToPayload(t model.Transaction) TransactionPayload {
	return TransactionPayload{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		Time:        t.Time,
	}
}

// ToFinanceStats 转换为客户端统计实体
func (p *FinanceStatsPayload) ToFinanceStats() model.FinanceStats {
	stats := model.FinanceStats{
		MonthlyIncome:  p.MonthlyIncome,
		MonthlyExpense: p.MonthlyExpense,
		Balance:        p.Balance,
	}
	for _, c := range p.ExpenseByCategory {
		stats.ExpenseByCategory = append(stats.ExpenseByCategory, model.CategoryStat{
			Category: c.Category,
			Amount:   c.Amount,
			Color:    c.Color,
		})
	}
	return stats
}
