package model

// TransactionType 收支类型
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction 账本交易记录
// 后端语义上删除是"冲正"而非抹除；客户端一律按从本地数组移除处理
type Transaction struct {
	ID          int             `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Time        string          `json:"time,omitempty"`
}

// CategoryStat 按分类聚合的支出统计
type CategoryStat struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Color    string  `json:"color"`
}

// FinanceStats 月度财务统计
// 全部由服务端计算，客户端从不本地推导
type FinanceStats struct {
	MonthlyIncome     float64        `json:"monthlyIncome"`
	MonthlyExpense    float64        `json:"monthlyExpense"`
	Balance           float64        `json:"balance"`
	ExpenseByCategory []CategoryStat `json:"expenseByCategory"`
}
