package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Albiehao/kanban/internal/model"
)

// Transactions 把账本快照导出为 Excel。
//
// 输出格式：
//   - Sheet "账本"：日期 | 时间 | 类型 | 分类 | 金额 | 描述；
//   - stats 非空时追加 Sheet "统计"：月度收入/支出/结余与分类支出明细。
//
// 返回值：buf（Excel 内容）, filename（建议文件名）, error
func Transactions(transactions []model.Transaction, stats *model.FinanceStats) (*bytes.Buffer, string, error) {
	if len(transactions) == 0 {
		return nil, "", ErrExportNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "账本"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportWriteFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "B", 12)
	f.SetColWidth(sheetName, "C", "D", 10)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 30)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	headers := []string{"日期", "时间", "类型", "分类", "金额", "描述"}
	for i, h := range headers {
		f.SetCellValue(sheetName, cell(colName(i), 1), h)
	}
	f.SetCellStyle(sheetName, "A1", cell(colName(len(headers)-1), 1), headerStyle)

	typeNames := map[model.TransactionType]string{
		model.TransactionIncome:  "收入",
		model.TransactionExpense: "支出",
	}

	row := 2
	for _, t := range transactions {
		f.SetCellValue(sheetName, cell("A", row), t.Date)
		f.SetCellValue(sheetName, cell("B", row), t.Time)
		f.SetCellValue(sheetName, cell("C", row), typeNames[t.Type])
		f.SetCellValue(sheetName, cell("D", row), t.Category)
		f.SetCellValue(sheetName, cell("E", row), t.Amount)
		f.SetCellValue(sheetName, cell("F", row), t.Description)
		row++
	}

	if stats != nil {
		if err := writeStatsSheet(f, headerStyle, stats); err != nil {
			return nil, "", err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", ErrExportWriteFail
	}
	return buf, "账本导出.xlsx", nil
}

// writeStatsSheet 写入统计 Sheet
func writeStatsSheet(f *excelize.File, headerStyle int, stats *model.FinanceStats) error {
	sheetName := "统计"
	if _, err := f.NewSheet(sheetName); err != nil {
		return ErrExportWriteFail
	}

	f.SetColWidth(sheetName, "A", "A", 16)
	f.SetColWidth(sheetName, "B", "B", 14)

	f.SetCellValue(sheetName, "A1", "项目")
	f.SetCellValue(sheetName, "B1", "金额")
	f.SetCellStyle(sheetName, "A1", "B1", headerStyle)

	f.SetCellValue(sheetName, "A2", "本月收入")
	f.SetCellValue(sheetName, "B2", stats.MonthlyIncome)
	f.SetCellValue(sheetName, "A3", "本月支出")
	f.SetCellValue(sheetName, "B3", stats.MonthlyExpense)
	f.SetCellValue(sheetName, "A4", "结余")
	f.SetCellValue(sheetName, "B4", stats.Balance)

	row := 6
	if len(stats.ExpenseByCategory) > 0 {
		f.SetCellValue(sheetName, cell("A", row), "分类支出")
		f.SetCellStyle(sheetName, cell("A", row), cell("B", row), headerStyle)
		row++
		for _, c := range stats.ExpenseByCategory {
			f.SetCellValue(sheetName, cell("A", row), c.Category)
			f.SetCellValue(sheetName, cell("B", row), c.Amount)
			row++
		}
	}
	return nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
