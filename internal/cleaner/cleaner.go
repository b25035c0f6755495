// Package cleaner 数据清洗：先按必填字段过滤，再做展示用的空值规范化。
// 两步必须分开执行，规范化不能影响哪些行被保留。
package cleaner

import (
	"premiere/internal/model"
	"premiere/internal/parser"
)

// FilterRequired 保留所有必填字段均有效的行（稳定过滤，幂等）
func FilterRequired(t *model.Table, required []model.Field) *model.Table {
	idx := make([]int, len(required))
	for i, f := range required {
		idx[i] = t.Index(f.Name)
	}

	rows := make([]model.Row, 0, len(t.Rows))
	for _, row := range t.Rows {
		if rowHasRequired(row, required, idx) {
			rows = append(rows, row)
		}
	}
	return t.WithRows(rows)
}

func rowHasRequired(row model.Row, required []model.Field, idx []int) bool {
	for i, f := range required {
		c := idx[i]
		if c < 0 || c >= len(row) {
			return false
		}
		if !Present(row[c], f.Kind) {
			return false
		}
	}
	return true
}

// Present 单元格是否满足必填要求
// 计数/金额须为有限数值；百分比须可解析，或为占位文本 "NaN%"（留给规范化处理）
func Present(cell model.Cell, kind model.FieldKind) bool {
	if cell.Missing {
		return false
	}
	switch kind {
	case model.FieldCount, model.FieldAmount:
		_, ok := parser.ParseNumber(cell.Text)
		return ok
	case model.FieldPercent:
		if parser.IsPercentPlaceholder(cell.Text) {
			return true
		}
		_, ok := parser.ParsePercent(cell.Text)
		return ok
	default:
		return true
	}
}

// Normalize 所有列中的缺失值与 "NaN%" 统一替换为空字符串
func Normalize(t *model.Table) *model.Table {
	rows := make([]model.Row, len(t.Rows))
	for i, row := range t.Rows {
		out := make(model.Row, len(row))
		for j, cell := range row {
			if cell.Missing || parser.IsPercentPlaceholder(cell.Text) {
				out[j] = model.Cell{}
				continue
			}
			out[j] = cell
		}
		rows[i] = out
	}
	return t.WithRows(rows)
}

// Clean 过滤后规范化
func Clean(t *model.Table, schema model.Schema) *model.Table {
	return Normalize(FilterRequired(t, schema.Required))
}
