package dataset

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"premiere/internal/model"
)

// naValues 视为缺失值的文本（与 pandas read_csv 默认集合一致）
// 注意 "NaN%" 不在其中：它只在展示规范化阶段被清空
var naValues = []string{
	"", "NA", "N/A", "n/a", "NaN", "nan", "-NaN", "-nan",
	"null", "NULL", "None", "<NA>", "#N/A", "#N/A N/A", "#NA",
	"1.#IND", "1.#QNAN", "-1.#IND", "-1.#QNAN",
}

// IsNAText 文本是否为缺失值标记
func IsNAText(s string) bool {
	for _, v := range naValues {
		if s == v {
			return true
		}
	}
	return false
}

// buildTable 由原始记录构建只读表
// 缺失标记只由 IsNAText 决定，gota 只负责列类型推断，单元格保留原始文本用于展示
func buildTable(source string, records [][]string) (*model.Table, error) {
	header := records[0]
	body := records[1:]

	columns := make([]model.Column, len(header))
	for i, name := range header {
		columns[i] = model.Column{Name: name, Kind: model.ColumnText}
	}

	rows := make([]model.Row, len(body))
	for r, rec := range body {
		row := make(model.Row, len(header))
		for c := range header {
			row[c] = model.Cell{Text: rec[c], Missing: IsNAText(rec[c])}
		}
		rows[r] = row
	}

	if len(body) == 0 {
		return &model.Table{Source: source, Columns: columns, Rows: rows}, nil
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(naValues),
	)
	if df.Err != nil {
		return nil, &ParseError{Path: source, Err: fmt.Errorf("failed to load records: %w", df.Err)}
	}

	names := df.Names()
	if len(names) != len(header) {
		return nil, &ParseError{Path: source, Err: fmt.Errorf("expected %d columns, got %d", len(header), len(names))}
	}

	types := df.Types()
	for c := range names {
		columns[c].Kind = columnKind(types[c])
	}

	return &model.Table{Source: source, Columns: columns, Rows: rows}, nil
}

func columnKind(t series.Type) model.ColumnKind {
	switch t {
	case series.Int:
		return model.ColumnInteger
	case series.Float:
		return model.ColumnDecimal
	case series.Bool:
		return model.ColumnBool
	default:
		return model.ColumnText
	}
}
