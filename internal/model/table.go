package model

// ColumnKind 列类型（加载时按列宽松推断）
type ColumnKind string

const (
	ColumnText    ColumnKind = "text"
	ColumnInteger ColumnKind = "integer"
	ColumnDecimal ColumnKind = "decimal"
	ColumnBool    ColumnKind = "bool"
)

// Numeric 是否为数值列
func (k ColumnKind) Numeric() bool {
	return k == ColumnInteger || k == ColumnDecimal
}

// Column 列定义
type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Cell 单元格：保留原始文本，Missing 标记缺失值
type Cell struct {
	Text    string `json:"text"`
	Missing bool   `json:"missing"`
}

// Row 一行记录，与 Table.Columns 一一对应
type Row []Cell

// Table 只读的表格数据
// 加载后在进程生命周期内不可修改，过滤/规范化均返回新表
type Table struct {
	Source  string   `json:"source"`
	Columns []Column `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Len 行数
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index 列名对应的下标，不存在返回 -1
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Cell 按列名取单元格；列不存在或行长度不足时视为缺失
func (t *Table) Cell(row Row, name string) Cell {
	i := t.Index(name)
	if i < 0 || i >= len(row) {
		return Cell{Missing: true}
	}
	return row[i]
}

// ColumnNames 列名列表
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// WithRows 以相同列定义构造新表
func (t *Table) WithRows(rows []Row) *Table {
	return &Table{
		Source:  t.Source,
		Columns: t.Columns,
		Rows:    rows,
	}
}
