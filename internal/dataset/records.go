package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// readRecords 读取原始记录（第一行为表头），按扩展名选择 CSV 或 xlsx
func readRecords(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return readWorkbookRecords(path)
	default:
		return readCSVRecords(path)
	}
}

func readCSVRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var records [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Path: path, Line: pe.Line, Err: pe.Err}
			}
			return nil, &FileAccessError{Path: path, Err: err}
		}
		records = append(records, rec)
	}

	return squareRecords(path, records, false)
}

// readWorkbookRecords 读取工作簿第一个工作表
func readWorkbookRecords(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to open workbook: %w", err)}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ParseError{Path: path, Err: errors.New("workbook has no sheets")}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)}
	}

	// GetRows 会省略行尾空单元格，且可能包含全空行
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if isBlankRecord(row) {
			continue
		}
		out = append(out, row)
	}

	return squareRecords(path, out, true)
}

// squareRecords 规范表头并把每行补齐到表头宽度
// 行宽超过表头时：CSV 报错，工作簿截断（工作簿里常有表外备注）
func squareRecords(path string, records [][]string, truncate bool) ([][]string, error) {
	if len(records) == 0 {
		return nil, &ParseError{Path: path, Err: errors.New("no header row")}
	}

	header := normalizeHeader(records[0])
	width := len(header)
	records[0] = header

	for i := 1; i < len(records); i++ {
		rec := records[i]
		switch {
		case len(rec) < width:
			padded := make([]string, width)
			copy(padded, rec)
			records[i] = padded
		case len(rec) > width:
			if !truncate {
				return nil, &ParseError{
					Path: path,
					Line: i + 1,
					Err:  fmt.Errorf("expected %d fields, saw %d", width, len(rec)),
				}
			}
			records[i] = rec[:width]
		}
	}

	return records, nil
}

// normalizeHeader 去除 BOM 与首尾空白；空列名与重复列名按 "Unnamed: i"、"name.1" 命名
func normalizeHeader(raw []string) []string {
	header := make([]string, len(raw))
	seen := make(map[string]int, len(raw))

	for i, name := range raw {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = fmt.Sprintf("%s.%d", name, n+1)
		}
		seen[name] = 0
		header[i] = name
	}

	return header
}

func isBlankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
