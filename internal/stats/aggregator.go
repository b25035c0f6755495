package stats

import (
	"premiere/internal/model"
	"premiere/internal/parser"
)

// Compute 计算汇总指标，输入应为已过滤并规范化的表
//   - 场次：城市数据对 TotalShows 求和；影院数据按行计数
//   - 总票房：BookedGross 求和
//   - 平均上座率：非空百分比的算术平均，没有可用值时为 0
func Compute(t *model.Table, schema model.Schema) model.Stats {
	s := model.Stats{Rows: t.Len()}
	if t.Len() == 0 {
		return s
	}

	countIdx := -1
	if schema.CountField != "" {
		countIdx = t.Index(schema.CountField)
	}
	grossIdx := t.Index(schema.GrossField)
	occIdx := t.Index(schema.OccupancyField)

	var occSum float64
	for _, row := range t.Rows {
		if schema.CountField == "" {
			s.TotalShows++
		} else if v, ok := numberAt(row, countIdx); ok {
			s.TotalShows += v
		}

		if v, ok := numberAt(row, grossIdx); ok {
			s.GrossBooked += v
		}

		if occIdx < 0 || occIdx >= len(row) || row[occIdx].Text == "" {
			continue
		}
		if v, ok := parser.ParsePercent(row[occIdx].Text); ok {
			occSum += v
			s.OccupancySamples++
		}
	}

	if s.OccupancySamples > 0 {
		s.OccupancyAvg = occSum / float64(s.OccupancySamples)
	}
	return s
}

func numberAt(row model.Row, i int) (float64, bool) {
	if i < 0 || i >= len(row) || row[i].Missing {
		return 0, false
	}
	return parser.ParseNumber(row[i].Text)
}

// OccupancyAverage 百分比文本的平均值；空文本与无法解析的值被忽略，无可用值时返回 0
func OccupancyAverage(values []string) float64 {
	var sum float64
	n := 0
	for _, v := range values {
		if v == "" {
			continue
		}
		if f, ok := parser.ParsePercent(v); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
