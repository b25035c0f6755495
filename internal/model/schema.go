package model

// DatasetKind 数据集类型
type DatasetKind string

const (
	KindCity    DatasetKind = "city"
	KindTheater DatasetKind = "theater"
)

// FieldKind 必填字段的取值类型
type FieldKind int

const (
	FieldCount   FieldKind = iota // 场次等计数
	FieldAmount                   // 金额
	FieldPercent                  // 百分比文本，如 "80.00%"
)

// Field 必填字段
type Field struct {
	Name string
	Kind FieldKind
}

// 数据集列名
const (
	ColTotalShows     = "TotalShows"
	ColBookedGross    = "BookedGross"
	ColTotalOccupancy = "TotalOccupancy"
	ColOccupancy      = "Occupancy"
)

// Schema 数据集的必填字段及统计口径
type Schema struct {
	Kind     DatasetKind
	Required []Field
	// CountField 为空时按行数统计场次（影院数据每行即一场）
	CountField     string
	GrossField     string
	OccupancyField string
}

// CitySchema 城市汇总数据
var CitySchema = Schema{
	Kind: KindCity,
	Required: []Field{
		{Name: ColTotalShows, Kind: FieldCount},
		{Name: ColBookedGross, Kind: FieldAmount},
		{Name: ColTotalOccupancy, Kind: FieldPercent},
	},
	CountField:     ColTotalShows,
	GrossField:     ColBookedGross,
	OccupancyField: ColTotalOccupancy,
}

// TheaterSchema 影院场次数据
var TheaterSchema = Schema{
	Kind: KindTheater,
	Required: []Field{
		{Name: ColBookedGross, Kind: FieldAmount},
		{Name: ColOccupancy, Kind: FieldPercent},
	},
	GrossField:     ColBookedGross,
	OccupancyField: ColOccupancy,
}

// SchemaFor 按数据集类型取 Schema
func SchemaFor(kind DatasetKind) (Schema, bool) {
	switch kind {
	case KindCity:
		return CitySchema, true
	case KindTheater:
		return TheaterSchema, true
	default:
		return Schema{}, false
	}
}
