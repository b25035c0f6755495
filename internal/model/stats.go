package model

// Stats 汇总指标（未取整，格式化只在展示时进行）
type Stats struct {
	TotalShows       float64 `json:"totalShows"`
	GrossBooked      float64 `json:"grossBooked"`
	OccupancyAvg     float64 `json:"occupancyAvg"`
	OccupancySamples int     `json:"occupancySamples"`
	Rows             int     `json:"rows"`
}
