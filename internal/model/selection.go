package model

// Platform 侧边栏平台选项
type Platform string

const (
	PlatformMovieInfo  Platform = "Show Movie Info"
	PlatformBookMyShow Platform = "BookMyShow"
	PlatformPaytm      Platform = "Paytm"
)

// Platforms 平台选项（顺序即下拉框顺序，第一个为默认值）
var Platforms = []Platform{PlatformMovieInfo, PlatformBookMyShow, PlatformPaytm}

// HasDataTypes 该平台是否显示数据类型下拉框
func (p Platform) HasDataTypes() bool {
	return p == PlatformBookMyShow || p == PlatformPaytm
}

// DataType 数据类型选项
type DataType string

const (
	DataTypeCity    DataType = "City Data"
	DataTypeTheater DataType = "Theater Data"
)

// DataTypes 数据类型选项（第一个为默认值）
var DataTypes = []DataType{DataTypeCity, DataTypeTheater}

// DatasetKind 数据类型对应的数据集
func (d DataType) DatasetKind() DatasetKind {
	if d == DataTypeTheater {
		return KindTheater
	}
	return KindCity
}

// Selection 一次渲染的用户选择
type Selection struct {
	Platform Platform `json:"platform"`
	DataType DataType `json:"dataType"`
}

// ParsePlatform 解析平台；未知值返回 false
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ParseDataType 解析数据类型；未知值返回 false
func ParseDataType(s string) (DataType, bool) {
	for _, d := range DataTypes {
		if string(d) == s {
			return d, true
		}
	}
	return "", false
}
