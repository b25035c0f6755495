package dashboard

import "premiere/internal/model"

// Branch 页面分支
type Branch int

const (
	BranchMovieInfo Branch = iota
	BranchBookMyShowCity
	BranchBookMyShowTheater
	BranchPaytmPlaceholder
)

func (b Branch) String() string {
	switch b {
	case BranchMovieInfo:
		return "movie-info"
	case BranchBookMyShowCity:
		return "bookmyshow-city"
	case BranchBookMyShowTheater:
		return "bookmyshow-theater"
	case BranchPaytmPlaceholder:
		return "paytm-placeholder"
	default:
		return "unknown"
	}
}

// NewSelection 由原始参数构造选择；未知或为空的值回退到下拉框第一个选项
func NewSelection(platform, dataType string) model.Selection {
	sel := model.Selection{
		Platform: model.Platforms[0],
		DataType: model.DataTypes[0],
	}
	if p, ok := model.ParsePlatform(platform); ok {
		sel.Platform = p
	}
	if d, ok := model.ParseDataType(dataType); ok {
		sel.DataType = d
	}
	return sel
}

// Route 每次渲染都从当前选择重新计算，不保留状态
func Route(sel model.Selection) Branch {
	switch sel.Platform {
	case model.PlatformBookMyShow:
		if sel.DataType == model.DataTypeTheater {
			return BranchBookMyShowTheater
		}
		return BranchBookMyShowCity
	case model.PlatformPaytm:
		return BranchPaytmPlaceholder
	default:
		return BranchMovieInfo
	}
}
