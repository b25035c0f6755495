package dashboard

import (
	"premiere/internal/model"
)

// MovieInfo 影片信息页内容
type MovieInfo struct {
	Title       string
	Starring    string
	ReleaseDate string
}

// StatCard 指标卡片（已格式化）
type StatCard struct {
	Label string
	Value string
}

// View 一次渲染所需的全部数据
type View struct {
	PageTitle string
	Selection model.Selection
	Branch    Branch

	Platforms     []model.Platform
	DataTypes     []model.DataType
	ShowDataTypes bool

	// BranchMovieInfo
	Movie         MovieInfo
	Poster        *Poster
	PosterWarning string

	// BookMyShow 分支
	Heading string
	Stats   model.Stats
	Cards   []StatCard
	Table   *model.Table

	// BranchPaytmPlaceholder
	Placeholder model.DataType
}
