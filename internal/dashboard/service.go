package dashboard

import (
	"fmt"

	"premiere/internal/cleaner"
	"premiere/internal/model"
	"premiere/internal/stats"
	"premiere/internal/util"
)

// TableLoader 数据集加载接口（由 dataset.Loader 实现）
type TableLoader interface {
	LoadDataset(path string, schema model.Schema) (*model.Table, error)
}

// Sources 数据文件位置
type Sources struct {
	CityPath    string
	TheaterPath string
	PosterPath  string
}

// Service 看板渲染服务：加载 -> 过滤 -> 规范化 -> 汇总
type Service struct {
	loader  TableLoader
	sources Sources
	movie   MovieInfo
}

// NewService 创建服务
func NewService(loader TableLoader, sources Sources, movie MovieInfo) *Service {
	return &Service{
		loader:  loader,
		sources: sources,
		movie:   movie,
	}
}

// PageTitle 浏览器标题
func (s *Service) PageTitle() string {
	return s.movie.Title + " - Movie Premiere Dashboard"
}

// Preload 预先加载两个必需数据集，任一失败即返回错误
func (s *Service) Preload() error {
	if _, err := s.loader.LoadDataset(s.sources.CityPath, model.CitySchema); err != nil {
		return err
	}
	if _, err := s.loader.LoadDataset(s.sources.TheaterPath, model.TheaterSchema); err != nil {
		return err
	}
	return nil
}

// Render 按选择生成页面视图
func (s *Service) Render(sel model.Selection) (*View, error) {
	branch := Route(sel)
	v := &View{
		PageTitle:     s.PageTitle(),
		Selection:     sel,
		Branch:        branch,
		Platforms:     model.Platforms,
		DataTypes:     model.DataTypes,
		ShowDataTypes: sel.Platform.HasDataTypes(),
	}

	switch branch {
	case BranchMovieInfo:
		v.Movie = s.movie
		v.Poster, v.PosterWarning = LoadPoster(s.sources.PosterPath)
	case BranchBookMyShowCity:
		if err := s.fillStats(v, s.sources.CityPath, model.CitySchema); err != nil {
			return nil, err
		}
	case BranchBookMyShowTheater:
		if err := s.fillStats(v, s.sources.TheaterPath, model.TheaterSchema); err != nil {
			return nil, err
		}
	case BranchPaytmPlaceholder:
		v.Placeholder = sel.DataType
	}

	return v, nil
}

// Summary 对单个数据集执行完整管道，返回清洗后的表与指标
func (s *Service) Summary(kind model.DatasetKind) (*model.Table, model.Stats, error) {
	schema, ok := model.SchemaFor(kind)
	if !ok {
		return nil, model.Stats{}, fmt.Errorf("unknown dataset kind: %s", kind)
	}
	path := s.sources.CityPath
	if kind == model.KindTheater {
		path = s.sources.TheaterPath
	}

	raw, err := s.loader.LoadDataset(path, schema)
	if err != nil {
		return nil, model.Stats{}, err
	}
	clean := cleaner.Clean(raw, schema)
	return clean, stats.Compute(clean, schema), nil
}

func (s *Service) fillStats(v *View, path string, schema model.Schema) error {
	table, st, err := s.Summary(schema.Kind)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}

	v.Heading = fmt.Sprintf("%s - %s", model.PlatformBookMyShow, v.Selection.DataType)
	v.Stats = st
	v.Cards = Cards(st)
	v.Table = table
	return nil
}

// Cards 指标卡片
func Cards(st model.Stats) []StatCard {
	return []StatCard{
		{Label: "Total Shows", Value: util.FormatCount(st.TotalShows)},
		{Label: "Gross Booked", Value: util.FormatCurrency(st.GrossBooked)},
		{Label: "Occupancy Avg", Value: util.FormatPercent(st.OccupancyAvg)},
	}
}
