// premiere-check 启动前检查数据文件：加载、清洗并打印汇总指标
package main

import (
	"flag"
	"fmt"
	"os"

	"premiere/internal/config"
	"premiere/internal/dashboard"
	"premiere/internal/dataset"
	"premiere/internal/model"
)

func main() {
	configPath := flag.String("config", "config.toml", "配置文件路径")
	dataDir := flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
	flag.Parse()

	cfg, _, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	svc := dashboard.NewService(dataset.NewLoader(), dashboard.Sources{
		CityPath:    cfg.CityPath(),
		TheaterPath: cfg.TheaterPath(),
	}, dashboard.MovieInfo{Title: cfg.Movie.Title})

	failed := false
	for _, dt := range model.DataTypes {
		table, st, err := svc.Summary(dt.DatasetKind())
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", dt, err)
			failed = true
			continue
		}
		fmt.Printf("%s (%s)\n", dt, table.Source)
		fmt.Printf("  rows kept:      %d\n", table.Len())
		for _, card := range dashboard.Cards(st) {
			fmt.Printf("  %-15s %s\n", card.Label+":", card.Value)
		}
	}

	if failed {
		os.Exit(1)
	}
}
