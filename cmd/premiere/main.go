package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"premiere/internal/config"
	"premiere/internal/dashboard"
	"premiere/internal/dataset"
	"premiere/internal/server"
	"premiere/internal/util"
)

var (
	port    = flag.Int("port", 0, "服务端口 (config.toml / PREMIERE_PORT 优先；仅当未显式配置 port 时生效)")
	devMode = flag.Bool("dev", false, "开发模式（不自动打开浏览器）")
	dataDir = flag.String("dataDir", "", "数据目录 (覆盖配置文件)")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Premiere - Movie Premiere Dashboard")
	fmt.Println("==========================================")

	// 加载配置
	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("加载配置失败，使用默认配置: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	svc := dashboard.NewService(dataset.NewLoader(), dashboard.Sources{
		CityPath:    cfg.CityPath(),
		TheaterPath: cfg.TheaterPath(),
		PosterPath:  cfg.PosterPath(),
	}, dashboard.MovieInfo{
		Title:       cfg.Movie.Title,
		Starring:    cfg.Movie.Starring,
		ReleaseDate: cfg.Movie.ReleaseDate,
	})

	// 必需数据文件缺失时直接退出，不提供不完整的看板
	if err := svc.Preload(); err != nil {
		log.Fatalf("加载数据失败: %v", err)
	}
	fmt.Printf("城市数据: %s\n", cfg.CityPath())
	fmt.Printf("影院数据: %s\n", cfg.TheaterPath())

	srv, err := server.NewServer(cfg, svc)
	if err != nil {
		log.Fatalf("初始化服务失败: %v", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("服务启动中，监听端口 %d ...\n", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 打开浏览器
	if !cfg.Server.DevMode {
		fmt.Printf("正在打开浏览器: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("无法自动打开浏览器，请手动访问: %s\n", url)
		}
	} else {
		fmt.Printf("开发模式: 请访问 %s\n", url)
	}

	fmt.Println("\n按 Ctrl+C 停止服务...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n正在关闭服务...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("关闭服务失败: %v", err)
	}
}
