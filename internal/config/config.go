package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Movie  MovieConfig  `toml:"movie"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据文件配置；相对路径基于 DataDir
type DataConfig struct {
	DataDir     string `toml:"data_dir"`
	CityFile    string `toml:"city_file"`
	TheaterFile string `toml:"theater_file"`
	PosterFile  string `toml:"poster_file"`
}

// MovieConfig 影片信息页展示内容
type MovieConfig struct {
	Title       string `toml:"title"`
	Starring    string `toml:"starring"`
	ReleaseDate string `toml:"release_date"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	FileFound     bool
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8501,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:     ".",
			CityFile:    "city_summary_2025-07-21_730.csv",
			TheaterFile: "theatre_shows_2025-07-21 _730.csv",
			PosterFile:  "HHVM.jpeg",
		},
		Movie: MovieConfig{
			Title:       "Hari Hara Veera Mallu",
			Starring:    "Pawan Kalyan",
			ReleaseDate: "July 24th, 2025",
		},
	}
}

// Validate 校验必需配置
func (c *AppConfig) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if strings.TrimSpace(c.Data.CityFile) == "" {
		return errors.New("data.city_file is required")
	}
	if strings.TrimSpace(c.Data.TheaterFile) == "" {
		return errors.New("data.theater_file is required")
	}
	return nil
}

// CityPath 城市数据文件路径
func (c *AppConfig) CityPath() string { return c.resolve(c.Data.CityFile) }

// TheaterPath 影院数据文件路径
func (c *AppConfig) TheaterPath() string { return c.resolve(c.Data.TheaterFile) }

// PosterPath 海报图片路径，未配置时为空
func (c *AppConfig) PosterPath() string {
	if strings.TrimSpace(c.Data.PosterFile) == "" {
		return ""
	}
	return c.resolve(c.Data.PosterFile)
}

func (c *AppConfig) resolve(name string) string {
	if filepath.IsAbs(name) || c.Data.DataDir == "" {
		return name
	}
	return filepath.Join(c.Data.DataDir, name)
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadFile(filepath.Join(exeDir, "config.toml"))
}

// LoadFile 从指定路径加载配置；文件不存在时使用默认配置
// 加载顺序：默认值 -> config.toml -> .env / 环境变量
func LoadFile(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: configPath}
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		info.FileFound = true
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, err
	}

	// .env 可选，不存在时忽略
	_ = godotenv.Load()

	if applyEnv(config) {
		info.PortSpecified = true
	}

	return config, info, nil
}

// applyEnv 环境变量覆盖，返回是否显式指定了端口
// 无法解析的 PREMIERE_PORT 只记录日志并忽略，其余配置保持不变
func applyEnv(config *AppConfig) bool {
	portSpecified := false
	if v := strings.TrimSpace(os.Getenv("PREMIERE_PORT")); v != "" {
		if port, err := strconv.Atoi(v); err != nil {
			log.Printf("忽略无效的 PREMIERE_PORT %q: %v", v, err)
		} else {
			config.Server.Port = port
			portSpecified = true
		}
	}
	if v := strings.TrimSpace(os.Getenv("PREMIERE_DATA_DIR")); v != "" {
		config.Data.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("PREMIERE_CITY_FILE")); v != "" {
		config.Data.CityFile = v
	}
	if v := strings.TrimSpace(os.Getenv("PREMIERE_THEATER_FILE")); v != "" {
		config.Data.TheaterFile = v
	}
	if v, ok := os.LookupEnv("PREMIERE_POSTER_FILE"); ok {
		config.Data.PosterFile = strings.TrimSpace(v)
	}
	return portSpecified
}
