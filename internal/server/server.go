package server

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"premiere/internal/config"
	"premiere/internal/dashboard"
	"premiere/internal/server/handlers"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

//go:embed assets
var assetFiles embed.FS

// RequestIDHeader 请求 ID 响应头
const RequestIDHeader = "X-Request-ID"

// Server HTTP服务器
type Server struct {
	router   *gin.Engine
	handlers *handlers.Handlers
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig, svc *dashboard.Service) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(templateFiles, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(requestID(), gin.Logger(), gin.Recovery())
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		router:   router,
		handlers: handlers.New(svc),
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	assets, _ := fs.Sub(assetFiles, "assets")
	s.router.StaticFS("/assets", http.FS(assets))

	s.router.GET("/healthz", s.handlers.Healthz)
	s.router.GET("/", s.handlers.Dashboard)

	s.router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/")
	})
}

// Handler 返回 http.Handler（用于测试与 http.Server）
func (s *Server) Handler() http.Handler {
	return s.router
}

// requestID 为每次渲染分配请求 ID，便于日志关联
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
