package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"premiere/internal/dashboard"
	"premiere/internal/dataset"
)

// Handlers 页面处理器
type Handlers struct {
	svc *dashboard.Service
}

// New 创建处理器
func New(svc *dashboard.Service) *Handlers {
	return &Handlers{svc: svc}
}

// ErrorPage 错误页数据
type ErrorPage struct {
	PageTitle string
	Title     string
	Message   string
	RequestID string
}

// Dashboard 渲染看板
// GET /?platform=BookMyShow&dataType=City%20Data
func (h *Handlers) Dashboard(c *gin.Context) {
	sel := dashboard.NewSelection(c.Query("platform"), c.Query("dataType"))

	view, err := h.svc.Render(sel)
	if err != nil {
		requestID := c.GetString("requestID")
		log.Printf("[%s] render %s/%s failed: %v", requestID, sel.Platform, sel.DataType, err)
		c.HTML(http.StatusInternalServerError, "error.tmpl", ErrorPage{
			PageTitle: h.svc.PageTitle(),
			Title:     errorTitle(err),
			Message:   err.Error(),
			RequestID: requestID,
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.tmpl", view)
}

// Healthz 存活检查
// GET /healthz
func (h *Handlers) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func errorTitle(err error) string {
	var fae *dataset.FileAccessError
	var se *dataset.SchemaError
	var pe *dataset.ParseError
	switch {
	case errors.As(err, &fae):
		return "Data file not found"
	case errors.As(err, &se):
		return "Data file is missing required columns"
	case errors.As(err, &pe):
		return "Data file could not be parsed"
	default:
		return "Dashboard unavailable"
	}
}
