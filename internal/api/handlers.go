package api

import (
	"context"
	"net/http"

	"ainewsdesk/internal/metrics"
	"ainewsdesk/internal/service"
	"ainewsdesk/internal/summarize"

	"github.com/gin-gonic/gin"
)

// NewsProvider is the pipeline entry point consumed by the HTTP layer.
type NewsProvider interface {
	GetNews(ctx context.Context, lang summarize.Language) service.Result
}

type Handler struct {
	provider NewsProvider
}

func NewHandler(provider NewsProvider) *Handler {
	return &Handler{provider: provider}
}

// GetNews serves GET /api/news?lang={jp|en|kr|cn}. An absent or invalid lang
// falls back to jp.
func (h *Handler) GetNews(c *gin.Context) {
	lang := summarize.ParseLanguage(c.Query("lang"))
	result := h.provider.GetNews(c.Request.Context(), lang)
	c.JSON(http.StatusOK, result)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	stats := metrics.Global.GetStats()

	status := "ok"
	code := http.StatusOK
	if !stats["is_healthy"].(bool) {
		status = "error"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":     status,
		"last_run":   stats["last_run_time"],
		"last_error": stats["last_error"],
	})
}

func (h *Handler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Global.GetStats())
}
