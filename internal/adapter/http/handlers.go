package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	started time.Time
}

func NewHandler() *Handler { return &Handler{started: time.Now().UTC()} }

func (h *Handler) Health(c echo.Context) error {
	now := time.Now().UTC()
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": now.Sub(h.started).Truncate(time.Second).String(),
		"time":   now.Format(time.RFC3339Nano),
	})
}
