// Package health реализует корневой маршрут проверки живости сервера.
package health

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

type Handler struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]any{
		"message":   "BuySellPoint Server is running smoothly",
		"timestamp": time.Now(),
	})
}
