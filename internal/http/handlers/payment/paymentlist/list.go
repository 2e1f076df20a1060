// Package paymentlist реализует HTTP-обработчик выборки истории платежей.
//
// Маршрут открытый; отсутствие query-параметра email отвечает пустым
// списком без обращения к хранилищу.
package paymentlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// Service описывает интерфейс выборки платежей.
type Service interface {
	ListByEmail(ctx context.Context, email string) ([]*models.Payment, error)
}

// Handler управляет HTTP-запросами выборки платежей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	if email == "" {
		log.Info("email query param is missing")
		render.JSON(w, r, []*models.Payment{})
		return
	}

	payments, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		log.Error("failed to list payments", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not list payments"))
		return
	}

	log.Info("list payments", "count", len(payments))
	render.JSON(w, r, payments)
}
