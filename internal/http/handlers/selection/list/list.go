// Package list реализует HTTP-обработчик выборки корзины пользователя.
//
// Email берётся из query-параметра и сверяется с email из токена по
// таблице политик: несовпадение даёт явный 403 Forbidden access —
// в отличие от тихого отказа флаговых маршрутов ролей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/buysellpoint/internal/authz"
	"github.com/magabrotheeeer/buysellpoint/internal/http/middlewarectx"
	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// Service описывает интерфейс выборки корзины.
type Service interface {
	ListByEmail(ctx context.Context, email string) ([]*models.Selection, error)
}

// Handler управляет HTTP-запросами выборки корзины.
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
	const op = "handlers.selection.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")
	claimEmail, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("email not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Unauthorized())
		return
	}

	decision := authz.Decide(authz.RouteSelectionList, claimEmail, email)
	if !decision.Allowed {
		log.Error("owner mismatch",
			slog.String("claim", claimEmail), slog.String("requested", email))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, response.Forbidden())
		return
	}

	selections, err := h.service.ListByEmail(r.Context(), email)
	if err != nil {
		log.Error("failed to list selections", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not list selections"))
		return
	}

	log.Info("list selections", "count", len(selections))
	render.JSON(w, r, selections)
}
