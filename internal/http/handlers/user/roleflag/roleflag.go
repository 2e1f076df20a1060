// Package roleflag реализует HTTP-обработчик флаговой проверки роли:
// GET /users/{role}/{email} отвечает булевым значением, принадлежит ли
// пользователь роли маршрута.
//
// Проверка владения здесь тихая: несовпадение email токена с email из
// пути даёт 200 с отрицательным флагом, а не ошибку (режим DenyWithFalse
// из таблицы политик).
package roleflag

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/buysellpoint/internal/authz"
	"github.com/magabrotheeeer/buysellpoint/internal/http/middlewarectx"
	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
)

// Service описывает интерфейс проверки принадлежности пользователя роли.
type Service interface {
	HasRole(ctx context.Context, email, role string) (bool, error)
}

// Handler управляет HTTP-запросами флаговой проверки роли.
type Handler struct {
	log     *slog.Logger
	service Service
	role    string // роль, которую проверяет этот маршрут; она же ключ ответа
}

// New создает новый Handler для переданной роли.
func New(log *slog.Logger, service Service, role string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		role:    role,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.roleflag"
	log := h.log.With(
		slog.String("op", op),
		slog.String("role", h.role),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")
	claimEmail, ok := middlewarectx.EmailFromContext(r.Context())
	if !ok {
		log.Error("email not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Unauthorized())
		return
	}

	decision := authz.Decide(authz.RouteRoleFlag, claimEmail, email)
	if !decision.Allowed {
		log.Info("owner mismatch, degrading to negative flag",
			slog.String("claim", claimEmail), slog.String("requested", email))
		render.JSON(w, r, map[string]bool{h.role: false})
		return
	}

	hasRole, err := h.service.HasRole(r.Context(), email, h.role)
	if err != nil {
		log.Error("failed to check role", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not check role"))
		return
	}

	log.Info("role flag checked", slog.Bool("flag", hasRole))
	render.JSON(w, r, map[string]bool{h.role: hasRole})
}
