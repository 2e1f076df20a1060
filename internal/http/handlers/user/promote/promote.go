// Package promote реализует HTTP-обработчик выдачи роли пользователю.
//
// Один и тот же Handler обслуживает выдачу ролей admin и seller:
// роль фиксируется при регистрации маршрута. Обновление безусловное —
// текущая роль пользователя не проверяется.
package promote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики выдачи ролей.
type Service interface {
	SetRole(ctx context.Context, id bson.ObjectID, role string) (int64, error)
}

// Handler управляет HTTP-запросами на выдачу роли.
type Handler struct {
	log     *slog.Logger
	service Service
	role    string // роль, которую выставляет этот маршрут
}

// New создает новый Handler, выставляющий переданную роль.
func New(log *slog.Logger, service Service, role string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		role:    role,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.promote"
	log := h.log.With(
		slog.String("op", op),
		slog.String("role", h.role),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("invalid id"))
		return
	}

	modified, err := h.service.SetRole(r.Context(), id, h.role)
	if err != nil {
		log.Error("failed to set role", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not update user role"))
		return
	}

	log.Info("role updated", slog.Int64("modified_count", modified))
	render.JSON(w, r, map[string]int64{"modifiedCount": modified})
}
