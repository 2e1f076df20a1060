package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
	"github.com/magabrotheeeer/buysellpoint/internal/models"
	"github.com/magabrotheeeer/buysellpoint/internal/storage/mongodb"
)

type Service interface {
	Read(ctx context.Context, id bson.ObjectID) (*models.Product, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := bson.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("invalid id"))
		return
	}

	product, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			log.Info("product not found", slog.String("id", id.Hex()))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Err("product not found"))
			return
		}
		log.Error("failed to read product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not read product"))
		return
	}

	log.Info("product read", slog.String("id", id.Hex()))
	render.JSON(w, r, product)
}
