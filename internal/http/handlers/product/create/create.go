// Package create реализует HTTP-обработчик добавления товара в каталог.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// Service описывает интерфейс бизнес-логики добавления товара.
type Service interface {
	Create(ctx context.Context, req models.ProductRequest) (*models.Product, error)
}

// Handler управляет HTTP-запросами на добавление товаров.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Добавить товар
// @Description Добавляет товар в каталог и возвращает документ с присвоенным _id.
// @Tags Products
// @Accept json
// @Produce json
// @Param request body models.ProductRequest true "Данные товара"
// @Success 200 {object} models.Product "Созданный товар"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании товара"
// @Router /product [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.product.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create product", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not create product"))
		return
	}

	log.Info("product created", slog.String("id", product.ID.Hex()))
	render.JSON(w, r, product)
}
