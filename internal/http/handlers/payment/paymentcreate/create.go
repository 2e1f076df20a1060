// Package paymentcreate реализует HTTP-обработчик фиксации платежа.
//
// Handler принимает типизированный JSON с данными платежа, валидирует его
// и вызывает бизнес-логику фиксации: вставку записи платежа, удаление
// погашенных строк корзины и уменьшение остатков товаров — одной
// транзакцией. Маршрут защищён токеном, но владение не проверяется:
// любой аутентифицированный вызов может зафиксировать платёж для любого email.
package paymentcreate

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

// Service описывает интерфейс бизнес-логики фиксации платежа.
type Service interface {
	Finalize(ctx context.Context, req models.PaymentRequest) (*models.Payment, error)
}

// Handler управляет HTTP-запросами на фиксацию платежей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики платежей
	validate *validator.Validate // Валидатор структуры входящих данных
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
// @Summary Зафиксировать платёж
// @Description Вставляет запись платежа, удаляет погашенные строки корзины и уменьшает остатки товаров одной транзакцией.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body models.PaymentRequest true "Данные платежа"
// @Success 200 {object} models.Payment "Зафиксированный платёж"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при фиксации платежа"
// @Security BearerAuth
// @Router /payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.PaymentRequest
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

	payment, err := h.service.Finalize(r.Context(), req)
	if err != nil {
		log.Error("failed to finalize payment", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not create payment"))
		return
	}

	log.Info("payment finalized",
		slog.String("id", payment.ID.Hex()),
		slog.String("transaction_id", payment.TransactionID))
	render.JSON(w, r, payment)
}
