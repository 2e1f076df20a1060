// Package paymentintent реализует HTTP-обработчик создания платёжного
// намерения: цена из запроса пересылается процессингу, клиенту
// возвращается client secret для завершения оплаты на его стороне.
package paymentintent

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
	"github.com/magabrotheeeer/buysellpoint/internal/paymentprovider"
)

// Provider описывает интерфейс клиента платёжного процессинга.
type Provider interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64) (*paymentprovider.PaymentIntent, error)
}

// Handler управляет HTTP-запросами на создание платёжного намерения.
type Handler struct {
	log      *slog.Logger
	provider Provider
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и клиентом процессинга.
func New(log *slog.Logger, provider Provider) *Handler {
	return &Handler{
		log:      log,
		provider: provider,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.intent"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.IntentRequest
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

	// сумма в центах, как её принимает процессинг; доли цента
	// отбрасываются усечением (19.999 дает 1999)
	amountCents := int64(req.Price * 100)

	intent, err := h.provider.CreatePaymentIntent(r.Context(), amountCents)
	if err != nil {
		log.Error("failed to create payment intent", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not create payment intent"))
		return
	}

	log.Info("payment intent created", slog.String("id", intent.ID))
	render.JSON(w, r, map[string]string{"clientSecret": intent.ClientSecret})
}
