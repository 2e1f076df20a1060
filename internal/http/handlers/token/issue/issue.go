// Package issue реализует HTTP-обработчик выпуска JWT токена.
//
// Handler принимает произвольный JSON с данными личности, требует наличия
// поля email и возвращает подписанный токен со сроком жизни из конфига.
// Учёт выпущенных токенов и их отзыв не ведутся.
package issue

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
)

// Maker описывает интерфейс выпуска токена.
type Maker interface {
	GenerateToken(claims map[string]any) (string, error)
}

// Handler управляет HTTP-запросами на выпуск токена.
type Handler struct {
	log   *slog.Logger
	maker Maker
}

// New создает новый Handler с переданными логгером и выпускателем токенов.
func New(log *slog.Logger, maker Maker) *Handler {
	return &Handler{
		log:   log,
		maker: maker,
	}
}

// ServeHTTP godoc
// @Summary Выпустить JWT токен
// @Description Подписывает переданные данные личности. Поле email обязательно.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body map[string]any true "Данные личности с полем email"
// @Success 200 {object} map[string]string "Подписанный токен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или отсутствует email"
// @Router /jwt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.token.issue"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var claims map[string]any
	if err := json.NewDecoder(r.Body).Decode(&claims); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("invalid request body"))
		return
	}

	email, _ := claims["email"].(string)
	if email == "" {
		log.Error("email claim is missing")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Err("field email is a required field"))
		return
	}

	token, err := h.maker.GenerateToken(claims)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Err("could not generate token"))
		return
	}

	log.Info("token issued", slog.String("email", email))
	render.JSON(w, r, map[string]string{"token": token})
}
