// Package middlewarectx содержит HTTP middleware для проверки JWT токенов.
//
// JWTMiddleware проверяет наличие и валидность JWT токена в заголовке
// Authorization и в случае успеха добавляет в контекст email пользователя
// для проверок владения ресурсом в обработчиках.
//
// Отсутствие заголовка и невалидный токен дают одинаковый ответ
// HTTP 401 Unauthorized с фиксированным сообщением: причина отказа
// клиенту не раскрывается.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/buysellpoint/internal/http/response"
	jwtlib "github.com/magabrotheeeer/buysellpoint/internal/lib/jwt"
	"github.com/magabrotheeeer/buysellpoint/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// Email — ключ для email пользователя в контексте.
const Email Key = "email"

// TokenParser описывает интерфейс разбора JWT токена.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwtlib.CustomClaims, error)
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Если токен валиден, добавляет email пользователя в контекст запроса,
// иначе возвращает HTTP 401 с фиксированным телом отказа.
func JWTMiddleware(maker TokenParser, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Unauthorized())
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Unauthorized())
				return
			}
			ctx := context.WithValue(r.Context(), Email, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EmailFromContext возвращает email пользователя, положенный JWTMiddleware.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(Email).(string)
	return email, ok && email != ""
}
