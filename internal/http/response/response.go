// Package response содержит типы и функции для формирования JSON-ответов
// об ошибках в едином формате {"error": true, "message": "..."}.
// Успешные ответы сериализуются из документов хранилища напрямую
// и через этот пакет не проходят.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse описывает стандартную структуру JSON-ответа об ошибке.
type ErrorResponse struct {
	Error   bool   `json:"error" example:"true"`
	Message string `json:"message" example:"unauthorized access"`
}

// Message — ответ-сообщение без признака ошибки, например при попытке
// повторной регистрации уже существующего пользователя.
type Message struct {
	Message string `json:"message"`
}

const (
	// MsgUnauthorized — единое сообщение для всех отказов аутентификации:
	// отсутствие заголовка и невалидный токен не различаются клиентом.
	MsgUnauthorized = "unauthorized access"
	// MsgForbidden — сообщение отказа при несовпадении email владельца.
	MsgForbidden = "Forbidden access"
)

// Err возвращает ErrorResponse с переданным сообщением.
func Err(msg string) ErrorResponse {
	return ErrorResponse{
		Error:   true,
		Message: msg,
	}
}

// Unauthorized возвращает фиксированный ответ отказа аутентификации.
func Unauthorized() ErrorResponse {
	return Err(MsgUnauthorized)
}

// Forbidden возвращает фиксированный ответ отказа владения ресурсом.
func Forbidden() ErrorResponse {
	return Err(MsgForbidden)
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение превращается в человеко-читаемый текст, объединённый через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "gt", "gte":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is out of range", err.Field()))
		case "hexadecimal", "len":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a 24-character hex id", err.Field()))
		case "oneof":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be one of user, seller, admin", err.Field()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return Err(strings.Join(errsMsgs, ", "))
}
