// Package models содержит доменные структуры магазина: пользователей, товары,
// отложенные товары (корзину) и платежи, а также типы для приёма данных
// из JSON-запросов с тегами валидации.
package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Роли пользователей. Источник истины — поле role в документе users:
// отсутствующее поле означает обычного пользователя.
const (
	RoleUser   = "user"
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

// User представляет зарегистрированного пользователя магазина.
// Email выступает уникальным ключом: уникальность проверяется перед вставкой,
// но не навязывается хранилищем.
type User struct {
	ID    bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string        `bson:"name,omitempty" json:"name,omitempty"`
	Email string        `bson:"email" json:"email"`
	Role  string        `bson:"role,omitempty" json:"role,omitempty"`
	Photo string        `bson:"photo,omitempty" json:"photo,omitempty"`
}

// HasRole сообщает, относится ли пользователь к роли role.
// Пустое поле role в документе трактуется как обычный пользователь.
func (u *User) HasRole(role string) bool {
	if role == RoleUser {
		return u.Role == "" || u.Role == RoleUser
	}
	return u.Role == role
}

// UserRequest описывает тело запроса на регистрацию пользователя.
type UserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
	Photo string `json:"photo"`
	Role  string `json:"role" validate:"omitempty,oneof=user seller admin"`
}
