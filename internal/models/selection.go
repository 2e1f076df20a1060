package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Selection — строка корзины: связь email пользователя с товаром каталога.
// Запись живёт до оформления платежа, после чего удаляется.
type Selection struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string        `bson:"email" json:"email"`
	ProductItemID bson.ObjectID `bson:"productItemId" json:"productItemId"`
	Name          string        `bson:"name,omitempty" json:"name,omitempty"`
	Price         float64       `bson:"price" json:"price"`
	Image         string        `bson:"image,omitempty" json:"image,omitempty"`
}

// SelectionRequest описывает тело запроса на добавление товара в корзину.
type SelectionRequest struct {
	Email         string  `json:"email" validate:"required,email"`
	ProductItemID string  `json:"productItemId" validate:"required,len=24,hexadecimal"`
	Name          string  `json:"name"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Image         string  `json:"image"`
}
