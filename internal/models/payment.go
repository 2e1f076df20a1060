package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Payment — неизменяемая запись завершённой транзакции: кто платил,
// идентификатор транзакции процессинга, сумма и набор строк корзины,
// которые платёж погасил.
type Payment struct {
	ID             bson.ObjectID   `bson:"_id,omitempty" json:"_id,omitempty"`
	Email          string          `bson:"email" json:"email"`
	TransactionID  string          `bson:"transactionId" json:"transactionId"`
	Price          float64         `bson:"price" json:"price"`
	SelectionIDs   []bson.ObjectID `bson:"selectionIds" json:"selectionIds"`
	ProductItemIDs []bson.ObjectID `bson:"productItemIds" json:"productItemIds"`
	Date           time.Time       `bson:"date" json:"date"`
}

// PaymentRequest описывает тело запроса на фиксацию платежа.
// SelectionIDs — строки корзины, которые платёж погашает;
// ProductItemIDs — товары, у которых уменьшается доступный остаток,
// по одному на каждую погашаемую строку.
type PaymentRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	TransactionID  string   `json:"transactionId" validate:"required"`
	Price          float64  `json:"price" validate:"required,gt=0"`
	SelectionIDs   []string `json:"selectionIds" validate:"required,min=1,dive,len=24,hexadecimal"`
	ProductItemIDs []string `json:"productItemIds" validate:"required,min=1,dive,len=24,hexadecimal"`
}

// IntentRequest описывает тело запроса на создание платёжного намерения.
type IntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}
