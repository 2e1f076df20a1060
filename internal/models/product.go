package models

import "go.mongodb.org/mongo-driver/v2/bson"

// Product представляет позицию каталога. Available — счётчик доступных
// единиц, уменьшается на единицу при завершении продажи.
type Product struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string        `bson:"name" json:"name"`
	Price       float64       `bson:"price" json:"price"`
	Available   int           `bson:"available" json:"available"`
	Image       string        `bson:"image,omitempty" json:"image,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	SellerEmail string        `bson:"sellerEmail,omitempty" json:"sellerEmail,omitempty"`
}

// ProductRequest описывает тело запроса на создание товара.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Available   int     `json:"available" validate:"gte=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	SellerEmail string  `json:"sellerEmail" validate:"omitempty,email"`
}

// ProductPatch описывает частичное обновление товара: обновляются
// только переданные поля, nil-поля не трогаются.
type ProductPatch struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Available   *int     `json:"available" validate:"omitempty,gte=0"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}
