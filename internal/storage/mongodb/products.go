package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// ListProducts возвращает весь каталог.
func (s *Storage) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return findMany[models.Product](ctx, s.col(ColProduct), bson.D{})
}

// FindProductByID ищет товар по _id.
func (s *Storage) FindProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	product, err := findOne[models.Product](ctx, s.col(ColProduct), bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// CreateProduct вставляет товар и возвращает присвоенный _id.
func (s *Storage) CreateProduct(ctx context.Context, product *models.Product) (bson.ObjectID, error) {
	return insertOne(ctx, s.col(ColProduct), product)
}

// UpdateProduct применяет $set с переданными полями к товару.
func (s *Storage) UpdateProduct(ctx context.Context, id bson.ObjectID, fields bson.D) (int64, error) {
	return updateByID(ctx, s.col(ColProduct), id, fields)
}

// DeleteProduct удаляет товар по _id.
func (s *Storage) DeleteProduct(ctx context.Context, id bson.ObjectID) (int64, error) {
	return deleteByID(ctx, s.col(ColProduct), id)
}
