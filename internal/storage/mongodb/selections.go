package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// ListSelectionsByEmail возвращает строки корзины пользователя.
func (s *Storage) ListSelectionsByEmail(ctx context.Context, email string) ([]*models.Selection, error) {
	return findMany[models.Selection](ctx, s.col(ColSelectProduct), bson.D{{Key: "email", Value: email}})
}

// CreateSelection вставляет строку корзины и возвращает присвоенный _id.
func (s *Storage) CreateSelection(ctx context.Context, selection *models.Selection) (bson.ObjectID, error) {
	return insertOne(ctx, s.col(ColSelectProduct), selection)
}

// DeleteSelection удаляет строку корзины по _id.
func (s *Storage) DeleteSelection(ctx context.Context, id bson.ObjectID) (int64, error) {
	return deleteByID(ctx, s.col(ColSelectProduct), id)
}
