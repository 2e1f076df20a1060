package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// ListPaymentsByEmail возвращает платежи пользователя, новые первыми
// (сортировка по _id по убыванию соответствует порядку вставки).
func (s *Storage) ListPaymentsByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	return findMany[models.Payment](ctx, s.col(ColPayment), bson.D{{Key: "email", Value: email}}, opts)
}

// FinalizePayment фиксирует платёж в одной многодокументной транзакции:
// вставляет запись платежа, удаляет погашенные строки корзины по членству
// _id и уменьшает available на единицу у каждого товара из списка.
// Хранилище остаётся либо полностью обновлённым, либо нетронутым.
func (s *Storage) FinalizePayment(ctx context.Context, payment *models.Payment, selectionIDs, productIDs []bson.ObjectID) (bson.ObjectID, error) {
	const op = "storage.mongodb.FinalizePayment"

	session, err := s.client.StartSession()
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%s: %w", op, err)
	}
	defer session.EndSession(ctx)

	result, err := session.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		id, err := insertOne(ctx, s.col(ColPayment), payment)
		if err != nil {
			return nil, err
		}

		_, err = s.col(ColSelectProduct).DeleteMany(ctx, bson.D{
			{Key: "_id", Value: bson.D{{Key: "$in", Value: selectionIDs}}},
		})
		if err != nil {
			return nil, err
		}

		for _, productID := range productIDs {
			_, err = s.col(ColProduct).UpdateOne(ctx,
				bson.D{{Key: "_id", Value: productID}},
				bson.D{{Key: "$inc", Value: bson.D{{Key: "available", Value: -1}}}},
			)
			if err != nil {
				return nil, err
			}
		}
		return id, nil
	})
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%s: %w", op, err)
	}
	return result.(bson.ObjectID), nil
}
