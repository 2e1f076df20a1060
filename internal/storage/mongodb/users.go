package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// ListUsers возвращает всю коллекцию пользователей.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	return findMany[models.User](ctx, s.col(ColUsers), bson.D{})
}

// FindUserByEmail ищет пользователя по email; (nil, nil), если не найден.
func (s *Storage) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findOne[models.User](ctx, s.col(ColUsers), bson.D{{Key: "email", Value: email}})
}

// CreateUser вставляет нового пользователя и возвращает присвоенный _id.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) (bson.ObjectID, error) {
	return insertOne(ctx, s.col(ColUsers), user)
}

// DeleteUser удаляет пользователя по _id.
func (s *Storage) DeleteUser(ctx context.Context, id bson.ObjectID) (int64, error) {
	return deleteByID(ctx, s.col(ColUsers), id)
}

// UpdateUserRole безусловно выставляет role пользователю с данным _id.
func (s *Storage) UpdateUserRole(ctx context.Context, id bson.ObjectID, role string) (int64, error) {
	return updateByID(ctx, s.col(ColUsers), id, bson.D{{Key: "role", Value: role}})
}
