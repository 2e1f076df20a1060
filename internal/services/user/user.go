// Package user реализует бизнес-логику работы с пользователями:
// регистрацию с проверкой уникальности email, выдачу ролей и флаговые
// проверки принадлежности к роли.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// Repository описывает операции хранилища, нужные сервису пользователей.
type Repository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (bson.ObjectID, error)
	DeleteUser(ctx context.Context, id bson.ObjectID) (int64, error)
	UpdateUserRole(ctx context.Context, id bson.ObjectID, role string) (int64, error)
}

// Service — сервис пользователей.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает сервис пользователей поверх переданного хранилища.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List возвращает всю коллекцию пользователей.
func (s *Service) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Register создаёт пользователя, если email ещё не занят.
// Возвращает созданного пользователя и признак того, что вставка произошла:
// при существующем email вставки нет и возвращается (nil, false, nil).
func (s *Service) Register(ctx context.Context, req models.UserRequest) (*models.User, bool, error) {
	const op = "services.user.Register"

	existing, err := s.repo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, false, nil
	}

	user := &models.User{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
		Photo: req.Photo,
	}
	id, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id
	return user, true, nil
}

// Remove удаляет пользователя по идентификатору.
func (s *Service) Remove(ctx context.Context, id bson.ObjectID) (int64, error) {
	return s.repo.DeleteUser(ctx, id)
}

// SetRole безусловно выставляет роль пользователю по идентификатору.
func (s *Service) SetRole(ctx context.Context, id bson.ObjectID, role string) (int64, error) {
	return s.repo.UpdateUserRole(ctx, id, role)
}

// HasRole сообщает, принадлежит ли пользователь с данным email роли role.
// Отсутствующий пользователь даёт false без ошибки.
func (s *Service) HasRole(ctx context.Context, email, role string) (bool, error) {
	const op = "services.user.HasRole"

	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if user == nil {
		return false, nil
	}
	return user.HasRole(role), nil
}
