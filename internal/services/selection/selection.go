// Package selection реализует бизнес-логику корзины: добавление, выборку
// по email пользователя и удаление строк.
package selection

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// Repository описывает операции хранилища, нужные сервису корзины.
type Repository interface {
	ListSelectionsByEmail(ctx context.Context, email string) ([]*models.Selection, error)
	CreateSelection(ctx context.Context, selection *models.Selection) (bson.ObjectID, error)
	DeleteSelection(ctx context.Context, id bson.ObjectID) (int64, error)
}

// Service — сервис корзины.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает сервис корзины поверх переданного хранилища.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// ListByEmail возвращает строки корзины пользователя.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]*models.Selection, error) {
	return s.repo.ListSelectionsByEmail(ctx, email)
}

// Create добавляет товар в корзину и возвращает строку с присвоенным _id.
func (s *Service) Create(ctx context.Context, req models.SelectionRequest) (*models.Selection, error) {
	const op = "services.selection.Create"

	productID, err := bson.ObjectIDFromHex(req.ProductItemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	selection := &models.Selection{
		Email:         req.Email,
		ProductItemID: productID,
		Name:          req.Name,
		Price:         req.Price,
		Image:         req.Image,
	}
	id, err := s.repo.CreateSelection(ctx, selection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	selection.ID = id
	return selection, nil
}

// Remove удаляет строку корзины по идентификатору.
func (s *Service) Remove(ctx context.Context, id bson.ObjectID) (int64, error) {
	return s.repo.DeleteSelection(ctx, id)
}
