// Package product реализует бизнес-логику каталога товаров.
package product

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// Repository описывает операции хранилища, нужные сервису каталога.
type Repository interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	FindProductByID(ctx context.Context, id bson.ObjectID) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) (bson.ObjectID, error)
	UpdateProduct(ctx context.Context, id bson.ObjectID, fields bson.D) (int64, error)
	DeleteProduct(ctx context.Context, id bson.ObjectID) (int64, error)
}

// Service — сервис каталога.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает сервис каталога поверх переданного хранилища.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// List возвращает весь каталог.
func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	return s.repo.ListProducts(ctx)
}

// Read возвращает товар по идентификатору.
func (s *Service) Read(ctx context.Context, id bson.ObjectID) (*models.Product, error) {
	return s.repo.FindProductByID(ctx, id)
}

// Create добавляет товар в каталог и возвращает его с присвоенным _id.
func (s *Service) Create(ctx context.Context, req models.ProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Available:   req.Available,
		Image:       req.Image,
		Description: req.Description,
		SellerEmail: req.SellerEmail,
	}
	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}
	product.ID = id
	return product, nil
}

// Update применяет частичное обновление: в $set попадают только
// переданные поля патча.
func (s *Service) Update(ctx context.Context, id bson.ObjectID, patch models.ProductPatch) (int64, error) {
	fields := bson.D{}
	if patch.Name != nil {
		fields = append(fields, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Price != nil {
		fields = append(fields, bson.E{Key: "price", Value: *patch.Price})
	}
	if patch.Available != nil {
		fields = append(fields, bson.E{Key: "available", Value: *patch.Available})
	}
	if patch.Image != nil {
		fields = append(fields, bson.E{Key: "image", Value: *patch.Image})
	}
	if patch.Description != nil {
		fields = append(fields, bson.E{Key: "description", Value: *patch.Description})
	}
	if len(fields) == 0 {
		return 0, nil
	}
	return s.repo.UpdateProduct(ctx, id, fields)
}

// Remove удаляет товар по идентификатору.
func (s *Service) Remove(ctx context.Context, id bson.ObjectID) (int64, error) {
	return s.repo.DeleteProduct(ctx, id)
}
