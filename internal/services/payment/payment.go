// Package payment реализует бизнес-логику платежей: выборку истории
// по email и фиксацию платежа с погашением строк корзины.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// Repository описывает операции хранилища, нужные сервису платежей.
type Repository interface {
	ListPaymentsByEmail(ctx context.Context, email string) ([]*models.Payment, error)
	FinalizePayment(ctx context.Context, payment *models.Payment, selectionIDs, productIDs []bson.ObjectID) (bson.ObjectID, error)
}

// Service — сервис платежей.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// New создает сервис платежей поверх переданного хранилища.
func New(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// ListByEmail возвращает платежи пользователя, новые первыми.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	return s.repo.ListPaymentsByEmail(ctx, email)
}

// Finalize фиксирует платёж: строит неизменяемую запись транзакции и
// передаёт её хранилищу вместе с погашаемыми строками корзины и товарами,
// у которых уменьшается остаток. Запись платежа после фиксации не меняется.
func (s *Service) Finalize(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	const op = "services.payment.Finalize"

	selectionIDs, err := parseObjectIDs(req.SelectionIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	productIDs, err := parseObjectIDs(req.ProductItemIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	payment := &models.Payment{
		Email:          req.Email,
		TransactionID:  req.TransactionID,
		Price:          req.Price,
		SelectionIDs:   selectionIDs,
		ProductItemIDs: productIDs,
		Date:           time.Now(),
	}
	id, err := s.repo.FinalizePayment(ctx, payment, selectionIDs, productIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	payment.ID = id
	return payment, nil
}

func parseObjectIDs(hexIDs []string) ([]bson.ObjectID, error) {
	ids := make([]bson.ObjectID, 0, len(hexIDs))
	for _, hexID := range hexIDs {
		id, err := bson.ObjectIDFromHex(hexID)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
