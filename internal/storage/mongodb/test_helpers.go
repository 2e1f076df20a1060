package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/magabrotheeeer/buysellpoint/internal/config"
	"github.com/magabrotheeeer/buysellpoint/internal/models"
)

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя
func (f *TestDataFactory) CreateUser(t *testing.T, name, email, role string) bson.ObjectID {
	id, err := insertOne(context.Background(), f.storage.col(ColUsers), &models.User{
		Name:  name,
		Email: email,
		Role:  role,
	})
	require.NoError(t, err)
	return id
}

// CreateProduct создает тестовый товар
func (f *TestDataFactory) CreateProduct(t *testing.T, name string, price float64, available int) bson.ObjectID {
	id, err := insertOne(context.Background(), f.storage.col(ColProduct), &models.Product{
		Name:      name,
		Price:     price,
		Available: available,
	})
	require.NoError(t, err)
	return id
}

// CreateSelection создает тестовую строку корзины
func (f *TestDataFactory) CreateSelection(t *testing.T, email string, productItemID bson.ObjectID, name string, price float64) bson.ObjectID {
	id, err := insertOne(context.Background(), f.storage.col(ColSelectProduct), &models.Selection{
		Email:         email,
		ProductItemID: productItemID,
		Name:          name,
		Price:         price,
	})
	require.NoError(t, err)
	return id
}

// CreatePayment создает тестовую запись платежа
func (f *TestDataFactory) CreatePayment(t *testing.T, email, transactionID string, price float64) bson.ObjectID {
	id, err := insertOne(context.Background(), f.storage.col(ColPayment), &models.Payment{
		Email:         email,
		TransactionID: transactionID,
		Price:         price,
		Date:          time.Now(),
	})
	require.NoError(t, err)
	return id
}

// CountSelections возвращает число строк корзины пользователя
func (f *TestDataFactory) CountSelections(t *testing.T, email string) int {
	selections, err := f.storage.ListSelectionsByEmail(context.Background(), email)
	require.NoError(t, err)
	return len(selections)
}

// ProductAvailable возвращает текущий остаток товара
func (f *TestDataFactory) ProductAvailable(t *testing.T, id bson.ObjectID) int {
	product, err := f.storage.FindProductByID(context.Background(), id)
	require.NoError(t, err)
	return product.Available
}

// setupTestStorage поднимает одноузловую реплику MongoDB в контейнере:
// многодокументные транзакции недоступны на standalone-узле.
func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	mongoContainer, err := tcmongodb.Run(ctx, "mongo:7",
		tcmongodb.WithReplicaSet("rs0"))
	require.NoError(t, err, "failed to start container")

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err, "failed to get connection string")

	// Пробуем подключиться несколько раз с ретраями
	var storage *Storage
	for range 10 {
		storage, err = New(ctx, config.Mongo{
			URI:         uri,
			Database:    "BuySellPointTestDB",
			MaxPoolSize: 10,
		})
		if err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to create storage after retries")

	cleanup := func() {
		if storage != nil {
			_ = storage.Close(ctx)
		}
		if mongoContainer != nil {
			_ = mongoContainer.Terminate(ctx)
		}
	}

	return storage, cleanup
}
