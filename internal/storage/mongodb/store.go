// Package mongodb реализует хранилище магазина поверх MongoDB.
//
// Используется mongo-go-driver v2; документы сериализуются через bson-теги
// доменных моделей. Размер пула соединений ограничен настройкой конфига,
// хэндл хранилища создаётся явно и передаётся сервисам через конструкторы.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/magabrotheeeer/buysellpoint/internal/config"
)

// Имена коллекций.
const (
	ColUsers         = "users"
	ColProduct       = "product"
	ColSelectProduct = "selectProduct"
	ColPayment       = "payment"
)

// ErrNotFound возвращается при отсутствии документа с запрошенным идентификатором.
var ErrNotFound = errors.New("document not found")

// Storage — хэндл хранилища магазина.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
}

// New подключается к MongoDB и возвращает хэндл хранилища.
// Пул соединений ограничен cfg.MaxPoolSize; учётные данные применяются,
// только если заданы в конфиге.
func New(ctx context.Context, cfg config.Mongo) (*Storage, error) {
	const op = "storage.mongodb.New"

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(cfg.MaxPoolSize)
	if cfg.User != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.User,
			Password: cfg.Password,
		})
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("%s: ping failed: %w", op, err)
	}

	s := &Storage{
		client: client,
		db:     client.Database(cfg.Database),
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("%s: ensure indexes: %w", op, err)
	}
	return s, nil
}

// Close разрывает соединение с MongoDB.
func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) col(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// ensureIndexes создаёт индексы под фильтры по равенству.
// Индекс по users.email не уникальный: уникальность email проверяется
// перед вставкой, а не навязывается хранилищем.
func (s *Storage) ensureIndexes(ctx context.Context) error {
	indexes := []struct {
		col  string
		keys bson.D
	}{
		{ColUsers, bson.D{{Key: "email", Value: 1}}},
		{ColSelectProduct, bson.D{{Key: "email", Value: 1}}},
		{ColPayment, bson.D{{Key: "email", Value: 1}}},
	}
	for _, idx := range indexes {
		_, err := s.col(idx.col).Indexes().CreateOne(ctx, mongo.IndexModel{Keys: idx.keys})
		if err != nil {
			return err
		}
	}
	return nil
}
