// Package buysellpoint собирает приложение: хранилище, сервисы, клиент
// процессинга и HTTP-сервер с маршрутами.
package buysellpoint

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/buysellpoint/internal/config"
	jwtlib "github.com/magabrotheeeer/buysellpoint/internal/lib/jwt"
	"github.com/magabrotheeeer/buysellpoint/internal/paymentprovider"
	paymentservice "github.com/magabrotheeeer/buysellpoint/internal/services/payment"
	productservice "github.com/magabrotheeeer/buysellpoint/internal/services/product"
	selectionservice "github.com/magabrotheeeer/buysellpoint/internal/services/selection"
	userservice "github.com/magabrotheeeer/buysellpoint/internal/services/user"
	"github.com/magabrotheeeer/buysellpoint/internal/storage/mongodb"
)

// App — собранное приложение с HTTP-сервером и хэндлом хранилища.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *mongodb.Storage
}

// New создаёт приложение: подключает хранилище и явно передаёт его
// сервисам через конструкторы, без глобального состояния.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := mongodb.New(ctx, cfg.Mongo)
	if err != nil {
		return nil, err
	}

	maker := jwtlib.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.Stripe.SecretKey)

	userService := userservice.New(db, logger)
	productService := productservice.New(db, logger)
	selectionService := selectionservice.New(db, logger)
	paymentService := paymentservice.New(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, maker,
		userService, productService, selectionService, paymentService, providerClient)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его по отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.Close(timeoutCtx); closeErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", closeErr))
		}
		return err
	}
}
