// Package buysellpoint предоставляет маршруты для основного приложения.
package buysellpoint

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/buysellpoint/internal/http/handlers/health"
	paymentcreate "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/payment/paymentcreate"
	paymentintent "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/payment/paymentintent"
	paymentlist "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/payment/paymentlist"
	productcreate "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/product/read"
	productremove "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/product/remove"
	productupdate "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/product/update"
	selectioncreate "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/selection/create"
	selectionlist "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/selection/list"
	selectionremove "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/selection/remove"
	tokenissue "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/token/issue"
	usercreate "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/user/create"
	userlist "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/user/list"
	userpromote "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/user/promote"
	userremove "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/user/remove"
	userroleflag "github.com/magabrotheeeer/buysellpoint/internal/http/handlers/user/roleflag"
	"github.com/magabrotheeeer/buysellpoint/internal/http/middlewarectx"
	jwtlib "github.com/magabrotheeeer/buysellpoint/internal/lib/jwt"
	"github.com/magabrotheeeer/buysellpoint/internal/models"
	"github.com/magabrotheeeer/buysellpoint/internal/paymentprovider"
	paymentservice "github.com/magabrotheeeer/buysellpoint/internal/services/payment"
	productservice "github.com/magabrotheeeer/buysellpoint/internal/services/product"
	selectionservice "github.com/magabrotheeeer/buysellpoint/internal/services/selection"
	userservice "github.com/magabrotheeeer/buysellpoint/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, maker jwtlib.Maker,
	userService *userservice.Service,
	productService *productservice.Service,
	selectionService *selectionservice.Service,
	paymentService *paymentservice.Service,
	providerClient *paymentprovider.Client,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Get("/", health.New(logger).ServeHTTP)
	r.Post("/jwt", tokenissue.New(logger, maker).ServeHTTP)

	r.Get("/users", userlist.New(logger, userService).ServeHTTP)
	r.Post("/users", usercreate.New(logger, userService).ServeHTTP)
	r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
	r.Patch("/users/admin/{id}", userpromote.New(logger, userService, models.RoleAdmin).ServeHTTP)
	r.Patch("/users/seller/{id}", userpromote.New(logger, userService, models.RoleSeller).ServeHTTP)

	r.Get("/product", productlist.New(logger, productService).ServeHTTP)
	r.Get("/product/{id}", productread.New(logger, productService).ServeHTTP)
	r.Post("/product", productcreate.New(logger, productService).ServeHTTP)
	r.Patch("/product/{id}", productupdate.New(logger, productService).ServeHTTP)
	r.Delete("/product/{id}", productremove.New(logger, productService).ServeHTTP)

	r.Post("/selectedProduct", selectioncreate.New(logger, selectionService).ServeHTTP)
	r.Delete("/selectedProduct/{id}", selectionremove.New(logger, selectionService).ServeHTTP)

	r.Get("/payments", paymentlist.New(logger, paymentService).ServeHTTP)

	// Группа с JWT аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(maker, logger))
		r.Get("/users/admin/{email}", userroleflag.New(logger, userService, models.RoleAdmin).ServeHTTP)
		r.Get("/users/seller/{email}", userroleflag.New(logger, userService, models.RoleSeller).ServeHTTP)
		r.Get("/users/user/{email}", userroleflag.New(logger, userService, models.RoleUser).ServeHTTP)
		r.Get("/selectedProduct", selectionlist.New(logger, selectionService).ServeHTTP)
		r.Post("/payments", paymentcreate.New(logger, paymentService).ServeHTTP)
		r.Post("/create-payment-intent", paymentintent.New(logger, providerClient).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
