package backoffice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	loginhandler "github.com/magabrotheeeer/backoffice/internal/http/handlers/auth/login"
	registerhandler "github.com/magabrotheeeer/backoffice/internal/http/handlers/auth/register"
	customercreate "github.com/magabrotheeeer/backoffice/internal/http/handlers/customer/create"
	customerlist "github.com/magabrotheeeer/backoffice/internal/http/handlers/customer/list"
	"github.com/magabrotheeeer/backoffice/internal/http/handlers/health"
	lineitemcreate "github.com/magabrotheeeer/backoffice/internal/http/handlers/lineitem/create"
	lineitemlist "github.com/magabrotheeeer/backoffice/internal/http/handlers/lineitem/list"
	orderlist "github.com/magabrotheeeer/backoffice/internal/http/handlers/order/list"
	productcreate "github.com/magabrotheeeer/backoffice/internal/http/handlers/product/create"
	productlist "github.com/magabrotheeeer/backoffice/internal/http/handlers/product/list"
	"github.com/magabrotheeeer/backoffice/internal/http/middlewarectx"
	"github.com/magabrotheeeer/backoffice/internal/models"
	authservice "github.com/magabrotheeeer/backoffice/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/backoffice/internal/services/catalog"
	customerservice "github.com/magabrotheeeer/backoffice/internal/services/customer"
	orderservice "github.com/magabrotheeeer/backoffice/internal/services/order"
)

// RegisterRoutes настраивает все маршруты приложения: публичные,
// защищенные токеном с проверкой роли и служебные.
func RegisterRoutes(r *chi.Mux, logger *slog.Logger, verifier authservice.Verifier,
	auth *authservice.Service,
	catalog *catalogservice.Service,
	customers *customerservice.Service,
	orders *orderservice.Service,
) {
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.URLFormat)

	r.Route("/api/v1", func(r chi.Router) {
		// Публичные маршруты.
		r.Post("/login", loginhandler.New(logger, auth).ServeHTTP)
		r.Post("/register", registerhandler.New(logger, auth).ServeHTTP)
		r.Get("/products", productlist.New(logger, catalog).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Маршруты, требующие токен и роль.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.AuthMiddleware(verifier, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.With(middlewarectx.RequireRoles(logger, models.RoleAdministrator)).
				Post("/products", productcreate.New(logger, catalog).ServeHTTP)

			r.With(middlewarectx.RequireRoles(logger, models.RoleEmployee, models.RoleAdministrator)).
				Get("/customers", customerlist.New(logger, customers).ServeHTTP)
			r.With(middlewarectx.RequireRoles(logger, models.RoleEmployee, models.RoleAdministrator)).
				Post("/customers", customercreate.New(logger, customers).ServeHTTP)

			r.With(middlewarectx.RequireRoles(logger,
				models.RoleCustomer, models.RoleEmployee, models.RoleAdministrator)).
				Get("/orders", orderlist.New(logger, orders).ServeHTTP)

			r.With(middlewarectx.RequireRoles(logger, models.RoleEmployee, models.RoleAdministrator)).
				Get("/order-line-items", lineitemlist.New(logger, orders).ServeHTTP)
			r.With(middlewarectx.RequireRoles(logger, models.RoleEmployee, models.RoleAdministrator)).
				Post("/order-line-items", lineitemcreate.New(logger, orders).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
