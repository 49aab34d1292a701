package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vasiliy-maslov/shop-backend/internal/auth"
)

// NewRouter wires the API under the /api prefix. Публичные и защищённые
// маршруты разнесены по группам: защищённые проходят через RequireAuth.
func NewRouter(authHandler *AuthHandler, productHandler *ProductHandler, orderHandler *OrderHandler, authSvc auth.Service) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", authHandler.handleSignup)
		r.Post("/login", authHandler.handleLogin)

		r.Get("/products", productHandler.handleListProducts)
		r.Get("/products/{id}", productHandler.handleGetProduct)
		r.Get("/categories", productHandler.handleListCategories)

		r.Get("/orders", orderHandler.handleListOrders)
		r.Get("/orders/status/{id}", orderHandler.handleListOrdersByStatus)
		r.Get("/status", orderHandler.handleListStatuses)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(authSvc))

			r.Get("/me", authHandler.handleMe)
			r.Post("/products", productHandler.handleCreateProduct)
			r.Put("/products/{id}", productHandler.handleUpdateProduct)
			r.Post("/orders", orderHandler.handleCreateOrder)
			r.Put("/orders/{id}", orderHandler.handleUpdateOrder)
		})
	})

	return r
}
