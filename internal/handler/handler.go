package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fsanano/shop-client/internal/service"
)

type Handler struct {
	router *chi.Mux
	shop   *ShopHandler
}

func NewHandler(svc *service.Services) *Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	h := &Handler{
		router: router,
		shop:   NewShopHandler(svc),
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		r.Get("/products", h.shop.GetProducts)
		r.Get("/products/{id}", h.shop.GetProduct)
		r.Get("/cart", h.shop.GetCart)
		r.Get("/orders", h.shop.GetOrders)
		r.Get("/orders/{id}", h.shop.GetOrder)

		r.Get("/search/recent", h.shop.GetRecent)
		r.Delete("/search/recent", h.shop.ClearRecent)

		r.Get("/profile/overview", h.shop.GetOverview)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
