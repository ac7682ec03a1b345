package service

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
)

// backend is an in-memory shop server speaking the envelope protocol.
type backend struct {
	mu       sync.Mutex
	cart     []model.CartItem
	prices   map[int64]float64
	wishlist []int64
	orders   []model.Order
	queries  []string

	failCartGet bool
}

func writeEnvelope(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"success": code < 300,
		"message": "ok",
		"data":    data,
		"status":  http.StatusText(code),
	})
}

func writeFailure(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
		"status":  http.StatusText(code),
	})
}

func idParam(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id
}

func (b *backend) cartLocked() model.Cart {
	items := append([]model.CartItem{}, b.cart...)
	return model.Cart{CartID: 1, Items: items, TotalPrice: model.SumItems(items)}
}

func (b *backend) routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var req model.LoginRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Password != "secret" {
				writeFailure(w, http.StatusUnauthorized, "Bad credentials")
				return
			}
			writeEnvelope(w, http.StatusOK, model.JWTResponse{Token: "tok-" + req.Username, Username: req.Username})
		})
		r.Get("/users/me", func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				writeFailure(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			writeEnvelope(w, http.StatusOK, model.UserResponse{ID: 7, Username: "ann", Email: "ann@shop.test", Roles: []string{"ROLE_USER"}})
		})
		r.Put("/users/profile", func(w http.ResponseWriter, r *http.Request) {
			var req model.UpdateProfileRequest
			json.NewDecoder(r.Body).Decode(&req)
			writeEnvelope(w, http.StatusOK, model.User{ID: 7, Username: "ann", Email: req.Email, FirstName: req.FirstName})
		})

		r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			b.queries = append(b.queries, r.URL.RawQuery)
			b.mu.Unlock()
			page, _ := strconv.Atoi(r.URL.Query().Get("page"))
			size, _ := strconv.Atoi(r.URL.Query().Get("size"))
			writeEnvelope(w, http.StatusOK, model.Page[model.Product]{
				Content:       []model.Product{{ID: 1, Name: "Shoe"}},
				Number:        page,
				Size:          size,
				TotalElements: 21,
			})
		})

		r.Get("/cart", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.failCartGet {
				writeFailure(w, http.StatusInternalServerError, "cart unavailable")
				return
			}
			writeEnvelope(w, http.StatusOK, b.cartLocked())
		})
		r.Post("/cart", func(w http.ResponseWriter, r *http.Request) {
			var req model.CartRequest
			json.NewDecoder(r.Body).Decode(&req)
			b.mu.Lock()
			defer b.mu.Unlock()
			for i := range b.cart {
				if b.cart[i].ProductID == req.ProductID {
					b.cart[i].Quantity += req.Quantity
					writeEnvelope(w, http.StatusOK, b.cartLocked())
					return
				}
			}
			b.cart = append(b.cart, model.CartItem{ProductID: req.ProductID, Quantity: req.Quantity, Price: b.prices[req.ProductID]})
			writeEnvelope(w, http.StatusOK, b.cartLocked())
		})
		r.Put("/cart/products/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := idParam(r, "id")
			qty, _ := strconv.Atoi(r.URL.Query().Get("quantity"))
			b.mu.Lock()
			defer b.mu.Unlock()
			for i := range b.cart {
				if b.cart[i].ProductID == id {
					b.cart[i].Quantity = qty
				}
			}
			writeEnvelope(w, http.StatusOK, b.cartLocked())
		})
		r.Delete("/cart/products/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := idParam(r, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.cart[:0]
			for _, it := range b.cart {
				if it.ProductID != id {
					kept = append(kept, it)
				}
			}
			b.cart = kept
			writeEnvelope(w, http.StatusOK, nil)
		})
		r.Delete("/cart", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			b.cart = nil
			b.mu.Unlock()
			writeEnvelope(w, http.StatusOK, nil)
		})

		r.Get("/wishlist", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			out := []model.WishlistItem{}
			for i, id := range b.wishlist {
				out = append(out, model.WishlistItem{ID: int64(i + 1), Product: model.Product{ID: id}})
			}
			writeEnvelope(w, http.StatusOK, out)
		})
		r.Post("/wishlist/product/{id}", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			b.wishlist = append(b.wishlist, idParam(r, "id"))
			b.mu.Unlock()
			writeEnvelope(w, http.StatusOK, nil)
		})
		r.Delete("/wishlist/product/{id}", func(w http.ResponseWriter, r *http.Request) {
			id := idParam(r, "id")
			b.mu.Lock()
			defer b.mu.Unlock()
			kept := b.wishlist[:0]
			for _, v := range b.wishlist {
				if v != id {
					kept = append(kept, v)
				}
			}
			b.wishlist = kept
			writeEnvelope(w, http.StatusOK, nil)
		})

		r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeEnvelope(w, http.StatusOK, b.orders)
		})
		r.Post("/orders", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			o := model.Order{ID: int64(len(b.orders) + 1), Username: "ann", TotalAmount: model.SumItems(b.cart)}
			for _, it := range b.cart {
				o.OrderItems = append(o.OrderItems, model.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price})
			}
			b.orders = append(b.orders, o)
			b.cart = nil
			writeEnvelope(w, http.StatusCreated, o)
		})

		r.Get("/addresses", func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(w, http.StatusOK, []model.Address{{ID: 1, Label: "Home", FullAddress: "1 Main St", IsDefault: true}})
		})
	})
	return r
}

type harness struct {
	backend *backend
	api     *shopapi.Client
	st      *state.Store
	svc     *Services
}

func newHarness(t *testing.T, opts ...func(*Deps)) *harness {
	t.Helper()
	b := &backend{prices: map[int64]float64{1: 10, 2: 2.5}}
	ts := httptest.NewServer(b.routes())
	t.Cleanup(ts.Close)

	api := shopapi.NewClient(shopapi.Config{BaseURL: ts.URL + "/api/v1", DeviceID: "device-test"})
	st := state.New()
	d := Deps{API: api, State: st, Logger: log.New(io.Discard, "", 0)}
	for _, o := range opts {
		o(&d)
	}
	return &harness{backend: b, api: api, st: st, svc: New(d)}
}
