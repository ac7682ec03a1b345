package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fsanano/shop-client/internal/handler"
	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/orders"
	"fsanano/shop-client/internal/recent"
	"fsanano/shop-client/internal/service"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
	"fsanano/shop-client/internal/store"
)

func envelope(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]any{"success": code < 300, "data": data})
}

func upstream() chi.Router {
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", func(w http.ResponseWriter, r *http.Request) {
			name := "all"
			if s := r.URL.Query().Get("search"); s != "" {
				name = "match:" + s
			}
			envelope(w, http.StatusOK, model.Page[model.Product]{
				Content:       []model.Product{{ID: 1, Name: name}},
				Size:          10,
				TotalElements: 1,
			})
		})
		r.Get("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Product not found"})
		})
		r.Get("/cart", func(w http.ResponseWriter, r *http.Request) {
			envelope(w, http.StatusOK, model.Cart{CartID: 1, Items: []model.CartItem{
				{ProductID: 1, Quantity: 2, Price: 10},
				{ProductID: 2, Quantity: 1, Price: 5},
			}, TotalPrice: 25})
		})
		r.Get("/orders", func(w http.ResponseWriter, r *http.Request) {
			envelope(w, http.StatusOK, []model.Order{
				{ID: 1, TotalAmount: 20, OrderItems: []model.OrderItem{{Quantity: 2}}},
				{ID: 2, TotalAmount: 5, TrackingHistory: []model.OrderTracking{{Status: "delivered"}}},
			})
		})
	})
	return r
}

func newGateway(t *testing.T) (http.Handler, *recent.List) {
	t.Helper()
	ts := httptest.NewServer(upstream())
	t.Cleanup(ts.Close)

	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	list := recent.New(fs, 6)

	svc := service.New(service.Deps{
		API:    shopapi.NewClient(shopapi.Config{BaseURL: ts.URL + "/api/v1/"}),
		State:  state.New(),
		Recent: list,
		Logger: log.New(io.Discard, "", 0),
	})
	return handler.NewHandler(svc), list
}

func get(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil).WithContext(context.Background())
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	h, _ := newGateway(t)
	w := get(t, h, http.MethodGet, "/v1/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestGetProducts_SearchRecordsRecent(t *testing.T) {
	h, list := newGateway(t)

	w := get(t, h, http.MethodGet, "/v1/products?search=boots")
	require.Equal(t, http.StatusOK, w.Code)
	var page model.ProductPage
	require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
	require.Len(t, page.Products, 1)
	assert.Equal(t, "match:boots", page.Products[0].Name)
	assert.Equal(t, []string{"boots"}, list.Terms())

	w = get(t, h, http.MethodGet, "/v1/search/recent")
	assert.JSONEq(t, `["boots"]`, w.Body.String())

	w = get(t, h, http.MethodDelete, "/v1/search/recent")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, list.Terms())
}

func TestGetProducts_BadInput(t *testing.T) {
	h, _ := newGateway(t)

	for _, target := range []string{
		"/v1/products?page=x",
		"/v1/products?limit=-1",
		"/v1/products?order=sideways",
		"/v1/products/abc",
	} {
		w := get(t, h, http.MethodGet, target)
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), `"error"`, target)
	}
}

func TestGetProduct_UpstreamFailure(t *testing.T) {
	h, _ := newGateway(t)
	w := get(t, h, http.MethodGet, "/v1/products/9")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, w.Body.String())
}

func TestGetCart_Selection(t *testing.T) {
	h, _ := newGateway(t)

	var body struct {
		Selected []int64 `json:"selected"`
		Summary  struct {
			Subtotal float64 `json:"subtotal"`
			Total    float64 `json:"total"`
		} `json:"summary"`
	}

	w := get(t, h, http.MethodGet, "/v1/cart")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []int64{1, 2}, body.Selected)
	assert.InDelta(t, 25, body.Summary.Total, 0.001)

	w = get(t, h, http.MethodGet, "/v1/cart?selected=2")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []int64{2}, body.Selected)
	assert.InDelta(t, 5, body.Summary.Subtotal, 0.001)

	for _, target := range []string{"/v1/cart?selected=1,1", "/v1/cart?selected=1&selected=1"} {
		w = get(t, h, http.MethodGet, target)
		require.Equal(t, http.StatusOK, w.Code, target)
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, []int64{1}, body.Selected, target)
		assert.InDelta(t, 20, body.Summary.Subtotal, 0.001, target)
	}

	w = get(t, h, http.MethodGet, "/v1/cart?selected=1,x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrders_Tabs(t *testing.T) {
	h, _ := newGateway(t)

	var views []orders.View
	w := get(t, h, http.MethodGet, "/v1/orders?tab=pending")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.Equal(t, "IK0000000001", views[0].TrackingNumber)
	assert.Equal(t, 2, views[0].Quantity)
	assert.True(t, views[0].CanCancel)

	w = get(t, h, http.MethodGet, "/v1/orders?tab=delivered")
	require.NoError(t, json.NewDecoder(w.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.Equal(t, orders.StatusDelivered, views[0].Status)

	w = get(t, h, http.MethodGet, "/v1/orders?tab=lost")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
