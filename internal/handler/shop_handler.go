package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"fsanano/shop-client/internal/cart"
	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/orders"
	"fsanano/shop-client/internal/service"
)

type ShopHandler struct {
	svc *service.Services
}

func NewShopHandler(svc *service.Services) *ShopHandler {
	return &ShopHandler{svc: svc}
}

// optionalInt parses an optional non-negative query parameter.
func optionalInt(r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil, false
	}
	return &n, true
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *ShopHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	page, ok := optionalInt(r, "page")
	if !ok {
		writeError(w, http.StatusBadRequest, "page must be a non-negative integer")
		return
	}
	limit, ok := optionalInt(r, "limit")
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return
	}

	q := r.URL.Query()
	if term := strings.TrimSpace(q.Get("search")); term != "" {
		result, err := h.svc.Search.Search(r.Context(), term, limit)
		if err != nil {
			writeUpstreamError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
		return
	}

	params := service.ProductParams{Page: page, Limit: limit}
	if c := q.Get("category"); c != "" {
		params.Category = &c
	}
	if s := q.Get("sort"); s != "" {
		params.SortBy = &s
	}
	switch o := model.SortOrder(q.Get("order")); o {
	case "":
	case model.SortAsc, model.SortDesc:
		params.Order = &o
	default:
		writeError(w, http.StatusBadRequest, "order must be asc or desc")
		return
	}

	result, err := h.svc.Products.Fetch(r.Context(), params)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *ShopHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	p, err := h.svc.Products.FetchByID(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type cartResponse struct {
	Items    []model.CartItem `json:"items"`
	Selected []int64          `json:"selected"`
	Summary  cart.Summary     `json:"summary"`
}

func (h *ShopHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sel := cart.NewSelection()
	raw, explicit := r.URL.Query()["selected"]
	if explicit {
		for _, part := range strings.Split(strings.Join(raw, ","), ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "selected must be a comma separated list of product ids")
				return
			}
			sel.Add(id)
		}
	}

	c, err := h.svc.Cart.Fetch(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	items := c.Items
	if items == nil {
		items = []model.CartItem{}
	}
	if !explicit {
		sel.SelectAll(items)
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Items:    items,
		Selected: sel.IDs(),
		Summary:  cart.Summarize(items, sel),
	})
}

func (h *ShopHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	tab := orders.Tab(r.URL.Query().Get("tab"))
	switch tab {
	case "":
		tab = orders.TabAll
	case orders.TabAll, orders.TabPending, orders.TabDelivered, orders.TabCancelled:
	default:
		writeError(w, http.StatusBadRequest, "tab must be one of all, pending, delivered, cancelled")
		return
	}
	list, err := h.svc.Orders.List(r.Context(), tab)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders.Views(list))
}

func (h *ShopHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	o, err := h.svc.Orders.Get(r.Context(), id)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *ShopHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Search.Recent())
}

func (h *ShopHandler) ClearRecent(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Search.ClearRecent(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, service.Message(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ShopHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.svc.Profile.Overview(r.Context())
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ov)
}
