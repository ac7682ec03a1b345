package service

import (
	"context"
	"log"
	"strings"

	"fsanano/shop-client/internal/cart"
	"fsanano/shop-client/internal/checkout"
	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/orders"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
)

type OrderService struct {
	api  *shopapi.Client
	st   *state.Store
	cart *CartService
	log  *log.Logger
}

func NewOrderService(api *shopapi.Client, st *state.Store, cart *CartService, logger *log.Logger) *OrderService {
	return &OrderService{api: api, st: st, cart: cart, log: logger}
}

// List returns the orders on tab, in server order.
func (s *OrderService) List(ctx context.Context, tab orders.Tab) ([]model.Order, error) {
	list, err := s.api.GetOrders(ctx)
	if err != nil {
		return nil, fail(s.log, "Failed to fetch orders", err)
	}
	return orders.Filter(list, tab), nil
}

func (s *OrderService) Get(ctx context.Context, id int64) (model.Order, error) {
	o, err := s.api.GetOrder(ctx, id)
	if err != nil {
		return model.Order{}, fail(s.log, "Failed to load order details", err)
	}
	return o, nil
}

func (s *OrderService) Cancel(ctx context.Context, id int64) error {
	if err := s.api.CancelOrder(ctx, id); err != nil {
		return fail(s.log, "Failed to cancel order", err)
	}
	return nil
}

// PlaceRequest describes a checkout. Form may be nil when the shipping
// address is managed elsewhere. A nil Selected means every cart line.
type PlaceRequest struct {
	ShippingMethod string
	Form           *checkout.ShippingForm
	Selected       []int64
}

// Quote is what the confirmation step shows before an order is placed.
type Quote struct {
	Items    []model.CartItem        `json:"items"`
	Method   checkout.ShippingMethod `json:"method"`
	Subtotal float64                 `json:"subtotal"`
	Total    float64                 `json:"total"`
}

// Quote prices the current cart with the chosen shipping method.
func (s *OrderService) Quote(req PlaceRequest) (Quote, error) {
	auth := s.st.Auth()
	c := s.st.Cart()
	if err := checkout.Ready(auth.IsAuthenticated, len(c.Items)); err != nil {
		return Quote{}, checkoutError(err)
	}
	if req.Form != nil {
		if err := req.Form.Validate(); err != nil {
			return Quote{}, checkoutError(err)
		}
	}
	items := c.Items
	if req.Selected != nil {
		sel := cart.NewSelection(req.Selected...)
		items = make([]model.CartItem, 0, len(c.Items))
		for _, it := range c.Items {
			if sel.Has(it.ProductID) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			return Quote{}, checkoutError(checkout.ErrNoSelection)
		}
	}
	method, ok := checkout.MethodByID(req.ShippingMethod)
	if !ok {
		method, _ = checkout.MethodByID(checkout.DefaultMethod)
	}
	subtotal := model.SumItems(items)
	return Quote{
		Items:    items,
		Method:   method,
		Subtotal: subtotal,
		Total:    checkout.Total(subtotal, method.ID),
	}, nil
}

// checkoutError wraps a checkout sentinel with its sentence-case message.
func checkoutError(err error) error {
	msg := err.Error()
	if msg != "" {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return &Error{Message: msg, Err: err}
}

// Place creates the order from the server-side cart and refreshes the cart.
// The backend always orders every line, so a selection that leaves lines out
// is rejected.
func (s *OrderService) Place(ctx context.Context, req PlaceRequest) (model.Order, error) {
	q, err := s.Quote(req)
	if err != nil {
		return model.Order{}, err
	}
	if len(q.Items) < len(s.st.Cart().Items) {
		return model.Order{}, checkoutError(checkout.ErrPartialSelection)
	}
	o, err := s.api.CreateOrder(ctx)
	if err != nil {
		return model.Order{}, fail(s.log, "Failed to create order", err)
	}
	if _, err := s.cart.Fetch(ctx); err != nil {
		s.log.Printf("Order %d placed but cart refresh failed: %v", o.ID, err)
	}
	return o, nil
}
