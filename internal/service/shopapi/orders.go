package shopapi

import (
	"context"
	"fmt"
	"net/http"

	"fsanano/shop-client/internal/model"
)

// CreateOrder turns the server-side cart into an order.
func (c *Client) CreateOrder(ctx context.Context) (model.Order, error) {
	return call[model.Order](ctx, c, request{method: http.MethodPost, path: "orders"})
}

func (c *Client) GetOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := call[[]model.Order](ctx, c, request{method: http.MethodGet, path: "orders"})
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (model.Order, error) {
	return call[model.Order](ctx, c, request{method: http.MethodGet, path: fmt.Sprintf("orders/%d", id)})
}

func (c *Client) CancelOrder(ctx context.Context, id int64) error {
	return exec(ctx, c, request{method: http.MethodPut, path: fmt.Sprintf("orders/%d/cancel", id)})
}
