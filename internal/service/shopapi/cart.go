package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"fsanano/shop-client/internal/model"
)

func (c *Client) GetCart(ctx context.Context) (model.Cart, error) {
	return call[model.Cart](ctx, c, request{method: http.MethodGet, path: "cart"})
}

func (c *Client) AddToCart(ctx context.Context, productID int64, quantity int) (model.Cart, error) {
	return call[model.Cart](ctx, c, request{
		method: http.MethodPost,
		path:   "cart",
		body:   model.CartRequest{ProductID: productID, Quantity: quantity},
	})
}

func (c *Client) UpdateCartItem(ctx context.Context, productID int64, quantity int) (model.Cart, error) {
	return call[model.Cart](ctx, c, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("cart/products/%d", productID),
		query:  url.Values{"quantity": {strconv.Itoa(quantity)}},
	})
}

func (c *Client) RemoveFromCart(ctx context.Context, productID int64) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: fmt.Sprintf("cart/products/%d", productID)})
}

func (c *Client) ClearCart(ctx context.Context) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: "cart"})
}
