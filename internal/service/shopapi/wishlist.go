package shopapi

import (
	"context"
	"fmt"
	"net/http"

	"fsanano/shop-client/internal/model"
)

func (c *Client) GetWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	out, err := call[[]model.WishlistItem](ctx, c, request{method: http.MethodGet, path: "wishlist"})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.WishlistItem{}
	}
	return out, nil
}

func (c *Client) AddToWishlist(ctx context.Context, productID int64) error {
	return exec(ctx, c, request{method: http.MethodPost, path: fmt.Sprintf("wishlist/product/%d", productID)})
}

func (c *Client) RemoveFromWishlist(ctx context.Context, productID int64) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: fmt.Sprintf("wishlist/product/%d", productID)})
}
