package shopapi

import (
	"context"
	"fmt"
	"net/http"

	"fsanano/shop-client/internal/model"
)

func (c *Client) GetAddresses(ctx context.Context) ([]model.Address, error) {
	out, err := call[[]model.Address](ctx, c, request{method: http.MethodGet, path: "addresses"})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Address{}
	}
	return out, nil
}

func (c *Client) GetAddress(ctx context.Context, id int64) (model.Address, error) {
	return call[model.Address](ctx, c, request{method: http.MethodGet, path: fmt.Sprintf("addresses/%d", id)})
}

func (c *Client) CreateAddress(ctx context.Context, req model.AddressRequest) (model.Address, error) {
	return call[model.Address](ctx, c, request{method: http.MethodPost, path: "addresses", body: req})
}

func (c *Client) UpdateAddress(ctx context.Context, id int64, req model.AddressRequest) (model.Address, error) {
	return call[model.Address](ctx, c, request{method: http.MethodPut, path: fmt.Sprintf("addresses/%d", id), body: req})
}

func (c *Client) DeleteAddress(ctx context.Context, id int64) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: fmt.Sprintf("addresses/%d", id)})
}

func (c *Client) SetDefaultAddress(ctx context.Context, id int64) (model.Address, error) {
	return call[model.Address](ctx, c, request{method: http.MethodPut, path: fmt.Sprintf("addresses/%d/set-default", id)})
}
