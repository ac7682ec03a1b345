package shopapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"fsanano/shop-client/internal/model"
)

const defaultPageSize = 10

func (c *Client) GetProducts(ctx context.Context, q model.ProductQuery) (model.ProductPage, error) {
	size := q.Limit
	if size <= 0 {
		size = defaultPageSize
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("size", strconv.Itoa(size))
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.SortBy != "" {
		params.Set("sortBy", q.SortBy)
	}
	if q.Order != "" {
		params.Set("order", string(q.Order))
	}

	page, err := call[*model.Page[model.Product]](ctx, c, request{method: http.MethodGet, path: "products", query: params})
	if err != nil {
		return model.ProductPage{}, err
	}

	out := model.ProductPage{Products: []model.Product{}, Limit: size}
	if page == nil {
		return out, nil
	}
	if page.Content != nil {
		out.Products = page.Content
	}
	out.Page = page.Number
	if page.Size > 0 {
		out.Limit = page.Size
	}
	out.Total = page.TotalElements
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	return call[model.Product](ctx, c, request{method: http.MethodGet, path: fmt.Sprintf("products/%d", id)})
}

// GetCategories serves from a short-lived cache; categories rarely change.
func (c *Client) GetCategories(ctx context.Context) ([]model.Category, error) {
	c.cacheMu.RLock()
	if c.categories.items != nil && time.Now().Before(c.categories.expiry) {
		items := c.categories.items
		c.cacheMu.RUnlock()
		return items, nil
	}
	c.cacheMu.RUnlock()

	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	// Double check logic
	if c.categories.items != nil && time.Now().Before(c.categories.expiry) {
		return c.categories.items, nil
	}

	items, err := call[[]model.Category](ctx, c, request{method: http.MethodGet, path: "categories"})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Category{}
	}
	c.categories = cachedCategories{items: items, expiry: time.Now().Add(categoryTTL)}
	return items, nil
}

func (c *Client) GetCategory(ctx context.Context, id int64) (model.Category, error) {
	return call[model.Category](ctx, c, request{method: http.MethodGet, path: fmt.Sprintf("categories/%d", id)})
}
