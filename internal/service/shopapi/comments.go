package shopapi

import (
	"context"
	"fmt"
	"net/http"

	"fsanano/shop-client/internal/model"
)

func (c *Client) GetComments(ctx context.Context, productID int64) ([]model.Comment, error) {
	out, err := call[[]model.Comment](ctx, c, request{method: http.MethodGet, path: fmt.Sprintf("comments/product/%d", productID)})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Comment{}
	}
	return out, nil
}

func (c *Client) AddComment(ctx context.Context, productID int64, content string) (model.Comment, error) {
	return call[model.Comment](ctx, c, request{
		method: http.MethodPost,
		path:   "comments",
		body:   model.CommentRequest{ProductID: productID, Content: content},
	})
}

func (c *Client) DeleteComment(ctx context.Context, commentID int64) error {
	return exec(ctx, c, request{method: http.MethodDelete, path: fmt.Sprintf("comments/%d", commentID)})
}
