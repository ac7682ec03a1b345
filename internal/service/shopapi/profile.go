package shopapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"fsanano/shop-client/internal/model"
)

func (c *Client) GetProfile(ctx context.Context) (model.User, error) {
	u, err := call[model.UserResponse](ctx, c, request{method: http.MethodGet, path: "users/me"})
	if err != nil {
		return model.User{}, err
	}
	return u.ToUser(), nil
}

func (c *Client) UpdateProfile(ctx context.Context, req model.UpdateProfileRequest) (model.User, error) {
	return call[model.User](ctx, c, request{method: http.MethodPut, path: "users/profile", body: req})
}

// UpdateAvatar uploads the image as multipart field "file" and returns its URL.
func (c *Client) UpdateAvatar(ctx context.Context, filename string, image io.Reader) (string, error) {
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("read avatar: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	out, err := call[struct {
		ImageURL string `json:"imageUrl"`
	}](ctx, c, request{
		method:      http.MethodPost,
		path:        "users/profile/avatar",
		raw:         buf,
		contentType: mw.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}
	return out.ImageURL, nil
}
