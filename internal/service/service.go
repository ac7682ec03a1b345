// Package service holds the controllers the CLI and the gateway drive.
//
// Each controller makes the API call, writes the result into the shared
// state.Store and turns failures into an *Error carrying the message to show
// the user. A failed call leaves the state untouched.
package service

import (
	"errors"
	"log"

	"fsanano/shop-client/internal/recent"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
)

// Error is a failure ready to be shown to the user.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Message returns the user-facing text for err.
func Message(err error) string {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}
	return err.Error()
}

// fail logs err and wraps it with the server message or fallback.
func fail(logger *log.Logger, fallback string, err error) error {
	msg := shopapi.ErrorMessage(err, fallback)
	logger.Printf("%s: %v", fallback, err)
	return &Error{Message: msg, Err: err}
}

type Deps struct {
	API        *shopapi.Client
	State      *state.Store
	Sessions   SessionStore
	Passphrase string
	Recent     *recent.List
	Logger     *log.Logger
}

// Services bundles every controller over one client and one store.
type Services struct {
	Auth      *AuthService
	Cart      *CartService
	Products  *ProductService
	Search    *SearchService
	Wishlist  *WishlistService
	Orders    *OrderService
	Addresses *AddressService
	Profile   *ProfileService
	Comments  *CommentService
	Category  *CategoryService
}

func New(d Deps) *Services {
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	cart := NewCartService(d.API, d.State, d.Logger)
	products := NewProductService(d.API, d.State, d.Logger)
	return &Services{
		Auth:      NewAuthService(d.API, d.State, d.Sessions, d.Passphrase, d.Logger),
		Cart:      cart,
		Products:  products,
		Search:    NewSearchService(products, d.Recent, d.Logger),
		Wishlist:  NewWishlistService(d.API, d.Logger),
		Orders:    NewOrderService(d.API, d.State, cart, d.Logger),
		Addresses: NewAddressService(d.API, d.Logger),
		Profile:   NewProfileService(d.API, d.State, d.Logger),
		Comments:  NewCommentService(d.API, d.Logger),
		Category:  NewCategoryService(d.API, d.Logger),
	}
}
