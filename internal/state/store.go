// Package state holds the client's in-memory application state.
//
// The state is split into the auth, cart and product slices. Each slice is
// written only through the setter methods below, which take the store's lock,
// and read through Snapshot, which returns deep copies.
package state

import (
	"sync"

	"fsanano/shop-client/internal/model"
)

type AuthState struct {
	User            *model.User `json:"user"`
	Token           string      `json:"-"`
	IsAuthenticated bool        `json:"isAuthenticated"`
	IsLoading       bool        `json:"isLoading"`
}

type CartState struct {
	Cart      *model.Cart      `json:"cart"`
	Items     []model.CartItem `json:"items"`
	Total     float64          `json:"total"`
	IsLoading bool             `json:"isLoading"`
}

type ProductState struct {
	Products        []model.Product      `json:"products"`
	SelectedProduct *model.Product       `json:"selectedProduct"`
	IsLoading       bool                 `json:"isLoading"`
	Error           string               `json:"error,omitempty"`
	Filters         model.ProductFilters `json:"filters"`
	Pagination      model.Pagination     `json:"pagination"`
}

// Snapshot is a copy of the whole state at one instant.
type Snapshot struct {
	Auth    AuthState    `json:"auth"`
	Cart    CartState    `json:"cart"`
	Product ProductState `json:"product"`
}

type Store struct {
	mu      sync.RWMutex
	auth    AuthState
	cart    CartState
	product ProductState
}

func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.auth = AuthState{}
	s.cart = CartState{Items: []model.CartItem{}}
	s.product = ProductState{
		Products:   []model.Product{},
		Pagination: model.Pagination{Page: 0, Limit: 10},
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Auth:    s.authCopy(),
		Cart:    s.cartCopy(),
		Product: s.productCopy(),
	}
}

func (s *Store) Auth() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authCopy()
}

func (s *Store) Cart() CartState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartCopy()
}

func (s *Store) Product() ProductState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.productCopy()
}

func (s *Store) authCopy() AuthState {
	out := s.auth
	if s.auth.User != nil {
		u := *s.auth.User
		u.Roles = append([]model.Role(nil), s.auth.User.Roles...)
		out.User = &u
	}
	return out
}

func (s *Store) cartCopy() CartState {
	out := s.cart
	out.Items = append([]model.CartItem{}, s.cart.Items...)
	if s.cart.Cart != nil {
		c := *s.cart.Cart
		c.Items = append([]model.CartItem{}, s.cart.Cart.Items...)
		out.Cart = &c
	}
	return out
}

func (s *Store) productCopy() ProductState {
	out := s.product
	out.Products = append([]model.Product{}, s.product.Products...)
	if s.product.SelectedProduct != nil {
		p := *s.product.SelectedProduct
		out.SelectedProduct = &p
	}
	return out
}
