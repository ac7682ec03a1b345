package service

import (
	"context"
	"log"

	"fsanano/shop-client/internal/cart"
	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/service/shopapi"
	"fsanano/shop-client/internal/state"
)

type CartService struct {
	api *shopapi.Client
	st  *state.Store
	log *log.Logger
}

func NewCartService(api *shopapi.Client, st *state.Store, logger *log.Logger) *CartService {
	return &CartService{api: api, st: st, log: logger}
}

func (s *CartService) Fetch(ctx context.Context) (model.Cart, error) {
	s.st.SetCartLoading(true)
	defer s.st.SetCartLoading(false)

	c, err := s.api.GetCart(ctx)
	if err != nil {
		return model.Cart{}, fail(s.log, "Failed to fetch cart", err)
	}
	s.st.SetCart(c)
	return c, nil
}

func (s *CartService) Add(ctx context.Context, productID int64, quantity int) (model.Cart, error) {
	s.st.SetCartLoading(true)
	defer s.st.SetCartLoading(false)

	c, err := s.api.AddToCart(ctx, productID, quantity)
	if err != nil {
		return model.Cart{}, fail(s.log, "Failed to add to cart", err)
	}
	s.st.SetCart(c)
	return c, nil
}

func (s *CartService) Update(ctx context.Context, productID int64, quantity int) (model.Cart, error) {
	s.st.SetCartLoading(true)
	defer s.st.SetCartLoading(false)

	c, err := s.api.UpdateCartItem(ctx, productID, quantity)
	if err != nil {
		return model.Cart{}, fail(s.log, "Failed to update quantity", err)
	}
	s.st.SetCart(c)
	return c, nil
}

// Remove deletes the line, then refetches so the slice mirrors the server.
// If the refetch fails the line is dropped locally.
func (s *CartService) Remove(ctx context.Context, productID int64) error {
	s.st.SetCartLoading(true)
	defer s.st.SetCartLoading(false)

	if err := s.api.RemoveFromCart(ctx, productID); err != nil {
		return fail(s.log, "Failed to remove item from cart", err)
	}
	c, err := s.api.GetCart(ctx)
	if err != nil {
		s.log.Printf("Failed to refresh cart after removal: %v", err)
		s.st.RemoveItem(productID)
		return nil
	}
	s.st.SetCart(c)
	return nil
}

func (s *CartService) Clear(ctx context.Context) error {
	s.st.SetCartLoading(true)
	defer s.st.SetCartLoading(false)

	if err := s.api.ClearCart(ctx); err != nil {
		return fail(s.log, "Failed to clear cart", err)
	}
	s.st.ClearCart()
	return nil
}

// ChangeQuantity applies a +/- step; a line that would reach zero is removed.
func (s *CartService) ChangeQuantity(ctx context.Context, productID int64, delta int) error {
	item, ok := s.find(productID)
	if !ok {
		return &Error{Message: "Item is not in your cart"}
	}
	qty, remove := cart.NextQuantity(item, delta)
	if remove {
		return s.Remove(ctx, productID)
	}
	_, err := s.Update(ctx, productID, qty)
	return err
}

func (s *CartService) find(productID int64) (model.CartItem, bool) {
	for _, it := range s.st.Cart().Items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return model.CartItem{}, false
}
