package service

import (
	"context"
	"log"
	"slices"
	"sync"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/service/shopapi"
)

// WishlistService tracks which product ids are wishlisted.
type WishlistService struct {
	api *shopapi.Client
	log *log.Logger

	mu  sync.RWMutex
	ids []int64
}

func NewWishlistService(api *shopapi.Client, logger *log.Logger) *WishlistService {
	return &WishlistService{api: api, log: logger, ids: []int64{}}
}

func (s *WishlistService) Fetch(ctx context.Context) ([]int64, error) {
	if _, err := s.List(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64{}, s.ids...), nil
}

// List returns the wishlisted products and refreshes the id set.
func (s *WishlistService) List(ctx context.Context) ([]model.WishlistItem, error) {
	items, err := s.api.GetWishlist(ctx)
	if err != nil {
		return nil, fail(s.log, "Failed to fetch wishlist", err)
	}
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Product.ID)
	}
	s.mu.Lock()
	s.ids = ids
	s.mu.Unlock()
	return items, nil
}

func (s *WishlistService) Add(ctx context.Context, productID int64) error {
	if err := s.api.AddToWishlist(ctx, productID); err != nil {
		return fail(s.log, "Failed to add to wishlist", err)
	}
	s.mu.Lock()
	if !slices.Contains(s.ids, productID) {
		s.ids = append(s.ids, productID)
	}
	s.mu.Unlock()
	return nil
}

func (s *WishlistService) Remove(ctx context.Context, productID int64) error {
	if err := s.api.RemoveFromWishlist(ctx, productID); err != nil {
		return fail(s.log, "Failed to remove from wishlist", err)
	}
	s.mu.Lock()
	s.ids = slices.DeleteFunc(s.ids, func(id int64) bool { return id == productID })
	s.mu.Unlock()
	return nil
}

// Toggle adds or removes productID and reports whether it is now wishlisted.
func (s *WishlistService) Toggle(ctx context.Context, productID int64) (bool, error) {
	if s.Contains(productID) {
		return false, s.Remove(ctx, productID)
	}
	return true, s.Add(ctx, productID)
}

func (s *WishlistService) Contains(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.ids, productID)
}

func (s *WishlistService) Items() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64{}, s.ids...)
}
