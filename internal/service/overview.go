package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"fsanano/shop-client/internal/model"
	"fsanano/shop-client/internal/orders"
)

// Overview is everything the profile page shows at once.
type Overview struct {
	User      model.User           `json:"user"`
	Orders    []orders.View        `json:"orders"`
	Wishlist  []model.WishlistItem `json:"wishlist"`
	Addresses []model.Address      `json:"addresses"`
}

// Overview loads the profile, orders, wishlist and addresses concurrently.
// Any failure cancels the rest.
func (s *ProfileService) Overview(ctx context.Context) (Overview, error) {
	g, ctx := errgroup.WithContext(ctx)
	var out Overview

	g.Go(func() error {
		u, err := s.api.GetProfile(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch profile: %w", err)
		}
		out.User = u
		return nil
	})

	g.Go(func() error {
		list, err := s.api.GetOrders(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch orders: %w", err)
		}
		out.Orders = orders.Views(list)
		return nil
	})

	g.Go(func() error {
		items, err := s.api.GetWishlist(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch wishlist: %w", err)
		}
		out.Wishlist = items
		return nil
	})

	g.Go(func() error {
		addrs, err := s.api.GetAddresses(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch addresses: %w", err)
		}
		out.Addresses = addrs
		return nil
	})

	if err := g.Wait(); err != nil {
		return Overview{}, fail(s.log, "Failed to load profile", err)
	}
	return out, nil
}
