package state

import "fsanano/shop-client/internal/model"

func (s *Store) SetCartLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.IsLoading = loading
}

// SetCart replaces the slice with a server response.
func (s *Store) SetCart(cart model.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := append([]model.CartItem{}, cart.Items...)
	cart.Items = items
	s.cart.Cart = &cart
	s.cart.Items = append([]model.CartItem{}, items...)
	s.cart.Total = cart.TotalPrice
}

// AddItem merges item into an existing line for the same product.
func (s *Store) AddItem(item model.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	merged := false
	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == item.ProductID {
			s.cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart.Items = append(s.cart.Items, item)
	}
	s.recomputeCart()
}

func (s *Store) UpdateItem(productID int64, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == productID {
			s.cart.Items[i].Quantity = quantity
			s.recomputeCart()
			return
		}
	}
}

func (s *Store) RemoveItem(productID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cart.Items[:0]
	for _, it := range s.cart.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.cart.Items = kept
	s.recomputeCart()
}

// recomputeCart derives the total from the items and mirrors both into the
// server cart record.
func (s *Store) recomputeCart() {
	s.cart.Total = model.SumItems(s.cart.Items)
	if s.cart.Cart != nil {
		c := *s.cart.Cart
		c.Items = append([]model.CartItem{}, s.cart.Items...)
		c.TotalPrice = s.cart.Total
		s.cart.Cart = &c
	}
}

func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Cart = nil
	s.cart.Items = []model.CartItem{}
	s.cart.Total = 0
}
