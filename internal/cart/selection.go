// Package cart holds the arithmetic behind the cart screen: which lines are
// selected for checkout, what they cost, and what a +/- tap does.
package cart

import (
	"sort"

	"fsanano/shop-client/internal/model"
)

// Selection is the set of product ids ticked for checkout.
type Selection struct {
	ids map[int64]struct{}
}

func NewSelection(ids ...int64) *Selection {
	s := &Selection{ids: make(map[int64]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// SelectAll replaces the selection with every item's product.
func (s *Selection) SelectAll(items []model.CartItem) {
	s.ids = make(map[int64]struct{}, len(items))
	for _, it := range items {
		s.ids[it.ProductID] = struct{}{}
	}
}

// Add selects productID; selecting it again is a no-op.
func (s *Selection) Add(productID int64) {
	if s.ids == nil {
		s.ids = make(map[int64]struct{})
	}
	s.ids[productID] = struct{}{}
}

func (s *Selection) Toggle(productID int64) {
	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return
	}
	s.Add(productID)
}

func (s *Selection) Has(productID int64) bool {
	_, ok := s.ids[productID]
	return ok
}

func (s *Selection) Len() int { return len(s.ids) }

// IDs returns the selected ids in ascending order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Subtotal sums price × quantity over the selected items only.
func Subtotal(items []model.CartItem, sel *Selection) float64 {
	if sel == nil || sel.Len() == 0 {
		return 0
	}
	var sum float64
	for _, it := range items {
		if sel.Has(it.ProductID) {
			sum += it.Subtotal()
		}
	}
	return sum
}

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Summarize prices the selection. The cart screen never charges shipping;
// that is chosen at checkout.
func Summarize(items []model.CartItem, sel *Selection) Summary {
	sub := Subtotal(items, sel)
	return Summary{Subtotal: sub, Total: sub}
}
