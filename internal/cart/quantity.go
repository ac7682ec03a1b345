package cart

import "fsanano/shop-client/internal/model"

// NextQuantity applies delta to item. When the result would drop to zero or
// below, remove is true and the line must be deleted instead of updated.
func NextQuantity(item model.CartItem, delta int) (quantity int, remove bool) {
	quantity = item.Quantity + delta
	if quantity <= 0 {
		return 0, true
	}
	return quantity, false
}
