package model

type CartItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

func (i CartItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type Cart struct {
	CartID     int64      `json:"cartId"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

type CartRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// SumItems recomputes a total from scratch.
func SumItems(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Subtotal()
	}
	return sum
}
