package model

type OrderItem struct {
	ProductID   int64   `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type OrderTracking struct {
	Status    string `json:"status"`
	Timestamp Time   `json:"timestamp"`
	Location  string `json:"location,omitempty"`
}

type Order struct {
	ID              int64           `json:"id"`
	Username        string          `json:"username"`
	OrderDate       Time            `json:"orderDate"`
	TotalAmount     float64         `json:"totalAmount"`
	OrderItems      []OrderItem     `json:"orderItems"`
	TrackingHistory []OrderTracking `json:"trackingHistory"`
}
