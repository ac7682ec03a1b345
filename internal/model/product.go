package model

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CategoryURL string `json:"categoryUrl,omitempty"`
}

type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Quantity    int       `json:"quantity"`
	Category    *Category `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   Time      `json:"createdAt"`
	UpdatedAt   Time      `json:"updatedAt"`
}

// Page is the backend's pagination wrapper.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ProductQuery is sent as query parameters; empty strings are omitted.
type ProductQuery struct {
	Page     int
	Limit    int
	Category string
	Search   string
	SortBy   string
	Order    SortOrder
}

type ProductPage struct {
	Products []Product `json:"products"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Total    int64     `json:"total"`
}

type ProductFilters struct {
	Category string    `json:"category,omitempty"`
	Search   string    `json:"search,omitempty"`
	SortBy   string    `json:"sortBy,omitempty"`
	Order    SortOrder `json:"order,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}
