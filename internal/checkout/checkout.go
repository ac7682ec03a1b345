// Package checkout validates the shipping form and prices an order.
package checkout

import (
	"errors"
	"strings"
)

var (
	ErrMissingFields    = errors.New("please fill in all required fields")
	ErrNotAuthenticated = errors.New("please login to place an order")
	ErrEmptyCart        = errors.New("your cart is empty")
	ErrNoSelection      = errors.New("please select at least one item to checkout")
	// Orders are created from the whole server cart.
	ErrPartialSelection = errors.New("orders include every cart item, select all items to checkout")
)

type ShippingMethod struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

const DefaultMethod = "free"

var Methods = []ShippingMethod{
	{ID: "free", Name: "Free Delivery to home", Price: 0, Description: "Delivery from 3 to 7 business days"},
	{ID: "standard", Name: "$ 9.90 Delivery to home", Price: 9.9, Description: "Delivery from 4 to 6 business days"},
	{ID: "fast", Name: "$ 9.90 Fast Delivery", Price: 9.9, Description: "Delivery from 2 to 3 business days"},
}

func MethodByID(id string) (ShippingMethod, bool) {
	for _, m := range Methods {
		if m.ID == id {
			return m, true
		}
	}
	return ShippingMethod{}, false
}

// ShippingCost is 0 for unknown methods.
func ShippingCost(id string) float64 {
	m, _ := MethodByID(id)
	return m.Price
}

func Total(cartTotal float64, methodID string) float64 {
	return cartTotal + ShippingCost(methodID)
}

type ShippingForm struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Country     string `json:"country"`
	StreetName  string `json:"streetName"`
	City        string `json:"city"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zipCode"`
	PhoneNumber string `json:"phoneNumber"`
}

// Validate requires every field except State.
func (f ShippingForm) Validate() error {
	required := []string{f.FirstName, f.LastName, f.Country, f.StreetName, f.City, f.ZipCode, f.PhoneNumber}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return ErrMissingFields
		}
	}
	return nil
}

// Ready reports whether an order may be placed.
func Ready(authenticated bool, itemCount int) error {
	if !authenticated {
		return ErrNotAuthenticated
	}
	if itemCount == 0 {
		return ErrEmptyCart
	}
	return nil
}
