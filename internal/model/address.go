package model

type Address struct {
	ID          int64  `json:"id"`
	Label       string `json:"label"`
	FullAddress string `json:"fullAddress"`
	AddressType string `json:"addressType,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}

type AddressRequest struct {
	Label       string `json:"label"`
	FullAddress string `json:"fullAddress"`
	AddressType string `json:"addressType,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}
