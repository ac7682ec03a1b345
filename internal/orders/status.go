// Package orders derives display status from an order's tracking history.
package orders

import (
	"fmt"
	"sort"
	"strings"

	"fsanano/shop-client/internal/model"
)

const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusShipped    = "SHIPPED"
	StatusDelivered  = "DELIVERED"
	StatusCancelled  = "CANCELLED"
)

// Status is the upper-cased status of the newest tracking entry. Orders
// without history, or whose newest entry has no status, are PENDING.
func Status(o model.Order) string {
	if len(o.TrackingHistory) == 0 {
		return StatusPending
	}
	history := append([]model.OrderTracking(nil), o.TrackingHistory...)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Timestamp.After(history[j].Timestamp.Time)
	})
	status := strings.ToUpper(strings.TrimSpace(history[0].Status))
	if status == "" {
		return StatusPending
	}
	return status
}

type Tab string

const (
	TabAll       Tab = "all"
	TabPending   Tab = "pending"
	TabDelivered Tab = "delivered"
	TabCancelled Tab = "cancelled"
)

// Matches reports whether an order in the given status belongs on tab.
// Unknown tabs match everything.
func (t Tab) Matches(status string) bool {
	switch t {
	case TabPending:
		return status == StatusPending || status == StatusProcessing || status == StatusShipped
	case TabDelivered:
		return status == StatusDelivered
	case TabCancelled:
		return status == StatusCancelled
	default:
		return true
	}
}

// Filter keeps the orders on tab, preserving their order.
func Filter(list []model.Order, tab Tab) []model.Order {
	out := make([]model.Order, 0, len(list))
	for _, o := range list {
		if tab.Matches(Status(o)) {
			out = append(out, o)
		}
	}
	return out
}

func TrackingNumber(id int64) string {
	return fmt.Sprintf("IK%010d", id)
}

func TotalQuantity(o model.Order) int {
	n := 0
	for _, it := range o.OrderItems {
		n += it.Quantity
	}
	return n
}

// CanCancel is true only while the order has not started processing.
func CanCancel(o model.Order) bool {
	return Status(o) == StatusPending
}

// View is the list-row projection of an order.
type View struct {
	ID             int64   `json:"id"`
	TrackingNumber string  `json:"trackingNumber"`
	OrderDate      string  `json:"orderDate"`
	Status         string  `json:"status"`
	Quantity       int     `json:"quantity"`
	Total          float64 `json:"total"`
	CanCancel      bool    `json:"canCancel"`
}

func NewView(o model.Order) View {
	date := ""
	if !o.OrderDate.IsZero() {
		date = o.OrderDate.Format("02/01/2006")
	}
	status := Status(o)
	return View{
		ID:             o.ID,
		TrackingNumber: TrackingNumber(o.ID),
		OrderDate:      date,
		Status:         status,
		Quantity:       TotalQuantity(o),
		Total:          o.TotalAmount,
		CanCancel:      status == StatusPending,
	}
}

func Views(list []model.Order) []View {
	out := make([]View, 0, len(list))
	for _, o := range list {
		out = append(out, NewView(o))
	}
	return out
}
