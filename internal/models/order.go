package models

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is one line of an order
type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
}

// Order is a buyer's order as reported by the backend. The terminal is a
// read-and-advance surface: vendors review orders and move them through
// the status lifecycle, fulfilment itself happens over WhatsApp.
type Order struct {
	ID            string      `json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []OrderItem `json:"items"`
	Total         int64       `json:"total"`
	Currency      string      `json:"currency"`
	Status        OrderStatus `json:"status"`
	Note          string      `json:"note,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NextStatuses lists the statuses an order may move to from its current
// one. Cancelled and delivered are terminal.
func (o *Order) NextStatuses() []OrderStatus {
	switch o.Status {
	case OrderPending:
		return []OrderStatus{OrderConfirmed, OrderCancelled}
	case OrderConfirmed:
		return []OrderStatus{OrderShipped, OrderCancelled}
	case OrderShipped:
		return []OrderStatus{OrderDelivered}
	default:
		return nil
	}
}

// CanAdvance reports whether the transition to the given status is legal
func (o *Order) CanAdvance(to OrderStatus) bool {
	for _, s := range o.NextStatuses() {
		if s == to {
			return true
		}
	}
	return false
}

// IsOpen reports whether the order still needs vendor attention
func (o *Order) IsOpen() bool {
	return o.Status == OrderPending || o.Status == OrderConfirmed || o.Status == OrderShipped
}

// ItemCount is the total quantity across all lines
func (o *Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}

// DisplayTotal formats the order total with its currency code
func (o *Order) DisplayTotal() string {
	return fmt.Sprintf("%s %s", o.Currency, FormatPrice(o.Total))
}

// OrderList wraps the orders fetched for a vendor
type OrderList struct {
	Orders []Order `json:"orders"`
}

// PendingCount reports how many orders await confirmation
func (l *OrderList) PendingCount() int {
	count := 0
	for _, o := range l.Orders {
		if o.Status == OrderPending {
			count++
		}
	}
	return count
}

// FilterByStatus returns orders with the given status, all for ""
func (l *OrderList) FilterByStatus(status OrderStatus) []Order {
	if status == "" {
		return l.Orders
	}

	var matches []Order
	for _, o := range l.Orders {
		if o.Status == status {
			matches = append(matches, o)
		}
	}
	return matches
}
