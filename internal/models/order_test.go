package models

import (
	"testing"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderPending, OrderConfirmed, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderShipped, false},
		{OrderConfirmed, OrderShipped, true},
		{OrderConfirmed, OrderCancelled, true},
		{OrderConfirmed, OrderDelivered, false},
		{OrderShipped, OrderDelivered, true},
		{OrderShipped, OrderCancelled, false},
		{OrderDelivered, OrderPending, false},
		{OrderCancelled, OrderConfirmed, false},
	}

	for _, tt := range tests {
		o := &Order{Status: tt.from}
		if got := o.CanAdvance(tt.to); got != tt.allowed {
			t.Errorf("%s -> %s: CanAdvance = %v, want %v", tt.from, tt.to, got, tt.allowed)
		}
	}
}

func TestOrderIsOpen(t *testing.T) {
	open := []OrderStatus{OrderPending, OrderConfirmed, OrderShipped}
	closed := []OrderStatus{OrderDelivered, OrderCancelled}

	for _, s := range open {
		if o := (&Order{Status: s}); !o.IsOpen() {
			t.Errorf("%s should be open", s)
		}
	}
	for _, s := range closed {
		if o := (&Order{Status: s}); o.IsOpen() {
			t.Errorf("%s should be closed", s)
		}
	}
}

func TestOrderItemCount(t *testing.T) {
	o := &Order{Items: []OrderItem{
		{Quantity: 2},
		{Quantity: 3},
	}}
	if got := o.ItemCount(); got != 5 {
		t.Errorf("ItemCount = %d, want 5", got)
	}
}

func TestOrderListPendingCount(t *testing.T) {
	list := &OrderList{Orders: []Order{
		{Status: OrderPending},
		{Status: OrderShipped},
		{Status: OrderPending},
		{Status: OrderDelivered},
	}}
	if got := list.PendingCount(); got != 2 {
		t.Errorf("PendingCount = %d, want 2", got)
	}
}

func TestOrderListFilterByStatus(t *testing.T) {
	list := &OrderList{Orders: []Order{
		{ID: "1", Status: OrderPending},
		{ID: "2", Status: OrderShipped},
		{ID: "3", Status: OrderPending},
	}}

	got := list.FilterByStatus(OrderPending)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("FilterByStatus(pending) = %v", got)
	}

	if all := list.FilterByStatus(""); len(all) != 3 {
		t.Errorf("empty status should return all, got %d", len(all))
	}
}
