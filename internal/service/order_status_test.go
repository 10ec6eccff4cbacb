package service

import (
	"testing"

	"github.com/laga-admin/internal/constants"
)

func TestNormalizeOrderStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"pending", constants.OrderStatusPending},
		{" PROCESSING ", constants.OrderStatusProcessing},
		{"Shipped", constants.OrderStatusShipped},
		{"completed", constants.OrderStatusCompleted},
		{"CANCELLED", constants.OrderStatusCancelled},
		{"refunded", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeOrderStatus(tc.raw); got != tc.want {
			t.Fatalf("NormalizeOrderStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCanTransitionOrderStatus(t *testing.T) {
	allowed := []struct{ from, to string }{
		{constants.OrderStatusPending, constants.OrderStatusProcessing},
		{constants.OrderStatusPending, constants.OrderStatusCancelled},
		{constants.OrderStatusProcessing, constants.OrderStatusShipped},
		{constants.OrderStatusProcessing, constants.OrderStatusCancelled},
		{constants.OrderStatusShipped, constants.OrderStatusCompleted},
		{constants.OrderStatusShipped, constants.OrderStatusCancelled},
	}
	for _, tc := range allowed {
		if !CanTransitionOrderStatus(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{constants.OrderStatusPending, constants.OrderStatusShipped},
		{constants.OrderStatusPending, constants.OrderStatusCompleted},
		{constants.OrderStatusCompleted, constants.OrderStatusPending},
		{constants.OrderStatusCompleted, constants.OrderStatusCancelled},
		{constants.OrderStatusCancelled, constants.OrderStatusProcessing},
		{"refunded", constants.OrderStatusCompleted},
	}
	for _, tc := range denied {
		if CanTransitionOrderStatus(tc.from, tc.to) {
			t.Fatalf("expected %s -> %s denied", tc.from, tc.to)
		}
	}
}
