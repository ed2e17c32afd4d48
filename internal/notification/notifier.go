package notification

import (
	"context"
	"time"
)

// BookingConfirmation carries everything the confirmation email needs.
type BookingConfirmation struct {
	To       string
	UserName string
	RoomName string
	RoomType string
	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Amount   float64
}

// Notifier delivers booking notifications. Delivery is best-effort: callers
// must never let a notifier error fail the operation that triggered it.
type Notifier interface {
	BookingConfirmed(ctx context.Context, n BookingConfirmation) error
}
