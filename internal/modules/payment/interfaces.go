package payment

import (
	"context"

	"stayelo/internal/domain"
)

type bookingRepo interface {
	GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ConfirmWithOverlapGuard(ctx context.Context, b *domain.Booking) error
}

type roomReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// orderCreator matches the Razorpay SDK order resource so the service can be
// tested without the gateway.
type orderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}
