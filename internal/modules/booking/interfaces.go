package booking

import (
	"context"
	"time"

	"stayelo/internal/domain"
	"stayelo/internal/repository"
)

// BookingRepository defines the persistence operations the booking service
// needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error)
	Update(ctx context.Context, b *domain.Booking) error
	ConfirmWithOverlapGuard(ctx context.Context, b *domain.Booking) error
	GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error)
	GetAll(ctx context.Context) ([]domain.Booking, error)
	Delete(ctx context.Context, id int64) error
	MonthlyTrends(ctx context.Context) ([]repository.TrendPoint, error)
}

// RoomRepository defines the room lookups the booking service needs.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}
