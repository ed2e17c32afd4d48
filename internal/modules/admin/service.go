package admin

import (
	"context"

	"stayelo/internal/repository"
)

type bookingStats interface {
	ConfirmedStats(ctx context.Context) (*repository.ConfirmedStats, error)
}

type Service struct {
	bookings bookingStats
}

func NewService(bookings bookingStats) *Service {
	return &Service{bookings: bookings}
}

// Dashboard aggregates confirmed bookings into the admin overview numbers.
func (s *Service) Dashboard(ctx context.Context) (*repository.ConfirmedStats, error) {
	return s.bookings.ConfirmedStats(ctx)
}
