package booking

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"stayelo/internal/domain"
	"stayelo/internal/repository"
)

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{bookings: bookings, rooms: rooms}
}

// CreateBooking validates the request and persists a Pending booking with a
// derived price. Validation order is fixed: missing fields, date range, room
// existence, capacity, availability. Only Confirmed bookings block
// availability, so several pending holds may coexist for the same dates
// until one of them pays.
func (s *Service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	if req.RoomID == 0 || req.UserID == 0 || req.CheckIn.IsZero() || req.CheckOut.IsZero() || req.Guests <= 0 {
		return nil, ErrMissingField
	}
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrInvalidRange
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if req.Guests > room.Capacity {
		return nil, ErrCapacityExceeded
	}

	ok, err := s.bookings.CheckAvailability(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomUnavailable
	}

	total, err := TotalPrice(room, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		RoomID:     req.RoomID,
		UserID:     req.UserID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Guests:     req.Guests,
		TotalPrice: total,
		Status:     domain.BookingPending,
		Payment: domain.PaymentDetails{
			OrderID: req.OrderID,
			Status:  domain.PaymentPending,
		},
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverlapConflict(err) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, bookingID, actorID int64, actorRole string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if actorRole != string(domain.RoleAdmin) && b.UserID != actorID {
		return nil, ErrForbidden
	}
	return b, nil
}

func (s *Service) GetUserBookings(ctx context.Context, userID, actorID int64, actorRole string) ([]domain.Booking, error) {
	if actorRole != string(domain.RoleAdmin) && userID != actorID {
		return nil, ErrForbidden
	}
	return s.bookings.GetByUserID(ctx, userID)
}

func (s *Service) GetAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.GetAll(ctx)
}

// UpdateStatus applies a privileged status override through the booking
// state machine. A transition into Confirmed goes through the overlap guard
// so an override cannot double-book a room.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, newStatus domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := b.Transition(newStatus); err != nil {
		return nil, err
	}

	if newStatus == domain.BookingConfirmed {
		err = s.bookings.ConfirmWithOverlapGuard(ctx, b)
	} else {
		err = s.bookings.Update(ctx, b)
	}
	if err != nil {
		if isOverlapConflict(err) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}
	return b, nil
}

// CancelBooking cancels on behalf of the booking owner or an admin.
// Cancelling an already cancelled booking fails with
// domain.ErrAlreadyCancelled rather than silently succeeding.
func (s *Service) CancelBooking(ctx context.Context, bookingID, actorID int64, actorRole string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if actorRole != string(domain.RoleAdmin) && b.UserID != actorID {
		return nil, ErrForbidden
	}

	if err := b.Cancel(); err != nil {
		return nil, err
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBooking(ctx context.Context, bookingID int64) error {
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return nil
}

func (s *Service) Trends(ctx context.Context) ([]repository.TrendPoint, error) {
	return s.bookings.MonthlyTrends(ctx)
}

// isOverlapConflict recognizes the datastore-level double-booking guard:
// the repository's transactional re-check, or the Postgres exclusion
// constraint (23P01) / unique violation (23505) surfaced through pgx.
func isOverlapConflict(err error) bool {
	if errors.Is(err, repository.ErrConflict) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}
