package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"stayelo/internal/domain"
	"stayelo/internal/notification"
	"stayelo/internal/repository"
)

const notifyTimeout = 30 * time.Second

type Service struct {
	bookings bookingRepo
	rooms    roomReader
	users    userReader
	notifs   notification.Notifier
	orders   orderCreator
	secret   string
	loggerf  func(format string, args ...interface{})
}

func NewService(
	bookings bookingRepo,
	rooms roomReader,
	users userReader,
	notifs notification.Notifier,
	orders orderCreator,
	secret string,
	loggerf func(format string, args ...interface{}),
) *Service {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		users:    users,
		notifs:   notifs,
		orders:   orders,
		secret:   secret,
		loggerf:  loggerf,
	}
}

// CreateOrder opens a gateway order for the given amount. The gateway wants
// the amount in the currency's smallest unit.
func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	if s.orders == nil || s.secret == "" {
		return nil, ErrNotConfigured
	}

	receipt := "rcpt_" + uuid.NewString()
	data := map[string]interface{}{
		"amount":   int64(req.Amount * 100),
		"currency": "INR",
		"receipt":  receipt,
	}

	order, err := s.orders.Create(data, nil)
	if err != nil {
		return nil, err
	}

	orderID, _ := order["id"].(string)
	return &CreateOrderResponse{
		OrderID:  orderID,
		Amount:   req.Amount,
		Currency: "INR",
		Receipt:  receipt,
	}, nil
}

// ConfirmPayment authenticates a gateway callback and flips the booking to
// Confirmed/Paid. On a bad signature the booking draft, if one exists, is
// marked Failed and stays Pending; nothing else changes. The confirmation
// email is dispatched on a separate goroutine and its outcome never affects
// the response.
func (s *Service) ConfirmPayment(ctx context.Context, req VerifyPaymentRequest) (*domain.Booking, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" || req.UserID == 0 {
		return nil, ErrMissingField
	}

	if !VerifySignature(req.OrderID, req.PaymentID, req.Signature, s.secret) {
		s.loggerf("level=warn msg=payment signature mismatch order_id=%s", req.OrderID)
		if draft, err := s.bookings.GetByOrderID(ctx, req.OrderID); err == nil {
			if err := draft.SetPaymentStatus(domain.PaymentFailed); err == nil {
				if uerr := s.bookings.Update(ctx, draft); uerr != nil {
					s.loggerf("level=error msg=failed to record failed payment booking_id=%d err=%v", draft.ID, uerr)
				}
			}
		}
		return nil, ErrInvalidSignature
	}

	b, err := s.bookings.GetByOrderID(ctx, req.OrderID)
	switch {
	case err == nil:
		// draft created earlier by the booking flow
	case errors.Is(err, gorm.ErrRecordNotFound):
		// gateway-first flow: the callback carries the whole draft
		if req.RoomID == 0 || req.CheckIn.IsZero() || req.CheckOut.IsZero() || req.TotalAmount <= 0 {
			return nil, ErrMissingField
		}
		b = &domain.Booking{
			RoomID:     req.RoomID,
			UserID:     req.UserID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Guests:     req.Guests,
			TotalPrice: req.TotalAmount,
			Status:     domain.BookingPending,
			Payment:    domain.PaymentDetails{Status: domain.PaymentPending},
		}
	default:
		return nil, err
	}

	if b.Payment.Status == domain.PaymentPaid {
		// idempotent gateway retry
		s.loggerf("level=info msg=duplicate payment callback order_id=%s booking_id=%d", req.OrderID, b.ID)
		return b, nil
	}

	b.Payment.OrderID = req.OrderID
	b.Payment.PaymentID = req.PaymentID
	b.Payment.Signature = req.Signature
	if err := b.SetPaymentStatus(domain.PaymentPaid); err != nil {
		return nil, err
	}

	if err := s.bookings.ConfirmWithOverlapGuard(ctx, b); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	go s.notifyConfirmed(b)

	return b, nil
}

func (s *Service) notifyConfirmed(b *domain.Booking) {
	if s.notifs == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	user, err := s.users.GetByID(ctx, b.UserID)
	if err != nil {
		s.loggerf("level=error msg=confirmation notify skipped, user lookup failed booking_id=%d err=%v", b.ID, err)
		return
	}
	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		s.loggerf("level=error msg=confirmation notify skipped, room lookup failed booking_id=%d err=%v", b.ID, err)
		return
	}

	n := notification.BookingConfirmation{
		To:       user.Email,
		UserName: user.Name,
		RoomName: room.Name,
		RoomType: string(room.Type),
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		Guests:   b.Guests,
		Amount:   b.TotalPrice,
	}
	if err := s.notifs.BookingConfirmed(ctx, n); err != nil {
		s.loggerf("level=error msg=confirmation email not delivered booking_id=%d err=%v", b.ID, err)
	}
}
