package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "Pending"
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingCheckedIn  BookingStatus = "CheckedIn"
	BookingCheckedOut BookingStatus = "CheckedOut"
	BookingCancelled  BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// PaymentDetails is the gateway proof attached to a booking.
type PaymentDetails struct {
	OrderID   string        `json:"order_id,omitempty" gorm:"column:order_id;type:varchar(64);index"`
	PaymentID string        `json:"payment_id,omitempty" gorm:"column:payment_id;type:varchar(64)"`
	Signature string        `json:"-" gorm:"column:signature;type:varchar(128)"`
	Status    PaymentStatus `json:"payment_status" gorm:"column:payment_status;type:varchar(16)"`
}

type Booking struct {
	ID          int64          `json:"id"`
	RoomID      int64          `json:"room_id" validate:"required"`
	UserID      int64          `json:"user_id" validate:"required"`
	CheckIn     time.Time      `json:"check_in" validate:"required"`
	CheckOut    time.Time      `json:"check_out" validate:"required"`
	Guests      int            `json:"guests" validate:"required,gt=0"`
	TotalPrice  float64        `json:"total_price" validate:"gte=0"`
	Status      BookingStatus  `json:"status"`
	Payment     PaymentDetails `json:"payment" gorm:"embedded"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	CancelledAt *time.Time     `json:"cancelled_at,omitempty"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// allowedTransitions is the booking lifecycle. CheckedOut and Cancelled are
// terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:    {BookingConfirmed, BookingCancelled},
	BookingConfirmed:  {BookingCheckedIn, BookingCancelled},
	BookingCheckedIn:  {BookingCheckedOut},
	BookingCheckedOut: {},
	BookingCancelled:  {},
}

func (b *Booking) CanTransition(to BookingStatus) bool {
	for _, s := range allowedTransitions[b.Status] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves the booking to the target status or reports why it cannot.
// Re-cancelling a cancelled booking is rejected explicitly rather than treated
// as a no-op.
func (b *Booking) Transition(to BookingStatus) error {
	if b.Status == BookingCancelled && to == BookingCancelled {
		return ErrAlreadyCancelled
	}
	if !b.CanTransition(to) {
		return ErrInvalidTransition
	}
	b.Status = to
	if to == BookingCancelled {
		now := time.Now().UTC()
		b.CancelledAt = &now
	}
	return nil
}

func (b *Booking) Cancel() error {
	return b.Transition(BookingCancelled)
}

// SetPaymentStatus applies a payment outcome to the booking. Payment status
// only moves Pending->Paid or Pending->Failed, and a successful payment
// confirms a pending booking in the same step. Every mutation of the payment
// sub-record goes through here so the derived status rule holds at all call
// sites, admin overrides included.
func (b *Booking) SetPaymentStatus(status PaymentStatus) error {
	if b.Payment.Status != PaymentPending {
		return ErrPaymentFinal
	}
	switch status {
	case PaymentPaid:
		b.Payment.Status = PaymentPaid
		if b.Status == BookingPending {
			b.Status = BookingConfirmed
		}
	case PaymentFailed:
		b.Payment.Status = PaymentFailed
	default:
		return ErrInvalidPaymentStatus
	}
	return nil
}
