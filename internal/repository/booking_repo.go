package repository

import (
	"context"
	"errors"
	"time"

	"stayelo/internal/domain"

	"gorm.io/gorm"
)

var ErrConflict = errors.New("booking conflict")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID            int64      `gorm:"column:id;primaryKey"`
	RoomID        int64      `gorm:"column:room_id"`
	UserID        int64      `gorm:"column:user_id"`
	CheckIn       time.Time  `gorm:"column:check_in"`
	CheckOut      time.Time  `gorm:"column:check_out"`
	Guests        int        `gorm:"column:guests"`
	TotalPrice    float64    `gorm:"column:total_price"`
	Status        string     `gorm:"column:status"`
	OrderID       *string    `gorm:"column:order_id"`
	PaymentID     *string    `gorm:"column:payment_id"`
	Signature     *string    `gorm:"column:signature"`
	PaymentStatus string     `gorm:"column:payment_status"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
	CancelledAt   *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strOrNil(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		RoomID:     m.RoomID,
		UserID:     m.UserID,
		CheckIn:    m.CheckIn,
		CheckOut:   m.CheckOut,
		Guests:     m.Guests,
		TotalPrice: m.TotalPrice,
		Status:     domain.BookingStatus(m.Status),
		Payment: domain.PaymentDetails{
			OrderID:   strOrEmpty(m.OrderID),
			PaymentID: strOrEmpty(m.PaymentID),
			Signature: strOrEmpty(m.Signature),
			Status:    domain.PaymentStatus(m.PaymentStatus),
		},
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:            b.ID,
		RoomID:        b.RoomID,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Guests:        b.Guests,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		OrderID:       strOrNil(b.Payment.OrderID),
		PaymentID:     strOrNil(b.Payment.PaymentID),
		Signature:     strOrNil(b.Payment.Signature),
		PaymentStatus: string(b.Payment.Status),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		CancelledAt:   b.CancelledAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// GetByOrderID finds the booking draft attached to a payment-gateway order.
func (r *BookingRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CheckAvailability reports whether the room has no confirmed booking whose
// stay intersects the requested one. Only Confirmed rows block: pending
// bookings are optimistic holds and may coexist until one of them pays.
func (r *BookingRepository) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status = ?", string(domain.BookingConfirmed)).
		Where("check_in <= ? AND check_out >= ?", checkOut, checkIn).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

// Update persists the full booking row. The caller is expected to have
// applied status transitions through the domain entity.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

// ConfirmWithOverlapGuard writes a booking that is entering Confirmed status.
// The overlap re-check and the write happen in one transaction so two
// concurrent confirmations for intersecting stays cannot both land; on
// Postgres the no_confirmed_overlap exclusion constraint backs this up at
// the storage level.
func (r *BookingRepository) ConfirmWithOverlapGuard(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		q := tx.Model(&bookingModel{}).
			Where("room_id = ?", b.RoomID).
			Where("status = ?", string(domain.BookingConfirmed)).
			Where("check_in <= ? AND check_out >= ?", b.CheckOut, b.CheckIn)
		if b.ID != 0 {
			q = q.Where("id <> ?", b.ID)
		}
		if err := q.Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrConflict
		}

		m := toBookingModel(b)
		if err := tx.Save(&m).Error; err != nil {
			return err
		}
		*b = *toDomainBooking(m)
		return nil
	})
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetAll(ctx context.Context) ([]domain.Booking, error) {
	var models []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&bookingModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type TrendPoint struct {
	Label    string `gorm:"column:label" json:"label"`
	Bookings int64  `gorm:"column:bookings" json:"bookings"`
}

// MonthlyTrends groups bookings by check-in month, oldest first.
func (r *BookingRepository) MonthlyTrends(ctx context.Context) ([]TrendPoint, error) {
	monthExpr := "strftime('%Y-%m', check_in)"
	if r.db.Dialector.Name() == "postgres" {
		monthExpr = "to_char(check_in, 'YYYY-MM')"
	}

	var points []TrendPoint
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select(monthExpr + " AS label, COUNT(1) AS bookings").
		Group("label").
		Order("label ASC").
		Scan(&points)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return points, nil
}

type ConfirmedStats struct {
	TotalBookings int64   `gorm:"column:total_bookings" json:"total_bookings"`
	TotalRevenue  float64 `gorm:"column:total_revenue" json:"total_revenue"`
}

func (r *BookingRepository) ConfirmedStats(ctx context.Context) (*ConfirmedStats, error) {
	var stats ConfirmedStats
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("COUNT(1) AS total_bookings, COALESCE(SUM(total_price), 0) AS total_revenue").
		Where("status = ?", string(domain.BookingConfirmed)).
		Scan(&stats)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &stats, nil
}
