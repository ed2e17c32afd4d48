package booking

import "time"

type CreateBookingRequest struct {
	RoomID   int64     `json:"room_id" binding:"required"`
	UserID   int64     `json:"-"`
	CheckIn  time.Time `json:"check_in" binding:"required"`
	CheckOut time.Time `json:"check_out" binding:"required"`
	Guests   int       `json:"guests" binding:"required,gt=0"`
	OrderID  string    `json:"order_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
