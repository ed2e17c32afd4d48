package payment

import "time"

type CreateOrderRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateOrderResponse struct {
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Receipt  string  `json:"receipt"`
}

type VerifyPaymentRequest struct {
	OrderID     string    `json:"razorpay_order_id" binding:"required"`
	PaymentID   string    `json:"razorpay_payment_id" binding:"required"`
	Signature   string    `json:"razorpay_signature" binding:"required"`
	UserID      int64     `json:"-"`
	RoomID      int64     `json:"room_id"`
	CheckIn     time.Time `json:"check_in"`
	CheckOut    time.Time `json:"check_out"`
	Guests      int       `json:"guests"`
	TotalAmount float64   `json:"total_amount"`
}
