package domain

import "errors"

var (
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrAlreadyCancelled     = errors.New("booking already cancelled")
	ErrPaymentFinal         = errors.New("payment status is final")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
