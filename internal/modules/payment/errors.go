package payment

import "errors"

var (
	ErrMissingField     = errors.New("missing required payment field")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrRoomUnavailable  = errors.New("room unavailable for the selected dates")
	ErrNotConfigured    = errors.New("payment gateway credentials are not configured")
)
