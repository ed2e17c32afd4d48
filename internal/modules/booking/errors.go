package booking

import "errors"

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidRange     = errors.New("check-out must be after check-in")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCapacityExceeded = errors.New("guest count exceeds room capacity")
	ErrRoomUnavailable  = errors.New("room unavailable for the selected dates")
	ErrForbidden        = errors.New("forbidden")
)
