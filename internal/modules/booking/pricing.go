package booking

import (
	"math"
	"time"

	"stayelo/internal/domain"
)

// Nights is the number of nights billed for a stay: the day count between
// check-in and check-out, rounded up. A non-positive result is rejected.
func Nights(checkIn, checkOut time.Time) (int, error) {
	if !checkOut.After(checkIn) {
		return 0, ErrInvalidRange
	}
	n := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if n <= 0 {
		return 0, ErrInvalidRange
	}
	return n, nil
}

// TotalPrice computes nights * nightly rate.
func TotalPrice(room *domain.Room, checkIn, checkOut time.Time) (float64, error) {
	n, err := Nights(checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	return float64(n) * room.Price, nil
}
