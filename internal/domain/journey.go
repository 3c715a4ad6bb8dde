package domain

import "time"

// Journey records a single trip. PaymentID is a weak reference: deleting the
// payment clears it without deleting the journey.
type Journey struct {
	ID         int64
	UserID     int64
	Route      string
	TravelDate time.Time
	Fare       float64
	PaymentID  *int64
}
