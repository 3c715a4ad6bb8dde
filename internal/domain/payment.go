package domain

import "time"

// PaymentMethod enumerates the accepted payment channels.
type PaymentMethod string

const (
	PaymentMethodBkash  PaymentMethod = "bKash"
	PaymentMethodNagad  PaymentMethod = "Nagad"
	PaymentMethodRocket PaymentMethod = "Rocket"
	PaymentMethodCard   PaymentMethod = "Card"
)

// ValidPaymentMethod reports whether m is one of the accepted channels.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodBkash, PaymentMethodNagad, PaymentMethodRocket, PaymentMethodCard:
		return true
	}
	return false
}

// Payment records a fare payment made by a user. The creation timestamp is
// server-assigned and drives the yearly revenue buckets.
type Payment struct {
	ID        int64
	UserID    int64
	Method    PaymentMethod
	Reference string
	Amount    float64
	CreatedAt time.Time
}
