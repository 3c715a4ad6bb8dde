package dto

import "time"

// PaymentRequest payload for payment create/update.
type PaymentRequest struct {
	Method    string  `json:"method"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
}

// PaymentResponse is the wire shape of a payment.
type PaymentResponse struct {
	ID        int64     `json:"id"`
	Method    string    `json:"method"`
	Reference string    `json:"reference"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
