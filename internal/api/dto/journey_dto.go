package dto

// JourneyRequest payload for journey create/update. Date uses YYYY-MM-DD.
type JourneyRequest struct {
	Route     string  `json:"route"`
	Date      string  `json:"date"`
	Fare      float64 `json:"fare"`
	PaymentID *int64  `json:"payment_id,omitempty"`
}

// JourneyResponse is the wire shape of a journey.
type JourneyResponse struct {
	ID        int64   `json:"id"`
	Route     string  `json:"route"`
	Date      string  `json:"date"`
	Fare      float64 `json:"fare"`
	PaymentID *int64  `json:"payment_id,omitempty"`
}
