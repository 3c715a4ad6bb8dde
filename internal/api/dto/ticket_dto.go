package dto

import "time"

// CreateTicketRequest payload for ticket issuance.
type CreateTicketRequest struct {
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	ID          int64     `json:"id"`
	TicketID    string    `json:"ticket_id"`
	Destination string    `json:"destination"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// TicketWithOwnerResponse adds the owning user to a ticket.
type TicketWithOwnerResponse struct {
	TicketResponse
	Owner UserSummary `json:"owner"`
}
