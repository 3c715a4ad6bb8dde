package domain

import "time"

// Ticket is a fare ticket issued to a user. ExternalKey is the globally
// unique token carried in QR payloads and external references; it is assigned
// from a collision-resistant generator at creation and is independent of the
// numeric row id. A ticket has no lifecycle states: it exists from creation
// until deletion.
type Ticket struct {
	ID          int64
	UserID      int64
	ExternalKey string
	Destination string
	Price       float64
	CreatedAt   time.Time
}

// TicketWithOwner pairs a ticket with a summary of its owning user, for the
// unrestricted listing endpoint.
type TicketWithOwner struct {
	Ticket
	OwnerName  string
	OwnerEmail string
}
