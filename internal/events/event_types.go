package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketIssued         EventType = "ticket_issued"
	EventTicketDeleted        EventType = "ticket_deleted"
	EventAlertPublished       EventType = "alert_published"
	EventMedicalHelpRequested EventType = "medical_help_requested"
)

// Event represents a domain event emitted by services.
type Event struct {
	Type      EventType   `json:"type"`
	UserID    *int64      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketIssuedPayload payload.
type TicketIssuedPayload struct {
	TicketID    int64   `json:"ticket_id"`
	ExternalKey string  `json:"external_key"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	TicketID int64 `json:"ticket_id"`
}

// AlertPublishedPayload payload.
type AlertPublishedPayload struct {
	AlertID  int64  `json:"alert_id"`
	Title    string `json:"title"`
	IsActive bool   `json:"is_active"`
}

// MedicalHelpRequestedPayload payload.
type MedicalHelpRequestedPayload struct {
	RequestID int64  `json:"request_id"`
	Problem   string `json:"problem"`
}
