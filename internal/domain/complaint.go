package domain

import "time"

// ComplaintUrgency enumerates urgency tiers.
type ComplaintUrgency string

const (
	ComplaintUrgencyLow    ComplaintUrgency = "low"
	ComplaintUrgencyMedium ComplaintUrgency = "medium"
	ComplaintUrgencyHigh   ComplaintUrgency = "high"
)

// ComplaintStatus enumerates complaint lifecycle states.
type ComplaintStatus string

const (
	ComplaintStatusOpen   ComplaintStatus = "open"
	ComplaintStatusClosed ComplaintStatus = "closed"
)

// ValidComplaintUrgency reports whether u is a known urgency tier.
func ValidComplaintUrgency(u ComplaintUrgency) bool {
	switch u {
	case ComplaintUrgencyLow, ComplaintUrgencyMedium, ComplaintUrgencyHigh:
		return true
	}
	return false
}

// Complaint is a rider-submitted service complaint.
type Complaint struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Urgency     ComplaintUrgency
	Status      ComplaintStatus
	SubmittedAt time.Time
}
