package dto

import "time"

// FeedbackRequest payload for submitting feedback.
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FeedbackResponse is the wire shape of feedback.
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ComplaintRequest payload for filing a complaint.
type ComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"`
}

// ComplaintResponse is the wire shape of a complaint.
type ComplaintResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Urgency     string    `json:"urgency"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submitted_at"`
}
