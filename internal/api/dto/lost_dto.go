package dto

import "time"

// LostItemRequest payload for posting a found item.
type LostItemRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	Location    string  `json:"location"`
	Status      string  `json:"status"`
}

// LostItemResponse is the wire shape of a found item.
type LostItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"image_url,omitempty"`
	Location    string  `json:"location"`
	Status      string  `json:"status"`
	PostedBy    int64   `json:"posted_by"`
}

// LostReportRequest payload for filing a lost-property report.
type LostReportRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
}

// LostReportResponse is the wire shape of a lost-property report.
type LostReportResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Contact     string    `json:"contact"`
	SubmittedAt time.Time `json:"submitted_at"`
}
