package dto

import "time"

// AlertRequest payload for alert create/update.
type AlertRequest struct {
	Title             string `json:"title"`
	Message           string `json:"message"`
	AffectedStations  string `json:"affected_stations"`
	EstimatedDuration string `json:"estimated_duration"`
	AlternativeRoutes string `json:"alternative_routes"`
	IsActive          bool   `json:"is_active"`
}

// AlertResponse is the wire shape of a service alert.
type AlertResponse struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Message           string    `json:"message"`
	AffectedStations  string    `json:"affected_stations"`
	EstimatedDuration string    `json:"estimated_duration"`
	AlternativeRoutes string    `json:"alternative_routes"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}
