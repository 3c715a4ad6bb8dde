package domain

import "time"

// ServiceAlert is a network-wide notice published by administrators.
type ServiceAlert struct {
	ID                int64
	Title             string
	Message           string
	AffectedStations  string
	EstimatedDuration string
	AlternativeRoutes string
	IsActive          bool
	CreatedAt         time.Time
	CreatedBy         int64
}
