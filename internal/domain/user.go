package domain

import "time"

// User is the domain model for registered riders. The three privilege flags
// gate administrative access and are flipped only through the maintenance
// interface, never by request handlers.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	IsAdmin      bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
