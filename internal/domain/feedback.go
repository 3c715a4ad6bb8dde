package domain

import "time"

// Feedback is a rider rating with a free-text comment.
type Feedback struct {
	ID        int64
	UserID    int64
	Rating    int
	Comment   string
	CreatedAt time.Time
}
