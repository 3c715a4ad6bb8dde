package domain

import "time"

// QuizResult records a rider's score on the safety quiz.
type QuizResult struct {
	ID          int64
	UserID      int64
	Score       int
	Total       int
	SubmittedAt time.Time
}
