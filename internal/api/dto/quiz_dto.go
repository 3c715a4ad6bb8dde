package dto

import "time"

// QuizSubmitRequest payload for submitting a quiz score.
type QuizSubmitRequest struct {
	Score int `json:"score"`
	Total int `json:"total"`
}

// QuizResultResponse is the wire shape of a quiz result.
type QuizResultResponse struct {
	ID          int64     `json:"id"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`
}
