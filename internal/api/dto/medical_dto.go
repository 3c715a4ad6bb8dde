package dto

import "time"

// MedicalHelpRequest payload for requesting assistance.
type MedicalHelpRequest struct {
	Problem     string `json:"problem"`
	Description string `json:"description"`
}

// MedicalHelpResponse is the wire shape of an assistance request.
type MedicalHelpResponse struct {
	ID          int64                         `json:"id"`
	UserID      *int64                        `json:"user_id,omitempty"`
	Problem     string                        `json:"problem"`
	Description string                        `json:"description"`
	CreatedAt   time.Time                     `json:"created_at"`
	Solutions   []MedicalHelpSolutionResponse `json:"solutions,omitempty"`
}

// MedicalHelpSolutionRequest payload for posting a solution.
type MedicalHelpSolutionRequest struct {
	Solution string `json:"solution"`
}

// MedicalHelpSolutionResponse is the wire shape of a solution.
type MedicalHelpSolutionResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Solution  string    `json:"solution"`
	CreatedAt time.Time `json:"created_at"`
}
