package domain

import "time"

// MedicalHelp is a request for medical assistance at a station. UserID is
// optional: anonymous requests are accepted.
type MedicalHelp struct {
	ID          int64
	UserID      *int64
	Problem     string
	Description string
	CreatedAt   time.Time
}

// MedicalHelpSolution is a response posted against a medical help request.
type MedicalHelpSolution struct {
	ID            int64
	MedicalHelpID int64
	UserID        int64
	Solution      string
	CreatedAt     time.Time
}
