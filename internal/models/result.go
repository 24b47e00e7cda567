package models

import "time"

// Result scores are kept in [0,100].
type Result struct {
	ID             string    `json:"id"`
	InterviewID    string    `json:"interview_id"`
	Communication  int       `json:"communication"`
	ProblemSolving int       `json:"problem_solving"`
	Technical      int       `json:"technical"`
	Summary        string    `json:"summary"`
	CreatedAt      time.Time `json:"created_at"`
}
