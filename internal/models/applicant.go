package models

import "time"

type ApplicantStatus string

const (
	ApplicantApplied      ApplicantStatus = "applied"
	ApplicantInterviewing ApplicantStatus = "interviewing"
	ApplicantCompleted    ApplicantStatus = "completed"
)

type Applicant struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	ResumeText     *string         `json:"resume_text"`
	SelectedRoleID *string         `json:"selected_role_id"`
	Status         ApplicantStatus `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}
