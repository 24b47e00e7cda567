package models

import "time"

type InterviewMode string

const (
	ModeChat   InterviewMode = "chat"
	ModeVoice  InterviewMode = "voice"
	ModeCoding InterviewMode = "coding"
)

type Sender string

const (
	SenderLily      Sender = "lily"
	SenderCandidate Sender = "candidate"
)

type Message struct {
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Interview.Messages is append-only; it is read back in append order.
type Interview struct {
	ID          string        `json:"id"`
	ApplicantID string        `json:"applicant_id"`
	RoleID      string        `json:"role_id"`
	Mode        InterviewMode `json:"mode"`
	Messages    []Message     `json:"messages"`
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at"`
}
