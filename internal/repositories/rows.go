package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"alfredoptarigan/ai-recruiter/internal/models"
)

var (
	// ErrNotFound is returned when no document matches the requested id.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidID is returned when an id is not a well-formed document id.
	ErrInvalidID = errors.New("invalid document id")
)

type roleRow struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Title        string                      `gorm:"type:text;not null"`
	Department   *string                     `gorm:"type:text"`
	Location     *string                     `gorm:"type:text"`
	Level        *string                     `gorm:"type:text"`
	Description  string                      `gorm:"type:text;not null"`
	Requirements datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt    time.Time
}

func (roleRow) TableName() string {
	return "roles"
}

type applicantRow struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"type:text;not null"`
	Email          string    `gorm:"type:text;not null"`
	ResumeText     *string   `gorm:"type:text"`
	SelectedRoleID *string   `gorm:"type:text"`
	Status         string    `gorm:"type:text;not null;default:'applied'"`
	CreatedAt      time.Time
}

func (applicantRow) TableName() string {
	return "applicants"
}

type interviewRow struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey"`
	ApplicantID string       `gorm:"type:text"`
	RoleID      string       `gorm:"type:text"`
	Mode        string       `gorm:"type:text;not null;default:'chat'"`
	Messages    []messageRow `gorm:"foreignKey:InterviewID"`
	StartedAt   time.Time
	CompletedAt *time.Time
}

func (interviewRow) TableName() string {
	return "interviews"
}

// messageRow is one entry of an interview transcript. Seq orders the
// transcript, so an append is a single insert.
type messageRow struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement"`
	InterviewID uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender      string    `gorm:"type:text;not null"`
	Text        string    `gorm:"type:text"`
	Timestamp   time.Time
}

func (messageRow) TableName() string {
	return "interview_messages"
}

type resultRow struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	InterviewID    string    `gorm:"type:text"`
	Communication  int       `gorm:"not null"`
	ProblemSolving int       `gorm:"not null"`
	Technical      int       `gorm:"not null"`
	Summary        string    `gorm:"type:text"`
	CreatedAt      time.Time
}

func (resultRow) TableName() string {
	return "results"
}

// AutoMigrate creates or updates every collection table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&roleRow{},
		&applicantRow{},
		&interviewRow{},
		&messageRow{},
		&resultRow{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q: %w", id, ErrInvalidID)
	}
	return parsed, nil
}

func toRoleRow(role *models.Role) roleRow {
	requirements := role.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return roleRow{
		Title:        role.Title,
		Department:   role.Department,
		Location:     role.Location,
		Level:        role.Level,
		Description:  role.Description,
		Requirements: datatypes.JSONSlice[string](requirements),
		CreatedAt:    role.CreatedAt,
	}
}

func fromRoleRow(row roleRow) models.Role {
	requirements := []string(row.Requirements)
	if requirements == nil {
		requirements = []string{}
	}
	return models.Role{
		ID:           row.ID.String(),
		Title:        row.Title,
		Department:   row.Department,
		Location:     row.Location,
		Level:        row.Level,
		Description:  row.Description,
		Requirements: requirements,
		CreatedAt:    row.CreatedAt,
	}
}

func toApplicantRow(applicant *models.Applicant) applicantRow {
	status := applicant.Status
	if status == "" {
		status = models.ApplicantApplied
	}
	return applicantRow{
		Name:           applicant.Name,
		Email:          applicant.Email,
		ResumeText:     applicant.ResumeText,
		SelectedRoleID: applicant.SelectedRoleID,
		Status:         string(status),
		CreatedAt:      applicant.CreatedAt,
	}
}

func fromApplicantRow(row applicantRow) models.Applicant {
	return models.Applicant{
		ID:             row.ID.String(),
		Name:           row.Name,
		Email:          row.Email,
		ResumeText:     row.ResumeText,
		SelectedRoleID: row.SelectedRoleID,
		Status:         models.ApplicantStatus(row.Status),
		CreatedAt:      row.CreatedAt,
	}
}

func toMessageRow(interviewID uuid.UUID, msg models.Message) messageRow {
	return messageRow{
		InterviewID: interviewID,
		Sender:      string(msg.Sender),
		Text:        msg.Text,
		Timestamp:   msg.Timestamp,
	}
}

func fromMessageRow(row messageRow) models.Message {
	return models.Message{
		Sender:    models.Sender(row.Sender),
		Text:      row.Text,
		Timestamp: row.Timestamp,
	}
}

func toInterviewRow(interview *models.Interview) interviewRow {
	mode := interview.Mode
	if mode == "" {
		mode = models.ModeChat
	}
	return interviewRow{
		ApplicantID: interview.ApplicantID,
		RoleID:      interview.RoleID,
		Mode:        string(mode),
		StartedAt:   interview.StartedAt,
		CompletedAt: interview.CompletedAt,
	}
}

func fromInterviewRow(row interviewRow) models.Interview {
	messages := make([]models.Message, 0, len(row.Messages))
	for _, m := range row.Messages {
		messages = append(messages, fromMessageRow(m))
	}
	return models.Interview{
		ID:          row.ID.String(),
		ApplicantID: row.ApplicantID,
		RoleID:      row.RoleID,
		Mode:        models.InterviewMode(row.Mode),
		Messages:    messages,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
}

func toResultRow(result *models.Result) resultRow {
	return resultRow{
		InterviewID:    result.InterviewID,
		Communication:  clampScore(result.Communication),
		ProblemSolving: clampScore(result.ProblemSolving),
		Technical:      clampScore(result.Technical),
		Summary:        result.Summary,
		CreatedAt:      result.CreatedAt,
	}
}

func fromResultRow(row resultRow) models.Result {
	return models.Result{
		ID:             row.ID.String(),
		InterviewID:    row.InterviewID,
		Communication:  row.Communication,
		ProblemSolving: row.ProblemSolving,
		Technical:      row.Technical,
		Summary:        row.Summary,
		CreatedAt:      row.CreatedAt,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
