package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-recruiter/internal/models"
)

type InterviewRepository interface {
	Create(ctx context.Context, interview *models.Interview) (string, error)
	FindByID(ctx context.Context, id string) (*models.Interview, error)
	AppendMessage(ctx context.Context, id string, msg models.Message) error
	UpdateMode(ctx context.Context, id string, mode models.InterviewMode) error
	List(ctx context.Context, limit int) ([]models.Interview, error)
}

type interviewRepository struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &interviewRepository{db: db}
}

func orderedMessages(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

// Create stores the interview together with its opening messages.
func (r *interviewRepository) Create(ctx context.Context, interview *models.Interview) (string, error) {
	row := toInterviewRow(interview)
	row.ID = uuid.New()
	for _, msg := range interview.Messages {
		row.Messages = append(row.Messages, toMessageRow(row.ID, msg))
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("failed to create interview: %w", err)
	}

	return row.ID.String(), nil
}

func (r *interviewRepository) FindByID(ctx context.Context, id string) (*models.Interview, error) {
	interviewID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var row interviewRow
	err = r.db.WithContext(ctx).
		Preload("Messages", orderedMessages).
		Where("id = ?", interviewID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("interview %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find interview: %w", err)
	}

	interview := fromInterviewRow(row)
	return &interview, nil
}

// AppendMessage adds one message to the end of the transcript. Appends are
// independent inserts; concurrent callers interleave in commit order.
func (r *interviewRepository) AppendMessage(ctx context.Context, id string, msg models.Message) error {
	interviewID, err := parseID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&interviewRow{}).Where("id = ?", interviewID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to find interview: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("interview %s: %w", id, ErrNotFound)
	}

	row := toMessageRow(interviewID, msg)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}

	return nil
}

func (r *interviewRepository) UpdateMode(ctx context.Context, id string, mode models.InterviewMode) error {
	interviewID, err := parseID(id)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&interviewRow{}).
		Where("id = ?", interviewID).
		Update("mode", string(mode))

	if result.Error != nil {
		return fmt.Errorf("failed to update mode: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("interview %s: %w", id, ErrNotFound)
	}

	return nil
}

// List returns up to limit interviews with their transcripts.
func (r *interviewRepository) List(ctx context.Context, limit int) ([]models.Interview, error) {
	var rows []interviewRow
	err := r.db.WithContext(ctx).
		Preload("Messages", orderedMessages).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list interviews: %w", err)
	}

	interviews := make([]models.Interview, 0, len(rows))
	for _, row := range rows {
		interviews = append(interviews, fromInterviewRow(row))
	}
	return interviews, nil
}
