package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-recruiter/internal/models"
)

type ApplicantRepository interface {
	Create(ctx context.Context, applicant *models.Applicant) (string, error)
	List(ctx context.Context, limit int) ([]models.Applicant, error)
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

func (r *applicantRepository) Create(ctx context.Context, applicant *models.Applicant) (string, error) {
	row := toApplicantRow(applicant)
	row.ID = uuid.New()

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("failed to create applicant: %w", err)
	}

	return row.ID.String(), nil
}

// List returns up to limit applicants in the store's default order.
func (r *applicantRepository) List(ctx context.Context, limit int) ([]models.Applicant, error) {
	var rows []applicantRow
	if err := r.db.WithContext(ctx).Limit(limit).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	applicants := make([]models.Applicant, 0, len(rows))
	for _, row := range rows {
		applicants = append(applicants, fromApplicantRow(row))
	}
	return applicants, nil
}
