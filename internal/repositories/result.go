package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-recruiter/internal/models"
)

type ResultRepository interface {
	Create(ctx context.Context, result *models.Result) (string, error)
	FindByID(ctx context.Context, id string) (*models.Result, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// Create stores the result with every score clamped to [0,100].
func (r *resultRepository) Create(ctx context.Context, result *models.Result) (string, error) {
	row := toResultRow(result)
	row.ID = uuid.New()

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("failed to create result: %w", err)
	}

	return row.ID.String(), nil
}

func (r *resultRepository) FindByID(ctx context.Context, id string) (*models.Result, error) {
	resultID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var row resultRow
	if err := r.db.WithContext(ctx).Where("id = ?", resultID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("result %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find result: %w", err)
	}

	result := fromResultRow(row)
	return &result, nil
}
