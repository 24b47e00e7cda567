package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/ai-recruiter/internal/models"
)

type RoleRepository interface {
	Create(ctx context.Context, role *models.Role) (string, error)
	FindAll(ctx context.Context) ([]models.Role, error)
	FindByID(ctx context.Context, id string) (*models.Role, error)
	Count(ctx context.Context) (int64, error)
}

type roleRepository struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

// Create implements RoleRepository.
func (r *roleRepository) Create(ctx context.Context, role *models.Role) (string, error) {
	row := toRoleRow(role)
	row.ID = uuid.New()

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", fmt.Errorf("failed to create role: %w", err)
	}

	return row.ID.String(), nil
}

// FindAll implements RoleRepository.
func (r *roleRepository) FindAll(ctx context.Context) ([]models.Role, error) {
	var rows []roleRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	roles := make([]models.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, fromRoleRow(row))
	}
	return roles, nil
}

// FindByID implements RoleRepository.
func (r *roleRepository) FindByID(ctx context.Context, id string) (*models.Role, error) {
	roleID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var row roleRow
	if err := r.db.WithContext(ctx).Where("id = ?", roleID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("role %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}

	role := fromRoleRow(row)
	return &role, nil
}

// Count implements RoleRepository.
func (r *roleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&roleRow{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count roles: %w", err)
	}
	return count, nil
}
