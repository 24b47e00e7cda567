package services

import (
	"context"
	"fmt"
	"time"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
)

type RoleSeeder interface {
	// Seed inserts the default catalog when no role exists and reports how many
	// roles it inserted.
	Seed(ctx context.Context) (int, error)
}

type roleSeeder struct {
	roleRepo repositories.RoleRepository
}

func NewRoleSeeder(roleRepo repositories.RoleRepository) RoleSeeder {
	return &roleSeeder{roleRepo: roleRepo}
}

func strPtr(s string) *string {
	return &s
}

// DefaultRoles is the catalog inserted into an empty store.
func DefaultRoles() []models.Role {
	return []models.Role{
		{
			Title:        "Frontend Engineer",
			Department:   strPtr("Engineering"),
			Location:     strPtr("Remote"),
			Level:        strPtr("Mid"),
			Description:  "Build modern web UIs with React, TypeScript, and Tailwind.",
			Requirements: []string{"React", "TypeScript", "CSS", "Testing"},
		},
		{
			Title:        "Backend Engineer",
			Department:   strPtr("Engineering"),
			Location:     strPtr("Remote"),
			Level:        strPtr("Senior"),
			Description:  "Design APIs and services with Node/Go/Python.",
			Requirements: []string{"API design", "Databases", "Cloud", "Testing"},
		},
		{
			Title:        "Data Analyst",
			Department:   strPtr("Data"),
			Location:     strPtr("Hybrid"),
			Level:        strPtr("Junior"),
			Description:  "Analyze data and build dashboards.",
			Requirements: []string{"SQL", "Python", "Visualization"},
		},
	}
}

// Seed implements RoleSeeder.
func (s *roleSeeder) Seed(ctx context.Context) (int, error) {
	count, err := s.roleRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check role catalog: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	inserted := 0
	for _, role := range DefaultRoles() {
		role.CreatedAt = time.Now()
		if _, err := s.roleRepo.Create(ctx, &role); err != nil {
			return inserted, fmt.Errorf("failed to seed role %q: %w", role.Title, err)
		}
		inserted++
	}

	return inserted, nil
}
