package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// StoreProbe reports on the health of the document store itself.
type StoreProbe interface {
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)
}

type storeProbe struct {
	db *gorm.DB
}

func NewStoreProbe(db *gorm.DB) StoreProbe {
	return &storeProbe{db: db}
}

func (p *storeProbe) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get connection pool: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	return nil
}

func (p *storeProbe) Collections(ctx context.Context) ([]string, error) {
	tables, err := p.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}

	if tables == nil {
		tables = []string{}
	}
	return tables, nil
}
