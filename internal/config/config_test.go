package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("MAX_FILE_SIZE", "")

	cfg := Load()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Empty(t, cfg.Database.URL)
	assert.Empty(t, cfg.Database.Name)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://lily:secret@db:5432/app")
	t.Setenv("DATABASE_NAME", "recruiter")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("LOG_JSON", "true")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres://lily:secret@db:5432/app", cfg.Database.URL)
	assert.Equal(t, "recruiter", cfg.Database.Name)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Debug)
}

func TestGetDatabaseDSN(t *testing.T) {
	tests := []struct {
		name     string
		database DatabaseConfig
		expected string
	}{
		{
			name: "built from parts",
			database: DatabaseConfig{
				Host: "localhost", Port: "5432", User: "postgres", Password: "pw", DBName: "lily",
			},
			expected: "host=localhost port=5432 user=postgres password=pw dbname=lily sslmode=disable",
		},
		{
			name: "parts with name override",
			database: DatabaseConfig{
				Name: "other", Host: "localhost", Port: "5432", User: "postgres", Password: "pw", DBName: "lily",
			},
			expected: "host=localhost port=5432 user=postgres password=pw dbname=other sslmode=disable",
		},
		{
			name:     "url as is",
			database: DatabaseConfig{URL: "postgres://u:p@db:5432/app?sslmode=disable"},
			expected: "postgres://u:p@db:5432/app?sslmode=disable",
		},
		{
			name:     "url with name override",
			database: DatabaseConfig{URL: "postgres://u:p@db:5432/app?sslmode=disable", Name: "recruiter"},
			expected: "postgres://u:p@db:5432/recruiter?sslmode=disable",
		},
		{
			name:     "key value dsn with name override",
			database: DatabaseConfig{URL: "host=db user=u", Name: "recruiter"},
			expected: "host=db user=u dbname=recruiter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Database: tt.database}
			assert.Equal(t, tt.expected, cfg.GetDatabaseDSN())
		})
	}
}
