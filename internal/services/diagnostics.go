package services

import (
	"context"

	"alfredoptarigan/ai-recruiter/internal/config"
	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
)

const (
	statusRunning      = "✅ Running"
	statusConnected    = "✅ Connected"
	statusSet          = "✅ Set"
	statusNotSet       = "❌ Not Set"
	statusProblemLabel = "⚠️ "

	maxProbeErrorLen = 60
)

type DiagnosticsService interface {
	Check(ctx context.Context) models.DiagnosticsResponse
}

type diagnosticsService struct {
	probe repositories.StoreProbe
	db    config.DatabaseConfig
}

func NewDiagnosticsService(probe repositories.StoreProbe, db config.DatabaseConfig) DiagnosticsService {
	return &diagnosticsService{
		probe: probe,
		db:    db,
	}
}

// Check never fails; probe errors are folded into the database status.
func (d *diagnosticsService) Check(ctx context.Context) models.DiagnosticsResponse {
	response := models.DiagnosticsResponse{
		Backend:      statusRunning,
		Database:     statusConnected,
		DatabaseURL:  setStatus(d.db.URL),
		DatabaseName: setStatus(d.db.Name),
		Collections:  []string{},
	}

	if err := d.probe.Ping(ctx); err != nil {
		response.Database = statusProblemLabel + truncate(err.Error(), maxProbeErrorLen)
		return response
	}

	collections, err := d.probe.Collections(ctx)
	if err != nil {
		response.Database = statusProblemLabel + truncate(err.Error(), maxProbeErrorLen)
		return response
	}
	response.Collections = collections

	return response
}

func setStatus(value string) string {
	if value != "" {
		return statusSet
	}
	return statusNotSet
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
