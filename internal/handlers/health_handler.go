package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/services"
)

type HealthHandler struct {
	diagnostics services.DiagnosticsService
}

func NewHealthHandler(diagnostics services.DiagnosticsService) *HealthHandler {
	return &HealthHandler{
		diagnostics: diagnostics,
	}
}

// HandleRoot handles GET /
func (h *HealthHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: "Lily backend running"})
}

// HandleDiagnostics handles GET /test
func (h *HealthHandler) HandleDiagnostics(c *fiber.Ctx) error {
	return c.JSON(h.diagnostics.Check(c.UserContext()))
}
