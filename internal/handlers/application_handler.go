package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
	"alfredoptarigan/ai-recruiter/internal/services"
)

// suggestedRoles is static; it does not look at the application.
var suggestedRoles = []string{"Frontend Engineer", "Backend Engineer"}

type ApplicationHandler struct {
	applicantRepo repositories.ApplicantRepository
	resumeService services.ResumeService
}

func NewApplicationHandler(
	applicantRepo repositories.ApplicantRepository,
	resumeService services.ResumeService,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicantRepo: applicantRepo,
		resumeService: resumeService,
	}
}

// HandleApply handles POST /api/apply
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	var req models.ApplyRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	if err := req.Validate(); err != nil {
		return fromValidator(err)
	}

	id, err := h.applicantRepo.Create(c.UserContext(), &models.Applicant{
		Name:           req.Name,
		Email:          req.Email,
		ResumeText:     req.ResumeText,
		SelectedRoleID: req.RoleID,
		Status:         models.ApplicantApplied,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		return err
	}

	return c.JSON(models.ApplyResponse{
		ApplicantID:    id,
		SuggestedRoles: append([]string(nil), suggestedRoles...),
	})
}

// HandleUploadResume handles POST /api/upload-resume
func (h *ApplicationHandler) HandleUploadResume(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return &ErrValidation{Field: "file", Message: "file is required"}
	}

	text, err := h.resumeService.ExtractText(file)
	if err != nil {
		if errors.Is(err, services.ErrFileTooLarge) {
			return &ErrValidation{Field: "file", Message: err.Error()}
		}
		return err
	}

	return c.JSON(models.UploadResumeResponse{ResumeText: text})
}
