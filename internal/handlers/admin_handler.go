package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
)

const adminListLimit = 50

type AdminHandler struct {
	applicantRepo repositories.ApplicantRepository
	interviewRepo repositories.InterviewRepository
	log           *zap.Logger
}

func NewAdminHandler(
	applicantRepo repositories.ApplicantRepository,
	interviewRepo repositories.InterviewRepository,
	log *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		applicantRepo: applicantRepo,
		interviewRepo: interviewRepo,
		log:           log,
	}
}

// HandleApplicants handles GET /api/admin/applicants
func (h *AdminHandler) HandleApplicants(c *fiber.Ctx) error {
	applicants, err := h.applicantRepo.List(c.UserContext(), adminListLimit)
	if err != nil {
		h.log.Warn("⚠️ Failed to list applicants", zap.Error(err))
		applicants = []models.Applicant{}
	}

	return c.JSON(models.ApplicantListResponse{Applicants: applicants})
}

// HandleInterviews handles GET /api/admin/interviews
func (h *AdminHandler) HandleInterviews(c *fiber.Ctx) error {
	interviews, err := h.interviewRepo.List(c.UserContext(), adminListLimit)
	if err != nil {
		h.log.Warn("⚠️ Failed to list interviews", zap.Error(err))
		interviews = []models.Interview{}
	}

	return c.JSON(models.InterviewListResponse{Interviews: interviews})
}
