package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
	"alfredoptarigan/ai-recruiter/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	judge            services.CodeJudge
	evaluator        services.EvaluatorService
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	judge services.CodeJudge,
	evaluator services.EvaluatorService,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		judge:            judge,
		evaluator:        evaluator,
	}
}

// HandleStart handles POST /api/interview/start?applicant_id&role_id
func (h *InterviewHandler) HandleStart(c *fiber.Ctx) error {
	applicantID, err := requiredQuery(c, "applicant_id")
	if err != nil {
		return err
	}
	roleID, err := requiredQuery(c, "role_id")
	if err != nil {
		return err
	}

	id, err := h.interviewService.Start(c.UserContext(), applicantID, roleID)
	if err != nil {
		return err
	}

	return c.JSON(models.StartInterviewResponse{InterviewID: id})
}

// HandleChat handles POST /api/interview/chat
func (h *InterviewHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	if err := req.Validate(); err != nil {
		return fromValidator(err)
	}

	reply := h.interviewService.Chat(c.UserContext(), req.InterviewID, *req.Message)
	return c.JSON(models.ChatResponse{Reply: reply})
}

// HandleStartCoding handles POST /api/interview/coding/start?interview_id
func (h *InterviewHandler) HandleStartCoding(c *fiber.Ctx) error {
	interviewID, err := requiredQuery(c, "interview_id")
	if err != nil {
		return err
	}

	starter, err := h.interviewService.StartCoding(c.UserContext(), interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidID) {
			return &ErrValidation{Field: "interview_id", Message: "interview_id is not a valid id"}
		}
		return err
	}

	return c.JSON(starter)
}

// HandleRunCode handles POST /api/interview/coding/run
func (h *InterviewHandler) HandleRunCode(c *fiber.Ctx) error {
	var req models.CodingRunRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	if err := req.Validate(); err != nil {
		return fromValidator(err)
	}

	return c.JSON(models.CodingRunResponse{Stdout: h.judge.Run(req)})
}

// HandleComplete handles POST /api/interview/complete?interview_id
func (h *InterviewHandler) HandleComplete(c *fiber.Ctx) error {
	interviewID, err := requiredQuery(c, "interview_id")
	if err != nil {
		return err
	}

	resp, err := h.evaluator.CompleteInterview(c.UserContext(), interviewID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}
