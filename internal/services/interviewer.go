package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
)

const (
	Greeting = "Hi! I’m Lily. Tell me about yourself."

	FrontendReply = "Great frontend background. How do you manage state at scale?"
	BackendReply  = "Nice backend focus. How do you design resilient APIs?"
	GenericReply  = "Thanks! Can you share a challenging project you led?"

	StarterLanguage = "javascript"
	StarterCode     = "// Write a function to reverse a string\nfunction solve(s){\n  return s.split('').reverse().join('')\n}\nconsole.log(solve('hello'))\n"
)

var (
	frontendKeywords = []string{"react", "frontend", "ui"}
	backendKeywords  = []string{"python", "backend", "api"}
)

type InterviewService interface {
	Start(ctx context.Context, applicantID, roleID string) (string, error)
	Chat(ctx context.Context, interviewID, message string) string
	StartCoding(ctx context.Context, interviewID string) (*models.CodingStartResponse, error)
}

type interviewService struct {
	interviewRepo repositories.InterviewRepository
	log           *zap.Logger
}

func NewInterviewService(interviewRepo repositories.InterviewRepository, log *zap.Logger) InterviewService {
	return &interviewService{
		interviewRepo: interviewRepo,
		log:           log,
	}
}

// ReplyFor picks the canned reply for a candidate message. Frontend keywords
// are checked before backend keywords.
func ReplyFor(message string) string {
	lowered := strings.ToLower(message)
	switch {
	case containsAny(lowered, frontendKeywords):
		return FrontendReply
	case containsAny(lowered, backendKeywords):
		return BackendReply
	default:
		return GenericReply
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// Start implements InterviewService.
func (s *interviewService) Start(ctx context.Context, applicantID, roleID string) (string, error) {
	now := time.Now()
	id, err := s.interviewRepo.Create(ctx, &models.Interview{
		ApplicantID: applicantID,
		RoleID:      roleID,
		Mode:        models.ModeChat,
		StartedAt:   now,
		Messages: []models.Message{
			{Sender: models.SenderLily, Text: Greeting, Timestamp: now},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to start interview: %w", err)
	}

	s.log.Info("🎙️ Interview started",
		zap.String("interview_id", id),
		zap.String("applicant_id", applicantID),
		zap.String("role_id", roleID),
	)
	return id, nil
}

// Chat implements InterviewService. The transcript is written best-effort:
// a failed append is logged and the reply is returned regardless.
func (s *interviewService) Chat(ctx context.Context, interviewID, message string) string {
	text := strings.TrimSpace(message)
	reply := ReplyFor(text)

	turn := []models.Message{
		{Sender: models.SenderCandidate, Text: text, Timestamp: time.Now()},
		{Sender: models.SenderLily, Text: reply, Timestamp: time.Now()},
	}
	for _, msg := range turn {
		if err := s.interviewRepo.AppendMessage(ctx, interviewID, msg); err != nil {
			s.log.Warn("⚠️ Failed to append chat message",
				zap.String("interview_id", interviewID),
				zap.String("sender", string(msg.Sender)),
				zap.Error(err),
			)
		}
	}

	return reply
}

// StartCoding implements InterviewService. An unknown interview is not an
// error; the starter is still handed out.
func (s *interviewService) StartCoding(ctx context.Context, interviewID string) (*models.CodingStartResponse, error) {
	err := s.interviewRepo.UpdateMode(ctx, interviewID, models.ModeCoding)
	switch {
	case err == nil:
		s.log.Info("💻 Coding phase started", zap.String("interview_id", interviewID))
	case errors.Is(err, repositories.ErrNotFound):
		s.log.Debug("coding phase requested for unknown interview", zap.String("interview_id", interviewID))
	default:
		return nil, err
	}

	return &models.CodingStartResponse{
		StarterCode: StarterCode,
		Language:    StarterLanguage,
	}, nil
}
