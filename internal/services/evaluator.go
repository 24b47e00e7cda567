package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
)

const (
	CommunicationScore  = 82
	ProblemSolvingScore = 76
	TechnicalScore      = 88
	EvaluationSummary   = "Strong fundamentals, clear communication. Consider deeper system design practice."
)

type EvaluatorService interface {
	CompleteInterview(ctx context.Context, interviewID string) (*models.CompleteResponse, error)
}

type evaluatorService struct {
	resultRepo repositories.ResultRepository
	log        *zap.Logger
}

func NewEvaluatorService(resultRepo repositories.ResultRepository, log *zap.Logger) EvaluatorService {
	return &evaluatorService{
		resultRepo: resultRepo,
		log:        log,
	}
}

// CompleteInterview records the fixed scorecard for an interview. The
// interview itself is neither read nor validated.
func (e *evaluatorService) CompleteInterview(ctx context.Context, interviewID string) (*models.CompleteResponse, error) {
	result := &models.Result{
		InterviewID:    interviewID,
		Communication:  CommunicationScore,
		ProblemSolving: ProblemSolvingScore,
		Technical:      TechnicalScore,
		Summary:        EvaluationSummary,
		CreatedAt:      time.Now(),
	}

	resultID, err := e.resultRepo.Create(ctx, result)
	if err != nil {
		return nil, fmt.Errorf("failed to save results: %w", err)
	}

	e.log.Info("✅ Evaluation recorded",
		zap.String("interview_id", interviewID),
		zap.String("result_id", resultID),
	)

	return &models.CompleteResponse{
		ResultID:       resultID,
		Communication:  result.Communication,
		ProblemSolving: result.ProblemSolving,
		Technical:      result.Technical,
		Summary:        result.Summary,
	}, nil
}
