package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"alfredoptarigan/ai-recruiter/internal/repositories"
	"alfredoptarigan/ai-recruiter/internal/testutil"
)

func TestEvaluatorService_CompleteInterview(t *testing.T) {
	ctx := context.Background()
	resultRepo := repositories.NewResultRepository(testutil.NewDB(t))
	svc := NewEvaluatorService(resultRepo, zaptest.NewLogger(t))

	resp, err := svc.CompleteInterview(ctx, "any-interview")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ResultID)
	assert.Equal(t, 82, resp.Communication)
	assert.Equal(t, 76, resp.ProblemSolving)
	assert.Equal(t, 88, resp.Technical)
	assert.Equal(t, EvaluationSummary, resp.Summary)

	stored, err := resultRepo.FindByID(ctx, resp.ResultID)
	require.NoError(t, err)
	assert.Equal(t, "any-interview", stored.InterviewID)
	assert.Equal(t, 88, stored.Technical)
}

func TestEvaluatorService_StoreDown(t *testing.T) {
	svc := NewEvaluatorService(repositories.NewResultRepository(testutil.NewClosedDB(t)), zaptest.NewLogger(t))

	resp, err := svc.CompleteInterview(context.Background(), "any-interview")
	assert.Error(t, err)
	assert.Nil(t, resp)
}
