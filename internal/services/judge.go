package services

import (
	"strings"

	"alfredoptarigan/ai-recruiter/internal/models"
)

const (
	JudgeSuccessOutput = "All tests passed."
	JudgeCompileError  = "Compilation error: Unexpected token"
	JudgeDefaultOutput = "Running tests...\nTest 1: PASSED\nTest 2: PASSED\nAll good!"
)

// CodeJudge grades a submission without running it.
type CodeJudge interface {
	Run(req models.CodingRunRequest) string
}

type keywordJudge struct{}

func NewCodeJudge() CodeJudge {
	return &keywordJudge{}
}

// Run implements CodeJudge. "reverse" wins over "error".
func (j *keywordJudge) Run(req models.CodingRunRequest) string {
	var code string
	if req.Code != nil {
		code = strings.ToLower(*req.Code)
	}
	switch {
	case strings.Contains(code, "reverse"):
		return JudgeSuccessOutput
	case strings.Contains(code, "error"):
		return JudgeCompileError
	default:
		return JudgeDefaultOutput
	}
}
