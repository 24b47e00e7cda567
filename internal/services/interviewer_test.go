package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"alfredoptarigan/ai-recruiter/internal/models"
	"alfredoptarigan/ai-recruiter/internal/repositories"
	"alfredoptarigan/ai-recruiter/internal/testutil"
)

func TestReplyFor(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "frontend keyword", message: "I build React apps", expected: FrontendReply},
		{name: "frontend uppercase", message: "FRONTEND all day", expected: FrontendReply},
		{name: "ui substring", message: "I like building things", expected: FrontendReply},
		{name: "backend keyword", message: "mostly python services", expected: BackendReply},
		{name: "api keyword", message: "I designed an API gateway", expected: BackendReply},
		{name: "frontend wins ties", message: "I love React and also Python", expected: FrontendReply},
		{name: "no keyword", message: "I enjoy hiking", expected: GenericReply},
		{name: "empty", message: "", expected: GenericReply},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ReplyFor(tt.message))
		})
	}
}

func TestInterviewService_StartAndChat(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInterviewRepository(testutil.NewDB(t))
	svc := NewInterviewService(repo, zaptest.NewLogger(t))

	id, err := svc.Start(ctx, "applicant-1", "role-1")
	require.NoError(t, err)

	reply := svc.Chat(ctx, id, "  I enjoy hiking  ")
	assert.Equal(t, GenericReply, reply)

	reply = svc.Chat(ctx, id, "Mostly backend work")
	assert.Equal(t, BackendReply, reply)

	interview, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "applicant-1", interview.ApplicantID)
	assert.Equal(t, "role-1", interview.RoleID)
	assert.Equal(t, models.ModeChat, interview.Mode)

	require.Len(t, interview.Messages, 5)
	assert.Equal(t, models.Message{Sender: models.SenderLily, Text: Greeting}, stripTime(interview.Messages[0]))
	assert.Equal(t, models.Message{Sender: models.SenderCandidate, Text: "I enjoy hiking"}, stripTime(interview.Messages[1]))
	assert.Equal(t, models.Message{Sender: models.SenderLily, Text: GenericReply}, stripTime(interview.Messages[2]))
	assert.Equal(t, models.Message{Sender: models.SenderCandidate, Text: "Mostly backend work"}, stripTime(interview.Messages[3]))
	assert.Equal(t, models.Message{Sender: models.SenderLily, Text: BackendReply}, stripTime(interview.Messages[4]))
}

// Chat persistence is fire-and-forget: losing the transcript write must not
// cost the candidate their reply.
func TestInterviewService_ChatReplyWhenAppendFails(t *testing.T) {
	ctx := context.Background()

	live := NewInterviewService(repositories.NewInterviewRepository(testutil.NewDB(t)), zaptest.NewLogger(t))
	assert.Equal(t, FrontendReply, live.Chat(ctx, "not-a-uuid", "react"))
	assert.Equal(t, BackendReply, live.Chat(ctx, "0b7c2f3e-8d52-4a7e-9a56-2d1f6f0e9c11", "api"))

	down := NewInterviewService(repositories.NewInterviewRepository(testutil.NewClosedDB(t)), zaptest.NewLogger(t))
	assert.Equal(t, GenericReply, down.Chat(ctx, "0b7c2f3e-8d52-4a7e-9a56-2d1f6f0e9c11", "hiking"))
}

func TestInterviewService_StartCoding(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewInterviewRepository(testutil.NewDB(t))
	svc := NewInterviewService(repo, zaptest.NewLogger(t))

	id, err := svc.Start(ctx, "a", "r")
	require.NoError(t, err)

	starter, err := svc.StartCoding(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, StarterLanguage, starter.Language)
	assert.Contains(t, starter.StarterCode, "reverse")

	interview, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.ModeCoding, interview.Mode)

	starter, err = svc.StartCoding(ctx, "0b7c2f3e-8d52-4a7e-9a56-2d1f6f0e9c11")
	require.NoError(t, err)
	assert.Equal(t, StarterCode, starter.StarterCode)

	_, err = svc.StartCoding(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repositories.ErrInvalidID)
}

func TestInterviewService_StartCodingStoreDown(t *testing.T) {
	svc := NewInterviewService(repositories.NewInterviewRepository(testutil.NewClosedDB(t)), zaptest.NewLogger(t))

	_, err := svc.StartCoding(context.Background(), "0b7c2f3e-8d52-4a7e-9a56-2d1f6f0e9c11")
	assert.Error(t, err)
}

func stripTime(m models.Message) models.Message {
	return models.Message{Sender: m.Sender, Text: m.Text}
}
