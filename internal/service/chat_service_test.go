package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/campushub/student-assist-api/internal/models"
	appErrors "github.com/campushub/student-assist-api/pkg/errors"
)

type mockStudentRepo struct {
	students []models.Student
	err      error
}

func (m *mockStudentRepo) ListAll(ctx context.Context) ([]models.Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.students, nil
}

type mockTranscriptRepo struct {
	entries   []models.TranscriptEntry
	appendErr error
}

func (m *mockTranscriptRepo) Append(ctx context.Context, role, content string) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.entries = append(m.entries, models.TranscriptEntry{Role: role, Content: content})
	return nil
}

func (m *mockTranscriptRepo) List(ctx context.Context) ([]models.TranscriptEntry, error) {
	return m.entries, nil
}

func (m *mockTranscriptRepo) Clear(ctx context.Context) error {
	m.entries = nil
	return nil
}

type mockGateway struct {
	answer      string
	lastRecords string
	lastQuery   string
	calls       int
}

func (m *mockGateway) Ask(ctx context.Context, question, recordsJSON string) string {
	m.calls++
	m.lastQuery = question
	m.lastRecords = recordsJSON
	return m.answer
}

func newChatService(students *mockStudentRepo, transcript *mockTranscriptRepo, gateway *mockGateway) *ChatService {
	return NewChatService(students, transcript, gateway, zap.NewNop(), nil)
}

func TestChatAskEmptyQuestion(t *testing.T) {
	gateway := &mockGateway{answer: "unused"}
	transcript := &mockTranscriptRepo{}
	svc := newChatService(&mockStudentRepo{students: sampleRoster()}, transcript, gateway)

	_, err := svc.Ask(context.Background(), models.Principal{Role: models.RoleHOD}, "   ")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Zero(t, gateway.calls)
	assert.Empty(t, transcript.entries)
}

func TestChatAskNoVisibleRecords(t *testing.T) {
	gateway := &mockGateway{answer: "unused"}
	transcript := &mockTranscriptRepo{}
	svc := newChatService(&mockStudentRepo{students: sampleRoster()}, transcript, gateway)

	principal := models.Principal{Role: models.RoleClassTeacher, ClassAssigned: strPtr("Z")}
	answer, err := svc.Ask(context.Background(), principal, "how is my class doing?")
	require.NoError(t, err)
	assert.Equal(t, NoStudentFound, answer)
	assert.Zero(t, gateway.calls, "gateway must not be consulted on the empty branch")
	assert.Empty(t, transcript.entries, "transcript must stay untouched on the empty branch")
}

func TestChatAskScopesSerializedRecords(t *testing.T) {
	gateway := &mockGateway{answer: "Asha has 92.5% attendance."}
	transcript := &mockTranscriptRepo{}
	svc := newChatService(&mockStudentRepo{students: sampleRoster()}, transcript, gateway)

	principal := models.Principal{Role: models.RoleStudent, StudentID: strPtr("S42")}
	answer, err := svc.Ask(context.Background(), principal, "what is my attendance?")
	require.NoError(t, err)
	assert.Equal(t, "Asha has 92.5% attendance.", answer)
	assert.Equal(t, 1, gateway.calls)

	var serialized []models.Student
	require.NoError(t, json.Unmarshal([]byte(gateway.lastRecords), &serialized))
	require.Len(t, serialized, 1, "only the caller's own record may reach the model")
	assert.Equal(t, "S42", serialized[0].RollNumber)

	require.Len(t, transcript.entries, 2)
	assert.Equal(t, models.TranscriptRoleUser, transcript.entries[0].Role)
	assert.Equal(t, "what is my attendance?", transcript.entries[0].Content)
	assert.Equal(t, models.TranscriptRoleChatbot, transcript.entries[1].Role)
	assert.Equal(t, "Asha has 92.5% attendance.", transcript.entries[1].Content)
}

func TestChatAskStoresGatewayErrorText(t *testing.T) {
	gateway := &mockGateway{answer: "Error: context deadline exceeded"}
	transcript := &mockTranscriptRepo{}
	svc := newChatService(&mockStudentRepo{students: sampleRoster()}, transcript, gateway)

	answer, err := svc.Ask(context.Background(), models.Principal{Role: models.RoleHOD}, "who is failing?")
	require.NoError(t, err, "gateway failures are answers, not errors")
	assert.Equal(t, "Error: context deadline exceeded", answer)

	require.Len(t, transcript.entries, 2)
	assert.Equal(t, "who is failing?", transcript.entries[0].Content)
	assert.Equal(t, "Error: context deadline exceeded", transcript.entries[1].Content)
}

func TestChatAskStudentStoreFailure(t *testing.T) {
	gateway := &mockGateway{}
	svc := newChatService(&mockStudentRepo{err: errors.New("connection refused")}, &mockTranscriptRepo{}, gateway)

	_, err := svc.Ask(context.Background(), models.Principal{Role: models.RoleHOD}, "anything")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
	assert.Zero(t, gateway.calls)
}

func TestChatAskSurvivesTranscriptFailure(t *testing.T) {
	gateway := &mockGateway{answer: "fine"}
	transcript := &mockTranscriptRepo{appendErr: errors.New("disk full")}
	svc := newChatService(&mockStudentRepo{students: sampleRoster()}, transcript, gateway)

	answer, err := svc.Ask(context.Background(), models.Principal{Role: models.RoleHOD}, "status?")
	require.NoError(t, err)
	assert.Equal(t, "fine", answer)
}

func TestChatVisibleRoster(t *testing.T) {
	svc := newChatService(&mockStudentRepo{students: sampleRoster()}, &mockTranscriptRepo{}, &mockGateway{})

	roster, err := svc.VisibleRoster(context.Background(), models.Principal{Role: models.RoleMentor, MentorID: int64Ptr(2)})
	require.NoError(t, err)
	assert.Len(t, roster, 2)
}

func TestChatMemoryAndClear(t *testing.T) {
	transcript := &mockTranscriptRepo{entries: []models.TranscriptEntry{
		{Role: models.TranscriptRoleUser, Content: "q"},
		{Role: models.TranscriptRoleChatbot, Content: "a"},
	}}
	svc := newChatService(&mockStudentRepo{}, transcript, &mockGateway{})

	entries, err := svc.Memory(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	require.NoError(t, svc.Clear(context.Background()))
	entries, err = svc.Memory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
