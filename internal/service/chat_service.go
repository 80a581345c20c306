package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/campushub/student-assist-api/internal/models"
	appErrors "github.com/campushub/student-assist-api/pkg/errors"
)

// NoStudentFound is the fixed reply when a principal's visible subset is
// empty. The model is never consulted on this branch.
const NoStudentFound = "No student found."

type chatStudentRepository interface {
	ListAll(ctx context.Context) ([]models.Student, error)
}

type chatTranscriptRepository interface {
	Append(ctx context.Context, role, content string) error
	List(ctx context.Context) ([]models.TranscriptEntry, error)
	Clear(ctx context.Context) error
}

type answerGateway interface {
	Ask(ctx context.Context, question, recordsJSON string) string
}

// ChatService orchestrates the question pipeline: scope the roster, consult
// the model, persist the exchange.
type ChatService struct {
	students   chatStudentRepository
	transcript chatTranscriptRepository
	gateway    answerGateway
	logger     *zap.Logger
	metrics    *MetricsService
}

// NewChatService constructs a ChatService.
func NewChatService(students chatStudentRepository, transcript chatTranscriptRepository, gateway answerGateway, logger *zap.Logger, metrics *MetricsService) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{
		students:   students,
		transcript: transcript,
		gateway:    gateway,
		logger:     logger,
		metrics:    metrics,
	}
}

// Ask answers a question against the principal's visible roster. The roster
// is read fresh on every call: roles and records may change between
// questions, so staleness is never acceptable here. Both the question and the
// answer are appended to the transcript, in that order, even when the answer
// is a gateway-level error string.
func (s *ChatService) Ask(ctx context.Context, principal models.Principal, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "No message provided")
	}

	students, err := s.students.ListAll(ctx)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student records")
	}

	visible := VisibleStudents(principal, students)
	if len(visible) == 0 {
		return NoStudentFound, nil
	}

	payload, err := json.MarshalIndent(visible, "", "  ")
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to serialize student records")
	}

	answer := s.gateway.Ask(ctx, question, string(payload))

	if err := s.transcript.Append(ctx, models.TranscriptRoleUser, question); err != nil {
		s.logger.Warn("failed to append user transcript entry", zap.Error(err))
	}
	if err := s.transcript.Append(ctx, models.TranscriptRoleChatbot, answer); err != nil {
		s.logger.Warn("failed to append chatbot transcript entry", zap.Error(err))
	}

	s.metrics.RecordQuestion(string(principal.Role))
	return answer, nil
}

// VisibleRoster returns the principal's visible subset of the roster, read
// fresh like every query.
func (s *ChatService) VisibleRoster(ctx context.Context, principal models.Principal) ([]models.Student, error) {
	students, err := s.students.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student records")
	}
	return VisibleStudents(principal, students), nil
}

// Memory returns the full transcript in insertion order.
func (s *ChatService) Memory(ctx context.Context) ([]models.TranscriptEntry, error) {
	entries, err := s.transcript.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load transcript")
	}
	return entries, nil
}

// Clear wipes the transcript.
func (s *ChatService) Clear(ctx context.Context) error {
	if err := s.transcript.Clear(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear transcript")
	}
	return nil
}
