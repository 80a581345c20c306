package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/campushub/student-assist-api/internal/models"
)

// TranscriptRepository manages the append-only conversation log.
type TranscriptRepository struct {
	db *sqlx.DB
}

// NewTranscriptRepository constructs a TranscriptRepository.
func NewTranscriptRepository(db *sqlx.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Append inserts a single transcript entry.
func (r *TranscriptRepository) Append(ctx context.Context, role, content string) error {
	entry := models.TranscriptEntry{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	const query = `INSERT INTO chat_memory (id, role, content, created_at) VALUES (:id, :role, :content, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("append transcript entry: %w", err)
	}
	return nil
}

// List returns every transcript entry in insertion order.
func (r *TranscriptRepository) List(ctx context.Context) ([]models.TranscriptEntry, error) {
	const query = `SELECT id, role, content, created_at FROM chat_memory ORDER BY created_at, id`
	var entries []models.TranscriptEntry
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("list transcript: %w", err)
	}
	return entries, nil
}

// Clear deletes the entire transcript in one statement.
func (r *TranscriptRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM chat_memory"); err != nil {
		return fmt.Errorf("clear transcript: %w", err)
	}
	return nil
}
