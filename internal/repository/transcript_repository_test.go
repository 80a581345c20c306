package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/student-assist-api/internal/models"
)

func TestTranscriptAppend(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTranscriptRepository(db)

	mock.ExpectExec("INSERT INTO chat_memory").WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Append(context.Background(), models.TranscriptRoleUser, "who has the best attendance?")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptList(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTranscriptRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "role", "content", "created_at"}).
		AddRow("a", models.TranscriptRoleUser, "question", now).
		AddRow("b", models.TranscriptRoleChatbot, "answer", now.Add(time.Second))
	mock.ExpectQuery("SELECT id, role, content, created_at FROM chat_memory").WillReturnRows(rows)

	entries, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.TranscriptRoleUser, entries[0].Role)
	assert.Equal(t, models.TranscriptRoleChatbot, entries[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTranscriptClear(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewTranscriptRepository(db)

	mock.ExpectExec("DELETE FROM chat_memory").WillReturnResult(sqlmock.NewResult(0, 4))

	err := repo.Clear(context.Background())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
