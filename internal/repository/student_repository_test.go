package repository

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAllStudents(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	rows := sqlmock.NewRows([]string{"roll_number", "full_name", "gender", "class_assigned", "mentor_id", "attendance_percent", "average_grade", "phone", "address"}).
		AddRow("S42", "Asha Rao", "F", "A", 1, 92.5, 8.1, "555-0101", "12 Hill Road").
		AddRow("S43", "Ravi Kumar", "M", "B", 2, 84.0, 7.4, "555-0102", "7 Lake View")
	mock.ExpectQuery("SELECT roll_number, full_name, gender, class_assigned, mentor_id, attendance_percent, average_grade, phone, address").
		WillReturnRows(rows)

	students, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "S42", students[0].RollNumber)
	assert.Equal(t, int64(2), students[1].MentorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
