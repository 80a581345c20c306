package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/student-assist-api/internal/models"
)

// StudentRepository reads the student roster. Records are immutable from this
// service's perspective; rosters change through an out-of-band provisioning
// step, which is why every query reads fresh.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListAll returns the complete student roster in insertion order.
func (r *StudentRepository) ListAll(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT roll_number, full_name, gender, class_assigned, mentor_id, attendance_percent, average_grade, phone, address
        FROM students ORDER BY roll_number`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}
