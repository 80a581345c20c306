package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/campushub/student-assist-api/internal/models"
)

// UserRepository reads provisioned accounts from the users table.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = "id, username, password_hash, role, mentor_id, class_assigned, student_id, created_at"

// FindByUsername fetches a user by username for login.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	query := "SELECT " + userColumns + " FROM users WHERE username = $1 LIMIT 1"
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID fetches a user by id for session rehydration.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	query := "SELECT " + userColumns + " FROM users WHERE id = $1 LIMIT 1"
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, err
	}
	return &user, nil
}
