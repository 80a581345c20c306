package models

import "time"

// UserRole represents the available roles for the RBAC system.
type UserRole string

const (
	RoleHOD          UserRole = "HOD"
	RoleMentor       UserRole = "MENTOR"
	RoleClassTeacher UserRole = "CLASS_TEACHER"
	RoleStudent      UserRole = "STUDENT"
)

// User represents a provisioned account stored in the users table. Accounts
// are created out of band; this service only reads them.
type User struct {
	ID            string    `db:"id" json:"id"`
	Username      string    `db:"username" json:"username"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	Role          UserRole  `db:"role" json:"role"`
	MentorID      *int64    `db:"mentor_id" json:"mentor_id,omitempty"`
	ClassAssigned *string   `db:"class_assigned" json:"class_assigned,omitempty"`
	StudentID     *string   `db:"student_id" json:"student_id,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Principal is the authenticated identity flowing through the query pipeline.
// Exactly one of the scope fields is set, determined by the role.
type Principal struct {
	UserID        string   `json:"user_id"`
	Username      string   `json:"username"`
	Role          UserRole `json:"role"`
	MentorID      *int64   `json:"mentor_id,omitempty"`
	ClassAssigned *string  `json:"class_assigned,omitempty"`
	StudentID     *string  `json:"student_id,omitempty"`
}

// Principal derives the pipeline identity from a stored user.
func (u *User) Principal() Principal {
	return Principal{
		UserID:        u.ID,
		Username:      u.Username,
		Role:          u.Role,
		MentorID:      u.MentorID,
		ClassAssigned: u.ClassAssigned,
		StudentID:     u.StudentID,
	}
}
