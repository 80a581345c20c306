package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued token, the principal and the landing
// destination for the caller's role and scope.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	Landing     string    `json:"landing"`
	User        Principal `json:"user"`
	IssuedAt    time.Time `json:"issued_at"`
}

// JWTClaims represents the JWT payload for access tokens. The scope fields
// mirror Principal so the record filter can run without a database round trip.
type JWTClaims struct {
	UserID        string   `json:"user_id"`
	Username      string   `json:"username"`
	Role          UserRole `json:"role"`
	MentorID      *int64   `json:"mentor_id,omitempty"`
	ClassAssigned *string  `json:"class_assigned,omitempty"`
	StudentID     *string  `json:"student_id,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts token claims into the pipeline identity.
func (c *JWTClaims) Principal() Principal {
	return Principal{
		UserID:        c.UserID,
		Username:      c.Username,
		Role:          c.Role,
		MentorID:      c.MentorID,
		ClassAssigned: c.ClassAssigned,
		StudentID:     c.StudentID,
	}
}
