package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/campushub/student-assist-api/internal/models"
	appErrors "github.com/campushub/student-assist-api/pkg/errors"
)

type mockUserRepo struct {
	user *models.User
	err  error
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func testAuthConfig() AuthConfig {
	return AuthConfig{Secret: "secret", Expiration: time.Hour, Issuer: "student-assist-api"}
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginSuccessIssuesScopedToken(t *testing.T) {
	mentorID := int64(1)
	repo := &mockUserRepo{user: &models.User{
		ID:           "u1",
		Username:     "mentor1",
		PasswordHash: hashOf(t, "password"),
		Role:         models.RoleMentor,
		MentorID:     &mentorID,
	}}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	res, err := svc.Login(context.Background(), models.LoginRequest{Username: "mentor1", Password: "password"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "/dashboard/mentor/1", res.Landing)
	assert.Equal(t, models.RoleMentor, res.User.Role)

	claims, err := svc.ValidateToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RoleMentor, claims.Role)
	require.NotNil(t, claims.MentorID)
	assert.Equal(t, int64(1), *claims.MentorID)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := &mockUserRepo{user: &models.User{
		ID:           "u1",
		Username:     "mentor1",
		PasswordHash: hashOf(t, "password"),
		Role:         models.RoleMentor,
	}}
	svc := NewAuthService(repo, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "mentor1", Password: "wrongpass"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{err: sql.ErrNoRows}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "password"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestLoginMissingFields(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "only"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, validator.New(), zap.NewNop(), testAuthConfig())

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
