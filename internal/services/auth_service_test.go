package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"efiling-system/internal/dto"
	"efiling-system/internal/entities"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/service"
)

func testJWTService(t *testing.T) service.JWTService {
	t.Helper()
	return service.NewJWTService("test-secret", time.Hour, 24*time.Hour, zap.NewNop())
}

func activeUser(t *testing.T, password string) *entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entities.User{
		ID:       5,
		Email:    "se-north@efiling.local",
		Password: string(hash),
		RoleID:   2,
		RoleCode: "SE-NORTH",
		IsActive: true,
	}
}

func TestLogin_Success(t *testing.T) {
	user := activeUser(t, "secret123")
	svc := NewAuthService(&stubUserRepo{user: user}, testJWTService(t), zap.NewNop())

	tokens, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	user := activeUser(t, "secret123")
	svc := NewAuthService(&stubUserRepo{user: user}, testJWTService(t), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	svc := NewAuthService(&stubUserRepo{err: apperrors.ErrUserNotFound}, testJWTService(t), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: "nobody@x", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized,
		"unknown email and wrong password must be indistinguishable")
}

func TestLogin_InactiveUser(t *testing.T) {
	user := activeUser(t, "secret123")
	user.IsActive = false
	svc := NewAuthService(&stubUserRepo{user: user}, testJWTService(t), zap.NewNop())

	_, err := svc.Login(context.Background(), dto.LoginDTO{Email: user.Email, Password: "secret123"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestRefreshTokens_RejectsAccessToken(t *testing.T) {
	user := activeUser(t, "secret123")
	jwtSvc := testJWTService(t)
	svc := NewAuthService(&stubUserRepo{user: user}, jwtSvc, zap.NewNop())

	access, _, err := jwtSvc.GenerateTokens(user.ID, user.RoleID, user.RoleCode)
	require.NoError(t, err)

	_, err = svc.RefreshTokens(context.Background(), access)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestRefreshTokens_RotatesPair(t *testing.T) {
	user := activeUser(t, "secret123")
	jwtSvc := testJWTService(t)
	svc := NewAuthService(&stubUserRepo{user: user}, jwtSvc, zap.NewNop())

	_, refresh, err := jwtSvc.GenerateTokens(user.ID, user.RoleID, user.RoleCode)
	require.NoError(t, err)

	tokens, err := svc.RefreshTokens(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}
