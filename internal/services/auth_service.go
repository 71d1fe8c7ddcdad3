package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"efiling-system/internal/dto"
	"efiling-system/internal/repositories"
	apperrors "efiling-system/pkg/errors"
	"efiling-system/pkg/service"
)

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtService service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, jwtService: jwtService, logger: logger}
}

// Login answers a token pair for valid credentials. Wrong email and wrong
// password return the same error so the endpoint does not leak which one it was.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)); err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.RoleID, user.RoleCode)
	if err != nil {
		s.logger.Error("token generation failed", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

// RefreshTokens exchanges a refresh token for a new pair. The user is
// re-checked so a deactivated account cannot keep rotating tokens.
func (s *AuthService) RefreshTokens(ctx context.Context, refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID, user.RoleID, user.RoleCode)
	if err != nil {
		s.logger.Error("token generation failed", zap.Uint64("user_id", user.ID), zap.Error(err))
		return nil, apperrors.NewInternalError("failed to issue tokens")
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
