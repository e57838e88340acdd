package auth

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/reservafacil/reserva-api/internal/application/service"
	"github.com/reservafacil/reserva-api/internal/domain/account"
	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
	"github.com/reservafacil/reserva-api/pkg/auth"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

var (
	ErrInvalidCredentials  = errors.New("email or password is incorrect")
	ErrInvalidRefreshToken = errors.New("refresh token is invalid or revoked")
)

var tracer = otel.Tracer("auth_usecase")

type AuthUseCase struct {
	accountRepo    account.Repository
	restaurantRepo restaurant.Repository
	jwtSvc         *auth.JWTService
	tokenStore     service.RefreshTokenStore
	logger         logger.Logger
}

func NewAuthUseCase(
	accountRepo account.Repository,
	restaurantRepo restaurant.Repository,
	jwtSvc *auth.JWTService,
	tokenStore service.RefreshTokenStore,
	log logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		accountRepo:    accountRepo,
		restaurantRepo: restaurantRepo,
		jwtSvc:         jwtSvc,
		tokenStore:     tokenStore,
		logger:         log,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	UserName     string
}

func (uc *AuthUseCase) LoginUsuario(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "LoginUsuario")
	defer span.End()

	a, err := uc.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, a.PasswordHash) {
		span.RecordError(ErrInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	out, err := uc.issueTokens(ctx, a.ID, auth.RoleUsuario)
	if err != nil {
		return nil, err
	}
	out.UserName = a.Nombres

	span.SetAttributes(attribute.Int64("usuario_id", a.ID))
	return out, nil
}

// LoginRestaurante verifies the stored credential. Restaurants registered
// without a password cannot log in.
func (uc *AuthUseCase) LoginRestaurante(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "LoginRestaurante")
	defer span.End()

	r, err := uc.restaurantRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if r.PasswordHash == nil || !auth.CheckPasswordHash(input.Password, *r.PasswordHash) {
		span.RecordError(ErrInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	out, err := uc.issueTokens(ctx, r.ID, auth.RoleRestaurante)
	if err != nil {
		return nil, err
	}
	out.UserName = r.Nombre

	span.SetAttributes(attribute.Int64("restaurante_id", r.ID))
	return out, nil
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself stays valid until it expires.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := uc.jwtSvc.ValidateToken(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}
	if claims.TokenType != auth.TokenTypeRefresh {
		return "", ErrInvalidRefreshToken
	}

	if _, err := uc.tokenStore.Get(ctx, claims.ID); err != nil {
		if errors.Is(err, service.ErrTokenNotFound) {
			return "", ErrInvalidRefreshToken
		}
		return "", err
	}

	return uc.jwtSvc.GenerateAccessToken(claims.SubjectID, claims.Role)
}

// Logout revokes the refresh token so it can no longer mint access tokens.
func (uc *AuthUseCase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := uc.jwtSvc.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != auth.TokenTypeRefresh {
		return ErrInvalidRefreshToken
	}
	return uc.tokenStore.Delete(ctx, claims.ID)
}

func (uc *AuthUseCase) issueTokens(ctx context.Context, subjectID int64, role string) (*LoginOutput, error) {
	accessToken, err := uc.jwtSvc.GenerateAccessToken(subjectID, role)
	if err != nil {
		uc.logger.Error("Failed to generate access token", err, zap.Int64("subject_id", subjectID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, jti, err := uc.jwtSvc.GenerateRefreshToken(subjectID, role)
	if err != nil {
		uc.logger.Error("Failed to generate refresh token", err, zap.Int64("subject_id", subjectID))
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	subject := fmt.Sprintf("%s:%d", role, subjectID)
	if err := uc.tokenStore.Save(ctx, jti, subject, uc.jwtSvc.RefreshLifespan()); err != nil {
		uc.logger.Error("Failed to persist refresh token", err, zap.String("jti", jti))
		return nil, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return &LoginOutput{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
