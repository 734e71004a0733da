package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/caching"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/models"
)

const accessTokenTTL = 12 * time.Hour

// TokenResponse is returned on login/signup.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// AuthService issues JWT access tokens and tracks live sessions in Redis so
// logout can revoke a token before it expires.
type AuthService interface {
	GenerateToken(ctx context.Context, user *models.User) (*TokenResponse, error)
	RevokeSession(ctx context.Context, userID uuid.UUID) error
	SessionActive(ctx context.Context, userID uuid.UUID) (bool, error)
}

type authService struct {
	jwtSecret string
	cache     caching.CacheService
}

func NewAuthService(jwtSecret string, cache caching.CacheService) AuthService {
	return &authService{jwtSecret: jwtSecret, cache: cache}
}

func (s *authService) GenerateToken(ctx context.Context, user *models.User) (*TokenResponse, error) {
	expiresAt := time.Now().Add(accessTokenTTL)
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  expiresAt.Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.cache.SetString(ctx, sessionKey(user.ID), "active", accessTokenTTL); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *authService) RevokeSession(ctx context.Context, userID uuid.UUID) error {
	return s.cache.Delete(ctx, sessionKey(userID))
}

func (s *authService) SessionActive(ctx context.Context, userID uuid.UUID) (bool, error) {
	val, err := s.cache.GetString(ctx, sessionKey(userID))
	if err != nil {
		return false, err
	}
	return val == "active", nil
}

func sessionKey(userID uuid.UUID) string {
	return fmt.Sprintf("nutromilk:session:%s", userID.String())
}
