package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/campaign-service/internal/auth"
	"github.com/spec-kit/campaign-service/internal/config"
	"github.com/spec-kit/campaign-service/internal/domain"
	"github.com/spec-kit/campaign-service/internal/repository"
)

// TokenPair is what the auth endpoints return: a short-lived access token and
// a long-lived refresh token. The two are distinguished only by TTL.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthService coordinates registration, login, and the refresh flow.
type AuthService struct {
	users       repository.UserRepository
	tokens      *auth.TokenManager
	revocations auth.RevocationStore
	accessTTL   time.Duration
	refreshTTL  time.Duration
	bcryptCost  int
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, revocations auth.RevocationStore) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      auth.NewTokenManager(cfg.JWTSecret),
		revocations: revocations,
		accessTTL:   cfg.AccessTokenTTL(),
		refreshTTL:  cfg.RefreshTokenTTL(),
		bcryptCost:  cfg.BcryptCost,
	}
}

// Register creates a new account and signs it in.
func (s *AuthService) Register(ctx context.Context, email, nickname, password string, role domain.Role) (*domain.User, *TokenPair, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, nil, errors.New("email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		Email:        email,
		Nickname:     nickname,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Login authenticates an account and issues a token pair.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, *TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, errors.New("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, nil, errors.New("invalid credentials")
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token is revoked for its
// remaining lifetime and a fresh pair is issued. The subject is read without
// expiry enforcement so the expiry decision stays in one place below; any
// failure of the presented token surfaces as a refresh-invalid error.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.DecodeIgnoringExpiry(refreshToken)
	if err != nil {
		return nil, auth.NewError(auth.KindRefreshInvalid, "invalid refresh token", err)
	}
	if time.Now().After(claims.ExpiresAt) {
		return nil, auth.NewError(auth.KindRefreshInvalid, "refresh token expired", nil)
	}

	revoked, err := s.revocations.IsRevoked(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, auth.NewError(auth.KindRefreshInvalid, "refresh token revoked", nil)
	}

	if err := s.revocations.Revoke(ctx, refreshToken, time.Until(claims.ExpiresAt)); err != nil {
		return nil, err
	}
	return s.issuePair(claims.UserID)
}

// Logout revokes both tokens for their remaining lifetimes. Tokens that fail
// to decode or already expired are ignored; logout is idempotent.
func (s *AuthService) Logout(ctx context.Context, accessToken, refreshToken string) error {
	for _, token := range []string{accessToken, refreshToken} {
		if token == "" {
			continue
		}
		claims, err := s.tokens.DecodeIgnoringExpiry(token)
		if err != nil {
			continue
		}
		if err := s.revocations.Revoke(ctx, token, time.Until(claims.ExpiresAt)); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) issuePair(userID int64) (*TokenPair, error) {
	accessToken, accessExp, err := s.tokens.Issue(userID, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExp, err := s.tokens.Issue(userID, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// TokenManager exposes the underlying token manager for the request gate.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}
