package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campaign-service/internal/auth"
	"github.com/spec-kit/campaign-service/internal/config"
	"github.com/spec-kit/campaign-service/internal/domain"
	"github.com/spec-kit/campaign-service/internal/service"
)

type memUserRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *memUserRepo) RoleByID(ctx context.Context, id int64) (domain.Role, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

type memRevocations struct {
	revoked map[string]bool
}

func newMemRevocations() *memRevocations {
	return &memRevocations{revoked: make(map[string]bool)}
}

func (r *memRevocations) IsRevoked(_ context.Context, token string) (bool, error) {
	return r.revoked[token], nil
}

func (r *memRevocations) Revoke(_ context.Context, token string, ttl time.Duration) error {
	if ttl > 0 {
		r.revoked[token] = true
	}
	return nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 30,
		RefreshTokenTTLDays:   14,
		BcryptCost:            4,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	users := newMemUserRepo()
	svc := service.NewAuthService(testAuthConfig(), users, newMemRevocations())

	user, pair, err := svc.Register(context.Background(), "a@example.com", "alice", "secret", domain.RoleClient)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, user.Role)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshExpiresAt.After(pair.AccessExpiresAt))

	_, _, err = svc.Register(context.Background(), "a@example.com", "alice2", "secret", domain.RoleUser)
	assert.Error(t, err)

	_, loginPair, err := svc.Login(context.Background(), "a@example.com", "secret")
	require.NoError(t, err)

	claims, err := svc.TokenManager().Validate(loginPair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = svc.Login(context.Background(), "a@example.com", "wrong")
	assert.Error(t, err)
}

func TestRefreshRotation(t *testing.T) {
	users := newMemUserRepo()
	revocations := newMemRevocations()
	svc := service.NewAuthService(testAuthConfig(), users, revocations)

	_, pair, err := svc.Register(context.Background(), "a@example.com", "alice", "secret", domain.RoleUser)
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The consumed refresh token is revoked; reuse fails.
	revoked, err := revocations.IsRevoked(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	var authErr *auth.Error
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, auth.KindRefreshInvalid, authErr.Kind)
}

func TestRefreshRejectsTamperedToken(t *testing.T) {
	svc := service.NewAuthService(testAuthConfig(), newMemUserRepo(), newMemRevocations())

	_, err := svc.Refresh(context.Background(), "not-a-token")
	var authErr *auth.Error
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, auth.KindRefreshInvalid, authErr.Kind)
}

func TestLogoutRevokesTokens(t *testing.T) {
	revocations := newMemRevocations()
	svc := service.NewAuthService(testAuthConfig(), newMemUserRepo(), revocations)

	_, pair, err := svc.Register(context.Background(), "a@example.com", "alice", "secret", domain.RoleUser)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.AccessToken, pair.RefreshToken))

	for _, token := range []string{pair.AccessToken, pair.RefreshToken} {
		revoked, err := revocations.IsRevoked(context.Background(), token)
		require.NoError(t, err)
		assert.True(t, revoked)
	}

	// Unparseable tokens are ignored; logout stays idempotent.
	assert.NoError(t, svc.Logout(context.Background(), "garbage", ""))
}
