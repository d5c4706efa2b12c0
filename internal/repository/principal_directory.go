package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/campaign-service/internal/auth"
	"github.com/spec-kit/campaign-service/internal/domain"
)

// PrincipalDirectory adapts the user repository to the gate's resolver
// interface, translating a missing row into the gate's not-found sentinel.
type PrincipalDirectory struct {
	users UserRepository
}

// NewPrincipalDirectory constructs the adapter.
func NewPrincipalDirectory(users UserRepository) *PrincipalDirectory {
	return &PrincipalDirectory{users: users}
}

// RoleOf returns the current role for the subject id.
func (d *PrincipalDirectory) RoleOf(ctx context.Context, userID int64) (domain.Role, error) {
	role, err := d.users.RoleByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", auth.ErrPrincipalNotFound
		}
		return "", err
	}
	return role, nil
}
