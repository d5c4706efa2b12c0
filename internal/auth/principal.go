package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/campaign-service/internal/domain"
)

const principalKey = "auth_principal"

// ErrNotAuthenticated is returned when no principal is attached to the request.
var ErrNotAuthenticated = errors.New("not authenticated")

// Principal is the authenticated identity attached to one request. It is set
// only by the gate, never mutated afterwards, and discarded with the request.
type Principal struct {
	UserID int64
	Role   domain.Role
}

// PrincipalFromContext retrieves the principal attached by the gate.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}

// CurrentUserID returns the authenticated subject id.
func CurrentUserID(c *fiber.Ctx) (int64, error) {
	principal, ok := PrincipalFromContext(c)
	if !ok {
		return 0, ErrNotAuthenticated
	}
	return principal.UserID, nil
}

// IsAuthenticated reports whether a principal is attached to the request.
func IsAuthenticated(c *fiber.Ctx) bool {
	_, ok := PrincipalFromContext(c)
	return ok
}

// HasRole reports whether the attached principal carries the given role.
// Anonymous requests hold no role.
func HasRole(c *fiber.Ctx, role domain.Role) bool {
	principal, ok := PrincipalFromContext(c)
	return ok && principal.Role == role
}
