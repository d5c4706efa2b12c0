package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/campaign-service/internal/domain"
)

const bearerScheme = "Bearer "

// ErrPrincipalNotFound is returned by a PrincipalResolver when the subject id
// does not belong to any known account.
var ErrPrincipalNotFound = errors.New("principal not found")

// RevocationStore answers whether a token has been revoked before its natural
// expiry. Any thread-safe key/value store with TTL support satisfies it.
type RevocationStore interface {
	IsRevoked(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// PrincipalResolver returns the current role of a subject id, or
// ErrPrincipalNotFound when the id is unknown.
type PrincipalResolver interface {
	RoleOf(ctx context.Context, userID int64) (domain.Role, error)
}

// RequestGate is the per-request authentication middleware. It never enforces
// credential presence: exempt paths and requests without a bearer header pass
// through anonymously, and downstream route guards decide whether anonymous
// access is acceptable. Only a supplied-but-broken credential stops the chain.
type RequestGate struct {
	tokens      *TokenManager
	revocations RevocationStore
	principals  PrincipalResolver
	rules       *ExemptionRules
	logger      *zap.Logger
}

// NewRequestGate constructs the gate.
func NewRequestGate(tokens *TokenManager, revocations RevocationStore, principals PrincipalResolver, rules *ExemptionRules, logger *zap.Logger) *RequestGate {
	return &RequestGate{
		tokens:      tokens,
		revocations: revocations,
		principals:  principals,
		rules:       rules,
		logger:      logger,
	}
}

// Handle runs the gate for one request.
func (g *RequestGate) Handle(c *fiber.Ctx) error {
	if g.rules.IsExempt(c.Method(), c.Path()) {
		return c.Next()
	}

	header := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerScheme) {
		return c.Next()
	}
	token := header[len(bearerScheme):]

	principal, failure := g.authenticate(c.Context(), token)
	if failure != nil {
		return g.reject(c, failure)
	}
	if principal == nil {
		// Revoked token or unknown subject: degrade to anonymous without
		// revealing why, leaving authorization to downstream guards.
		c.Locals(principalKey, nil)
		return c.Next()
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// authenticate resolves a bearer token to a principal. A nil principal with a
// nil failure means the request proceeds anonymously. Any unclassified error
// or panic becomes a KindUnknown rejection; the caller never sees internals.
func (g *RequestGate) authenticate(ctx context.Context, token string) (principal *Principal, failure *Error) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("authentication panic", zap.Any("panic", r))
			principal = nil
			failure = NewError(KindUnknown, "authentication failed", nil)
		}
	}()

	claims, err := g.tokens.Validate(token)
	if err != nil {
		return nil, AsError(err)
	}

	revoked, err := g.revocations.IsRevoked(ctx, token)
	if err != nil {
		g.logger.Error("revocation lookup failed", zap.Error(err))
		return nil, NewError(KindUnknown, "authentication failed", err)
	}
	if revoked {
		return nil, nil
	}

	role, err := g.principals.RoleOf(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrPrincipalNotFound) {
			return nil, nil
		}
		g.logger.Error("principal lookup failed", zap.Error(err), zap.Int64("user_id", claims.UserID))
		return nil, NewError(KindUnknown, "authentication failed", err)
	}

	return &Principal{UserID: claims.UserID, Role: role}, nil
}

// reject writes the structured rejection body and stops the chain.
func (g *RequestGate) reject(c *fiber.Ctx, failure *Error) error {
	status, code := failure.Kind.HTTPMapping()
	return c.Status(status).JSON(fiber.Map{
		"success":   false,
		"message":   failure.Message,
		"errorCode": code,
		"status":    status,
	})
}
