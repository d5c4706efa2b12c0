package auth

import (
	"errors"
	"strconv"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and validates signed JWT tokens with one symmetric key
// held for the process lifetime. Access and refresh tokens differ only by the
// TTL supplied at issuance. The manager carries no per-call state; concurrent
// use requires no locking.
type TokenManager struct {
	secret []byte
	// Strict decoding rejects base64 segments with set padding bits.
	// Without it a token's signature has lenient twins that still verify,
	// and anything keyed on the exact token string (revocation entries)
	// can be bypassed by re-deriving a twin.
	parser  *jwt.Parser
	decoder *jwt.Parser
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret:  []byte(secret),
		parser:  jwt.NewParser(jwt.WithStrictDecoding()),
		decoder: jwt.NewParser(jwt.WithStrictDecoding(), jwt.WithoutClaimsValidation()),
	}
}

// Claims is the decoded payload of a validated token.
type Claims struct {
	UserID    int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Issue builds and signs a token for the user with the given lifetime.
func (tm *TokenManager) Issue(userID int64, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// Validate parses the token, verifies signature and expiry, and returns its
// claims. Every failure is an *Error: bad signature or malformed input is
// KindInvalid, a correctly signed but expired token is KindExpired, anything
// else is KindUnknown.
func (tm *TokenManager) Validate(tokenStr string) (*Claims, error) {
	parsed, err := tm.parser.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, tm.keyFunc)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, NewError(KindExpired, "token expired", err)
		case errors.Is(err, jwt.ErrTokenMalformed),
			errors.Is(err, jwt.ErrTokenSignatureInvalid),
			errors.Is(err, jwt.ErrTokenUnverifiable):
			return nil, NewError(KindInvalid, "invalid token", err)
		default:
			return nil, NewError(KindUnknown, "token validation failed", err)
		}
	}
	return tm.toClaims(parsed)
}

// DecodeIgnoringExpiry parses and verifies the signature but does not reject
// an expired token. The refresh flow uses it to read the subject out of an
// expired refresh token; a tampered token is still rejected.
func (tm *TokenManager) DecodeIgnoringExpiry(tokenStr string) (*Claims, error) {
	parsed, err := tm.decoder.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, tm.keyFunc)
	if err != nil {
		return nil, NewError(KindInvalid, "invalid token", err)
	}
	return tm.toClaims(parsed)
}

func (tm *TokenManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != jwt.SigningMethodHS256 {
		return nil, errors.New("unexpected signing method")
	}
	return tm.secret, nil
}

// toClaims converts verified registered claims. A subject that does not parse
// as a positive integer is a malformed payload, not a crash.
func (tm *TokenManager) toClaims(parsed *jwt.Token) (*Claims, error) {
	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return nil, NewError(KindInvalid, "invalid token claims", nil)
	}

	userID, err := strconv.ParseInt(registered.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return nil, NewError(KindInvalid, "invalid token subject", err)
	}

	claims := &Claims{UserID: userID}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}
	if registered.ExpiresAt != nil {
		claims.ExpiresAt = registered.ExpiresAt.Time
	}
	return claims, nil
}
