package auth_test

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campaign-service/internal/auth"
)

const testSecret = "test-secret"

func kindOf(t *testing.T, err error) auth.ErrorKind {
	t.Helper()
	require.Error(t, err)
	authErr, ok := err.(*auth.Error)
	require.True(t, ok, "expected *auth.Error, got %T", err)
	return authErr.Kind
}

// tamper flips the last character of the signature segment.
func tamper(token string) string {
	last := token[len(token)-1]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	return token[:len(token)-1] + string(replacement)
}

func TestIssueAndValidateRoundtrip(t *testing.T) {
	tm := auth.NewTokenManager(testSecret)

	token, expiresAt, err := tm.Issue(42, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestValidateExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager(testSecret)

	token, _, err := tm.Issue(42, -time.Minute)
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Equal(t, auth.KindExpired, kindOf(t, err))
}

func TestValidateTamperedSignature(t *testing.T) {
	tm := auth.NewTokenManager(testSecret)

	token, _, err := tm.Issue(42, time.Hour)
	require.NoError(t, err)

	_, err = tm.Validate(tamper(token))
	assert.Equal(t, auth.KindInvalid, kindOf(t, err))
}

// Base64url discards trailing padding bits under lenient decoding, so a
// signature's final character has decode-equal twins (e.g. "Q" and "R").
// Each such twin is a distinct token string that must NOT verify: revocation
// entries are keyed on the exact string, and a verifying twin would walk
// straight past them. Every single-character mutation of the signature tail
// has to be rejected.
func TestValidateRejectsSignatureTwins(t *testing.T) {
	tm := auth.NewTokenManager(testSecret)

	token, _, err := tm.Issue(42, time.Hour)
	require.NoError(t, err)

	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	last := token[len(token)-1]
	for i := 0; i < len(alphabet); i++ {
		if alphabet[i] == last {
			continue
		}
		mutated := token[:len(token)-1] + string(alphabet[i])

		_, err := tm.Validate(mutated)
		assert.Equal(t, auth.KindInvalid, kindOf(t, err), "mutation %q -> %q", last, alphabet[i])

		_, err = tm.DecodeIgnoringExpiry(mutated)
		assert.Equal(t, auth.KindInvalid, kindOf(t, err), "mutation %q -> %q", last, alphabet[i])
	}
}

func TestValidateMalformedInput(t *testing.T) {
	tm := auth.NewTokenManager(testSecret)

	for _, input := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := tm.Validate(input)
		assert.Equal(t, auth.KindInvalid, kindOf(t, err), "input %q", input)
	}
}

func TestValidateWrongKey(t *testing.T) {
	token, _, err := auth.NewTokenManager("other-secret").Issue(42, time.Hour)
	require.NoError(t, err)

	_, err = auth.NewTokenManager(testSecret).Validate(token)
	assert.Equal(t, auth.KindInvalid, kindOf(t, err))
}

func TestValidateNonNumericSubject(t *testing.T) {
	claims := &jwt.RegisteredClaims{
		Subject:   "not-a-number",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = auth.NewTokenManager(testSecret).Validate(token)
	assert.Equal(t, auth.KindInvalid, kindOf(t, err))
}

func TestValidateNonPositiveSubject(t *testing.T) {
	for _, subject := range []string{"0", "-5"} {
		claims := &jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = auth.NewTokenManager(testSecret).Validate(token)
		assert.Equal(t, auth.KindInvalid, kindOf(t, err), "subject %q", subject)
	}
}

func TestDecodeIgnoringExpiry(t *testing.T) {
	tm := auth.NewTokenManager(testSecret)

	expired, _, err := tm.Issue(7, -time.Minute)
	require.NoError(t, err)

	claims, err := tm.DecodeIgnoringExpiry(expired)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.True(t, claims.ExpiresAt.Before(time.Now()))

	_, err = tm.DecodeIgnoringExpiry(tamper(expired))
	assert.Equal(t, auth.KindInvalid, kindOf(t, err))
}

func TestIndependentTokens(t *testing.T) {
	tm := auth.NewTokenManager(testSecret)

	first, _, err := tm.Issue(42, time.Hour)
	require.NoError(t, err)
	second, _, err := tm.Issue(42, time.Hour+time.Second)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, token := range []string{first, second} {
		claims, err := tm.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
	}
}
