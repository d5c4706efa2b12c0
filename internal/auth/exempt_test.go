package auth_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/campaign-service/internal/auth"
)

func testRules(t *testing.T) *auth.ExemptionRules {
	t.Helper()
	rules, err := auth.NewExemptionRules(
		[]string{"/api/auth", "/docs", "/health", "/favicon.ico"},
		`^/api/campaigns(/.*)?$`,
		`^/api/campaigns/status/[0-9]+/progress$`,
	)
	require.NoError(t, err)
	return rules
}

func TestExemptionRules(t *testing.T) {
	rules := testRules(t)

	tests := []struct {
		method string
		path   string
		exempt bool
	}{
		{http.MethodPost, "/api/auth/login", true},
		{http.MethodGet, "/docs/index.html", true},
		{http.MethodGet, "/health/ready", true},
		{http.MethodGet, "/favicon.ico", true},
		{http.MethodGet, "/api/campaigns", true},
		{http.MethodGet, "/api/campaigns/42", true},
		{http.MethodGet, "/api/campaigns/status/42", true},
		// The progress leaf always authenticates even though its parent
		// tree is public.
		{http.MethodGet, "/api/campaigns/status/42/progress", false},
		// Browse exemption is GET-only.
		{http.MethodPost, "/api/campaigns", false},
		{http.MethodPut, "/api/campaigns/42", false},
		{http.MethodGet, "/api/applications/me", false},
		{http.MethodGet, "/api/notifications", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.exempt, rules.IsExempt(tt.method, tt.path), "%s %s", tt.method, tt.path)
	}
}

func TestExemptionRulesBadPattern(t *testing.T) {
	_, err := auth.NewExemptionRules(nil, `^(`, `^/x$`)
	assert.Error(t, err)

	_, err = auth.NewExemptionRules(nil, `^/x$`, `^(`)
	assert.Error(t, err)
}
