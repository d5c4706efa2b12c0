package auth

import (
	"net/http"
	"regexp"
	"strings"
)

// ExemptionRules decides which requests bypass authentication entirely. The
// rule set is built once at startup and read-only afterwards.
//
// Beyond the prefix list, GET requests under the campaign browse pattern are
// public, except the progress-status sub-path: that leaf always requires
// authentication even though its parent tree does not. A plain prefix match
// would expose it, so the carve-out is checked before the browse pattern
// grants exemption.
type ExemptionRules struct {
	prefixes []string
	browse   *regexp.Regexp
	progress *regexp.Regexp
}

// NewExemptionRules compiles the configured patterns.
func NewExemptionRules(prefixes []string, browsePattern, progressPattern string) (*ExemptionRules, error) {
	browse, err := regexp.Compile(browsePattern)
	if err != nil {
		return nil, err
	}
	progress, err := regexp.Compile(progressPattern)
	if err != nil {
		return nil, err
	}

	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return &ExemptionRules{prefixes: cleaned, browse: browse, progress: progress}, nil
}

// IsExempt reports whether the request bypasses the gate.
func (r *ExemptionRules) IsExempt(method, path string) bool {
	for _, prefix := range r.prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	if method == http.MethodGet && r.browse.MatchString(path) && !r.progress.MatchString(path) {
		return true
	}
	return false
}
