package observability_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/campaign-service/internal/observability"
)

func TestMetricsCountsPerCombination(t *testing.T) {
	metrics := observability.NewMetrics()

	metrics.RecordRequest("/api/campaigns", "GET", 200, 5*time.Millisecond)
	metrics.RecordRequest("/api/campaigns", "GET", 200, 3*time.Millisecond)
	metrics.RecordRequest("/api/campaigns", "POST", 201, time.Millisecond)
	metrics.RecordError("/api/campaigns", "POST", "VALIDATION_ERROR")
	metrics.RecordAuthRejection("/api/applications")
	metrics.RecordAuthRejection("/api/applications")

	assert.Equal(t, int64(2), metrics.RequestCount("/api/campaigns", "GET", 200))
	assert.Equal(t, int64(1), metrics.RequestCount("/api/campaigns", "POST", 201))
	assert.Equal(t, int64(0), metrics.RequestCount("/api/campaigns", "GET", 404))
	assert.Equal(t, int64(1), metrics.ErrorCount("/api/campaigns", "POST", "VALIDATION_ERROR"))
	assert.Equal(t, int64(2), metrics.AuthRejectionCount("/api/applications"))
	assert.Equal(t, int64(0), metrics.AuthRejectionCount("/api/campaigns"))
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var metrics *observability.Metrics

	metrics.RecordRequest("/", "GET", 200, 0)
	metrics.RecordError("/", "GET", "INTERNAL_ERROR")
	metrics.RecordAuthRejection("/")

	assert.Equal(t, int64(0), metrics.RequestCount("/", "GET", 200))
}
