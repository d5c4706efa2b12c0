package observability

import (
	"sync"
	"time"
)

type requestKey struct {
	path   string
	method string
	status int
}

type errorKey struct {
	path   string
	method string
	code   string
}

// Metrics keeps in-process counters for served requests, handler errors and
// rejected credentials. Snapshot accessors exist for tests and the health
// surface; there is no export pipeline.
type Metrics struct {
	mu             sync.Mutex
	requests       map[requestKey]int64
	totalDuration  map[requestKey]time.Duration
	errors         map[errorKey]int64
	authRejections map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requests:       make(map[requestKey]int64),
		totalDuration:  make(map[requestKey]time.Duration),
		errors:         make(map[errorKey]int64),
		authRejections: make(map[string]int64),
	}
}

// RecordRequest counts one served request and accumulates its duration.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := requestKey{path: path, method: method, status: status}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[key]++
	m.totalDuration[key] += duration
}

// RecordError counts one handler error by its domain error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[errorKey{path: path, method: method, code: code}]++
}

// RecordAuthRejection counts one rejected credential per path.
func (m *Metrics) RecordAuthRejection(path string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authRejections[path]++
}

// RequestCount returns the number of requests served for the combination.
func (m *Metrics) RequestCount(path, method string, status int) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[requestKey{path: path, method: method, status: status}]
}

// ErrorCount returns the number of handler errors recorded for the combination.
func (m *Metrics) ErrorCount(path, method, code string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errors[errorKey{path: path, method: method, code: code}]
}

// AuthRejectionCount returns the number of rejected credentials on a path.
func (m *Metrics) AuthRejectionCount(path string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authRejections[path]
}
