package metrics

import (
	"strings"
)

// Cache lookup results
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// RecordCacheLookup counts a board listing cache lookup
func (m *Metrics) RecordCacheLookup(hit bool) {
	m.safeExecute("RecordCacheLookup", func() {
		result := CacheMiss
		if hit {
			result = CacheHit
		}
		m.CacheRequestsTotal.WithLabelValues(result).Inc()
	})
}

// RecordCacheError counts a cache backend failure
func (m *Metrics) RecordCacheError(err error) {
	if err == nil {
		return
	}
	m.safeExecute("RecordCacheError", func() {
		m.CacheErrors.WithLabelValues(getErrorType(err)).Inc()
	})
}

// getErrorType categorizes backend errors by message
func getErrorType(err error) string {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "connection refused"):
		return "connection_refused"
	case strings.Contains(errMsg, "no such host"):
		return "dns_error"
	case strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded"):
		return "timeout"
	case strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset"):
		return "connection_reset"
	case strings.Contains(errMsg, "TLS") || strings.Contains(errMsg, "certificate"):
		return "tls_error"
	}
	return "backend_error"
}
