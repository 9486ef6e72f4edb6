//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertRetryAfter checks for a positive Retry-After in seconds.
func AssertRetryAfter(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	secs, err := strconv.Atoi(w.Header().Get("Retry-After"))
	if assert.NoError(t, err, "Retry-After must be an integer: %q", w.Header().Get("Retry-After")) {
		assert.Positive(t, secs)
	}
}
