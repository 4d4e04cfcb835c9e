//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertCreatedAt checks a 201 response points its Location header at path.
func AssertCreatedAt(t *testing.T, w *httptest.ResponseRecorder, path string) {
	t.Helper()
	assert.Equal(t, path, w.Header().Get("Location"), "Location header mismatch")
}

func AssertJSONBody(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "application/json"),
		"expected a JSON body, got Content-Type %q", w.Header().Get("Content-Type"))
}
