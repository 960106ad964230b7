package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/pocketcasino/internal/testutil"
)

func TestLoggingTagsRequests(t *testing.T) {
	logger, buf := testutil.CaptureLogger()

	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/state", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	id := rr.Header().Get(RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Contains(t, buf.String(), `"request_id":"`+id+`"`)
	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"size":15`)
}

func TestLoggingKeepsCallerRequestID(t *testing.T) {
	logger := testutil.NopLogger()
	h := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestRecoveryWritesFallbackResponse(t *testing.T) {
	logger, buf := testutil.CaptureLogger()

	h := Recovery(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/slots/spin", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "boom")
}
