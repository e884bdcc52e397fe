package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithLogging_PassesThroughResponse(t *testing.T) {
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	middleware := h.withLogging(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())
}

func TestWithLogging_DefaultStatusIsOK(t *testing.T) {
	h := newTestHandler()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("implicit 200"))
	})

	middleware := h.withLogging(next)
	req := injectNopLogger(httptest.NewRequest(http.MethodGet, "/test", nil))
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
