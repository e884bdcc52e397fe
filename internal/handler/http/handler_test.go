package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simpleblog/backend/internal/config"
	"github.com/simpleblog/backend/internal/logger"
	"github.com/simpleblog/backend/internal/service"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Auth: config.Auth{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "test-issuer",
			TokenDuration: time.Hour,
		},
		Server: config.Server{
			HTTPAddress:    ":8080",
			RequestTimeout: time.Second,
			AllowedOrigins: []string{"*"},
		},
	}
}

// injectNopLogger puts a nop logger into the request context so handlers
// invoked outside the middleware chain do not log to stdout.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

// newTestRouter builds the full router with the given service mocks so tests
// exercise the real middleware chain and route table.
func newTestRouter(t *testing.T, auth service.AuthService, blog service.BlogService) *chi.Mux {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
		BlogService: blog,
	}
	return NewHandler(svcs, newTestConfig(), logger.Nop()).Init()
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, newTestConfig(), logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, newTestConfig(), logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresConfig(t *testing.T) {
	cfg := newTestConfig()
	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	assert.Equal(t, cfg, h.cfg)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/auth/signup"},
	{http.MethodPost, "/auth/login"},
	{http.MethodPost, "/auth/logout"},
	// profile (auth middleware will return 401, not 404/405)
	{http.MethodGet, "/auth/profile/me"},
	{http.MethodPut, "/auth/profile"},
	// blogs — reads are public, writes return 401 without a token
	{http.MethodGet, "/blogs"},
	{http.MethodGet, "/blogs/7"},
	{http.MethodGet, "/blogs/7/comments"},
	{http.MethodPost, "/blogs"},
	{http.MethodPut, "/blogs/7"},
	{http.MethodDelete, "/blogs/7"},
	{http.MethodPost, "/blogs/7/comments"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockBlogService{})

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (route not
			// found) or 405 (method not allowed). Guarded routes return
			// 401 — that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404JSON(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockBlogService{})

	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"route not found"}`, rec.Body.String())
}

func TestInit_WrongMethodReturns405JSON(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockBlogService{})

	req := httptest.NewRequest(http.MethodPatch, "/blogs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"message":"method not allowed"}`, rec.Body.String())
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockBlogService{})

	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_EchoesClientTraceID(t *testing.T) {
	router := newTestRouter(t, &mockAuthService{}, &mockBlogService{})

	req := httptest.NewRequest(http.MethodGet, "/blogs", nil)
	req.Header.Set(traceIDHeader, "client-trace-id")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "client-trace-id", rec.Header().Get(traceIDHeader))
}
