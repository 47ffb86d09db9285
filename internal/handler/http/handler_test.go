package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-list-sync/internal/logger"
	"github.com/MKhiriev/go-list-sync/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, "", logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.registry)
	assert.NotNil(t, h.metrics)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, "", logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, "", log)

	assert.Equal(t, log, h.logger)
}

func TestNewHandler_HashKey(t *testing.T) {
	assert.Nil(t, NewHandler(&service.Services{}, "", logger.Nop()).hasher)
	assert.NotNil(t, NewHandler(&service.Services{}, "secret", logger.Nop()).hasher)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, "", logger.Nop())
	h2 := NewHandler(&service.Services{}, "", logger.Nop())

	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.registry, h2.registry)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

// newRoutedHandler builds a Handler whose services are hand-written mocks.
func newRoutedHandler(t *testing.T, entities *mockEntitySvc) *Handler {
	t.Helper()

	if entities == nil {
		entities = &mockEntitySvc{}
	}
	svcs := &service.Services{
		EntityService:  entities,
		AppInfoService: &mockAppInfoService{version: "test-version"},
	}

	return NewHandler(svcs, "", logger.Nop())
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newRoutedHandler(t, nil).Init()

	require.NotNil(t, router)
}

type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	{http.MethodGet, "/api/version/"},
	{http.MethodGet, "/api/entities"},
	{http.MethodGet, "/api/entities/search?value=a"},
	{http.MethodGet, "/api/entities/e-1"},
	{http.MethodPost, "/api/entities"},
	{http.MethodGet, "/metrics"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newRoutedHandler(t, nil).Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// POST without a body is a 400, which still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newRoutedHandler(t, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newRoutedHandler(t, nil).Init()

	for _, tc := range []routeCase{
		{http.MethodDelete, "/api/entities"},
		{http.MethodPut, "/api/entities/e-1"},
		{http.MethodPost, "/api/version/"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newRoutedHandler(t, nil).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
