package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/c2n2p/portal/internal/backend"
	"github.com/c2n2p/portal/internal/config"
	"github.com/c2n2p/portal/internal/pubsub"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	// --- Setup ---
	e := echo.New()

	// 1. Capture log output
	// We temporarily redirect slog's output to a buffer to inspect it.
	var logBuffer bytes.Buffer
	// Create a new logger that writes to our buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	logger := slog.New(handler)
	// Store the original default logger and defer its restoration
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	// 2. Set up the error handler we want to test
	setupErrorHandling(e)

	// 3. Define a route that will always produce an unhandled error
	e.GET("/test-unhandled-error", func(c echo.Context) error {
		// This is the kind of error that should trigger our stack trace logging.
		return errors.New("a deliberate unhandled error occurred")
	})

	// --- Act ---
	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// --- Assert ---
	// First, check that the HTTP response is correct (a 500 error)
	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	// Now, check the captured log output
	logOutput := logBuffer.String()

	// Assert that the log contains the key pieces of information
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")

	// A good stack trace will contain the path to the Go runtime and this test file.
	// This is a strong indicator that a real stack trace was captured.
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

// fakeBackend serves the platform backend's status and seed endpoints.
type fakeBackend struct {
	statusCalls atomic.Int32
	seedCalls   atomic.Int32
	seedStatus  int
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/":
		f.statusCalls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "API up"})
	case r.Method == http.MethodPost && r.URL.Path == backend.SeedPath:
		f.seedCalls.Add(1)
		code := f.seedStatus
		if code == 0 {
			code = http.StatusOK
		}
		w.WriteHeader(code)
		_, _ = w.Write([]byte(`{"seeded":true}`))
	default:
		http.NotFound(w, r)
	}
}

func newTestServer(t *testing.T, backendURL string) *Server {
	t.Helper()
	cfg, err := config.FromEnv(func(key string) string {
		switch key {
		case "BACKEND_URL":
			return backendURL
		case "BACKEND_TIMEOUT":
			return "2s"
		}
		return ""
	})
	require.NoError(t, err)

	srv, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, srv.RegisterRoutes())
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func serve(srv *Server, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	srv.E.ServeHTTP(rec, req)
	return rec
}

func TestServer_Routes(t *testing.T) {
	fake := &fakeBackend{}
	upstream := httptest.NewServer(fake)
	defer upstream.Close()

	srv := newTestServer(t, upstream.URL)

	t.Run("home renders every section with a pending status", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `id="backend-status"`)
		assert.Contains(t, body, `hx-trigger="load"`)
		assert.Contains(t, body, "Backend: <span>...</span>")
		assert.Contains(t, body, `id="features"`)
		assert.Contains(t, body, `id="org-list"`)
		assert.Contains(t, body, `id="dashboards"`)
		assert.Contains(t, body, "Vriddha Ashram Bengaluru")
		assert.Equal(t, int32(0), fake.statusCalls.Load(), "the page itself must not probe the backend")
	})

	t.Run("status fragment probes once", func(t *testing.T) {
		before := fake.statusCalls.Load()
		rec := serve(srv, http.MethodGet, "/status")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Backend: <span>API up</span>")
		assert.NotContains(t, rec.Body.String(), "hx-trigger")
		assert.Equal(t, before+1, fake.statusCalls.Load())
	})

	t.Run("seed re-renders the list", func(t *testing.T) {
		rec := serve(srv, http.MethodPost, "/orgs/seed")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `id="org-list"`)
		assert.Equal(t, 3, strings.Count(rec.Body.String(), "data-org="))
		assert.Equal(t, int32(1), fake.seedCalls.Load())
	})

	t.Run("diagnostics", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/test")
		require.Equal(t, http.StatusOK, rec.Code)
		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "API up", resp["message"])
		assert.Equal(t, true, resp["reachable"])
	})

	t.Run("health", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/health")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("static assets", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/static/site.css")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "htmx-indicator")
	})
}

func TestServer_BackendFailures(t *testing.T) {
	fake := &fakeBackend{seedStatus: http.StatusInternalServerError}
	upstream := httptest.NewServer(fake)
	srv := newTestServer(t, upstream.URL)
	upstream.Close()

	t.Run("unreachable backend shows the placeholder", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/status")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Backend: <span>...</span>")
	})

	t.Run("failed seed still renders the list", func(t *testing.T) {
		rec := serve(srv, http.MethodPost, "/orgs/seed")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 3, strings.Count(rec.Body.String(), "data-org="))
	})

	t.Run("diagnostics reports a bad gateway", func(t *testing.T) {
		rec := serve(srv, http.MethodGet, "/test")
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}

func TestServer_EverySeedClickReachesBackend(t *testing.T) {
	fake := &fakeBackend{}
	upstream := httptest.NewServer(fake)
	defer upstream.Close()

	srv := newTestServer(t, upstream.URL)

	const clicks = 12
	for i := 0; i < clicks; i++ {
		rec := serve(srv, http.MethodPost, "/orgs/seed")
		require.Equal(t, http.StatusOK, rec.Code, "click %d", i+1)
	}
	assert.Equal(t, int32(clicks), fake.seedCalls.Load())
}

func TestActivityLog_NamesEvents(t *testing.T) {
	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(originalLogger)

	ctx := context.Background()
	require.NoError(t, logSeedSettled(ctx, pubsub.SeedSettled{BackendURL: "http://backend", OK: false, Error: "boom"}, map[string]string{"request_id": "r1"}))
	require.NoError(t, logStatusProbed(ctx, pubsub.StatusProbed{BackendURL: "http://backend", Display: "..."}, nil))

	out := logBuffer.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, pubsub.SeedSettledEvent.Description())
	assert.Contains(t, out, "topic="+pubsub.TopicSeedSettled)
	assert.Contains(t, out, "request_id=r1")
	assert.Contains(t, out, pubsub.StatusProbedEvent.Description())
	assert.Contains(t, out, "topic="+pubsub.TopicStatusProbed)
}
