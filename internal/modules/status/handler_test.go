package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/c2n2p/portal/internal/backend"
	"github.com/c2n2p/portal/internal/rendering"
	"github.com/c2n2p/portal/web/src/templates/pages"
	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupModule boots the status module against a fake backend.
func setupModule(t *testing.T, backendHandler http.HandlerFunc) *echo.Echo {
	t.Helper()

	url := "http://127.0.0.1:1" // nothing listens here
	if backendHandler != nil {
		server := httptest.NewServer(backendHandler)
		t.Cleanup(server.Close)
		url = server.URL
	}

	client, err := backend.NewClient(backend.Config{BaseURL: url})
	require.NoError(t, err)

	e := echo.New()
	injector := do.New()
	m := New(Dependencies{
		Source:     client,
		Renderer:   rendering.NewUniversalRenderer(),
		BackendURL: url,
	})
	require.NoError(t, m.Register(injector))
	require.NoError(t, m.Boot(context.Background(), e.Group(""), injector))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestStatusGet(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "message", body: `{"message":"Hello from backend"}`, want: "<span>Hello from backend</span>"},
		{name: "missing message", body: `{}`, want: "<span>...</span>"},
		{name: "malformed json", body: `{"message":`, want: "<span>...</span>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			e := setupModule(t, func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				_, _ = w.Write([]byte(tt.body))
			})

			rec := get(e, "/status")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.NotContains(t, rec.Body.String(), "hx-trigger", "resolved badge must not refetch")
			assert.EqualValues(t, 1, calls.Load(), "exactly one backend request per mount")
		})
	}
}

func TestStatusGet_BackendUnreachable(t *testing.T) {
	e := setupModule(t, nil)

	rec := get(e, "/status")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Backend: <span>...</span>")
}

func TestDiagnosticsGet(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		e := setupModule(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"message":"pong"}`))
		})

		rec := get(e, pages.DiagnosticsPath)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp DiagnosticsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Reachable)
		assert.Equal(t, "pong", resp.Message)
		assert.Empty(t, resp.Error)
	})

	t.Run("unreachable", func(t *testing.T) {
		e := setupModule(t, nil)

		rec := get(e, pages.DiagnosticsPath)
		require.Equal(t, http.StatusBadGateway, rec.Code)

		var resp DiagnosticsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Reachable)
		assert.Equal(t, "http://127.0.0.1:1", resp.Backend)
		assert.Contains(t, resp.Error, "backend unavailable")
	})
}
