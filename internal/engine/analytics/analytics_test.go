package analytics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = func() time.Time {
	return time.Date(2024, time.January, 15, 10, 30, 0, 0, time.UTC)
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	eng := New(fixedNow)
	require.NoError(t, eng.Validate())

	app := fiber.New()
	for _, r := range eng.Routes {
		app.Add(r.Method, r.Path, r.Handler)
	}
	return app
}

func TestRoutes(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		path    string
		fixture string
	}{
		{"/health", "health.json"},
		{"/", "root.json"},
		{"/spending-analysis", "spending_analysis.json"},
		{"/trends", "trends.json"},
		{"/predictions", "predictions.json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			want, err := os.ReadFile(filepath.Join("testdata", tt.fixture))
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))

			got, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestEndpoints(t *testing.T) {
	eng := New(nil)
	assert.Equal(t, []string{"/health", "/", "/spending-analysis", "/trends", "/predictions"}, eng.Endpoints())
	assert.Equal(t, Name, eng.Name)
	assert.Equal(t, 64, eng.DefaultWorkers)
}

func TestTimestampIsFreshPerRequest(t *testing.T) {
	calls := 0
	now := func() time.Time {
		calls++
		return time.Date(2024, time.January, 15, 10, 30, calls, 0, time.UTC)
	}
	eng := New(now)
	app := fiber.New()
	r, ok := eng.Lookup(http.MethodGet, "/health")
	require.True(t, ok)
	app.Get(r.Path, r.Handler)

	read := func() string {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		return string(b)
	}

	first := read()
	second := read()
	assert.Contains(t, first, "Mon Jan 15 10:30:01 2024")
	assert.Contains(t, second, "Mon Jan 15 10:30:02 2024")
}

func TestRootDescription(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"description":"High-performance C++ analytics engine for financial calculations"`)
}
