package engine

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func noop(c *fiber.Ctx) error { return nil }

func testEngine() *Engine {
	return &Engine{
		Name: "Test Engine",
		Routes: []Route{
			{Method: http.MethodGet, Path: "/health", Handler: noop},
			{Method: http.MethodGet, Path: "/", Handler: noop},
			{Method: http.MethodPost, Path: "/health", Handler: noop},
			{Method: http.MethodGet, Path: "/items", Handler: noop},
		},
	}
}

func TestEndpoints(t *testing.T) {
	assert.Equal(t, []string{"/health", "/", "/items"}, testEngine().Endpoints())
	assert.Empty(t, (&Engine{}).Endpoints())
}

func TestLookup(t *testing.T) {
	e := testEngine()

	r, ok := e.Lookup("get", "/items")
	assert.True(t, ok)
	assert.Equal(t, "/items", r.Path)

	_, ok = e.Lookup(http.MethodDelete, "/items")
	assert.False(t, ok)

	_, ok = e.Lookup(http.MethodGet, "/missing")
	assert.False(t, ok)
}

func TestHasPath(t *testing.T) {
	e := testEngine()
	assert.True(t, e.HasPath("/"))
	assert.False(t, e.HasPath("/health/"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		routes  []Route
		wantErr error
	}{
		{
			name:   "valid",
			routes: testEngine().Routes,
		},
		{
			name:    "empty path",
			routes:  []Route{{Method: http.MethodGet, Handler: noop}},
			wantErr: ErrEmptyPath,
		},
		{
			name:    "nil handler",
			routes:  []Route{{Method: http.MethodGet, Path: "/"}},
			wantErr: ErrNilHandler,
		},
		{
			name: "duplicate method and path",
			routes: []Route{
				{Method: http.MethodGet, Path: "/", Handler: noop},
				{Method: "get", Path: "/", Handler: noop},
			},
			wantErr: ErrDuplicateRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Engine{Name: "Test Engine", Routes: tt.routes}).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 4, 7, 0, time.UTC)
	assert.Equal(t, "Tue Mar  5 09:04:07 2024", Timestamp(ts))
}
