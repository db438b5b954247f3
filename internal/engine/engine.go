// Package engine defines the declarative route table an engine process serves.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrEmptyPath      = errors.New("route path is required")
	ErrNilHandler     = errors.New("route handler is required")
	ErrDuplicateRoute = errors.New("duplicate route")
)

// TimestampLayout matches the C ctime format the engines have always emitted.
const TimestampLayout = time.ANSIC

// Route maps a (method, path) pair to a fixed handler.
type Route struct {
	Method  string
	Path    string
	Name    string
	Summary string
	Handler fiber.Handler
}

// Engine is one standalone service: its identity plus its route table.
type Engine struct {
	// Name is the human readable service name, e.g. "Analytics Engine".
	Name string
	// Slug identifies the engine in telemetry, docs and binaries.
	Slug    string
	Version string
	// Tagline is logged once the engine is listening.
	Tagline string
	// DocsInstance names the swag instance holding the engine's API docs.
	DocsInstance string
	// DefaultWorkers bounds concurrent connections unless configured otherwise.
	DefaultWorkers int
	Routes         []Route
}

// Endpoints returns the distinct route paths in table order.
func (e *Engine) Endpoints() []string {
	seen := make(map[string]struct{}, len(e.Routes))
	out := make([]string, 0, len(e.Routes))
	for _, r := range e.Routes {
		if _, ok := seen[r.Path]; ok {
			continue
		}
		seen[r.Path] = struct{}{}
		out = append(out, r.Path)
	}
	return out
}

// Lookup finds the route registered for method and path.
func (e *Engine) Lookup(method, path string) (Route, bool) {
	for _, r := range e.Routes {
		if r.Path == path && strings.EqualFold(r.Method, method) {
			return r, true
		}
	}
	return Route{}, false
}

// HasPath reports whether any route is registered for path.
func (e *Engine) HasPath(path string) bool {
	for _, r := range e.Routes {
		if r.Path == path {
			return true
		}
	}
	return false
}

// Validate checks the route table is well formed.
func (e *Engine) Validate() error {
	seen := make(map[string]struct{}, len(e.Routes))
	for _, r := range e.Routes {
		if r.Path == "" {
			return fmt.Errorf("%s: %w", e.Name, ErrEmptyPath)
		}
		if r.Handler == nil {
			return fmt.Errorf("%s %s %s: %w", e.Name, r.Method, r.Path, ErrNilHandler)
		}
		key := strings.ToUpper(r.Method) + " " + r.Path
		if _, ok := seen[key]; ok {
			return fmt.Errorf("%s %s: %w", e.Name, key, ErrDuplicateRoute)
		}
		seen[key] = struct{}{}
	}
	return nil
}

// Timestamp formats t the way engine payloads carry it.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
