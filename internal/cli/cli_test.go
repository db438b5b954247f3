package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finengine/internal/config"
	"finengine/internal/engine/analytics"
	"finengine/internal/engine/reporting"
)

func run(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(reporting.New())

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestRoutesCommand(t *testing.T) {
	out, _, err := run(t, context.Background(), "routes")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "METHOD")
	assert.Contains(t, lines[1], "/health")
	assert.Contains(t, lines[3], "/reports")
}

func TestRoutesCommand_JSON(t *testing.T) {
	out, _, err := run(t, context.Background(), "routes", "--json")
	require.NoError(t, err)

	var routes []routeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &routes))
	require.Len(t, routes, 3)
	assert.Equal(t, routeOutput{Method: http.MethodGet, Path: "/reports", Name: "reports", Summary: "Available reports"}, routes[2])
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, context.Background(), "version", "--json")
	require.NoError(t, err)

	var v VersionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, reporting.Name, v.Service)
	assert.Equal(t, reporting.Version, v.Version)
	assert.NotEmpty(t, v.Go)

	out, _, err = run(t, context.Background(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Reporting Engine v1.0.0"))
}

func TestProbeCommand(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "healthy", status: http.StatusOK, body: `{"status":"healthy","service":"Reporting Engine","version":"1.0.0"}`},
		{name: "degraded", status: http.StatusOK, body: `{"status":"degraded"}`, wantErr: true},
		{name: "server error", status: http.StatusServiceUnavailable, body: `{}`, wantErr: true},
		{name: "not json", status: http.StatusOK, body: `ok`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/health", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer ts.Close()

			out, stderr, err := run(t, context.Background(), "probe", "--url", ts.URL+"/health")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, stderr, "unhealthy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "healthy Reporting Engine 1.0.0\n", out)
		})
	}
}

func TestProbeCommand_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, _, err := run(t, context.Background(), "probe", "--url", url+"/health", "--timeout", "500ms")
	assert.Error(t, err)
}

func TestProbe_ErrUnhealthy(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"starting"}`))
	}))
	defer ts.Close()

	_, err := probe(context.Background(), ts.URL, time.Second)
	assert.ErrorIs(t, err, ErrUnhealthy)
}

func TestServeFlagsApply(t *testing.T) {
	cmd := NewRootCommand(analytics.New(nil))
	require.NoError(t, cmd.ParseFlags([]string{"--port", "9090", "-w", "8", "--log-format", "text"}))

	var flags serveFlags
	flags.port, _ = cmd.Flags().GetString("port")
	flags.workers, _ = cmd.Flags().GetInt("workers")
	flags.logFormat, _ = cmd.Flags().GetString("log-format")

	cfg := &config.AppConfig{
		Server: config.ServerConfig{Host: "10.0.0.1", Port: "8080", Workers: 64},
		Log:    config.LogConfig{Level: "info", Format: "json"},
	}
	flags.apply(cmd, cfg)

	assert.Equal(t, "10.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Server.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	_, _, err := run(t, context.Background(), "unexpected")
	assert.Error(t, err)
}

func TestRootCommand_ServesUntilCancelled(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SHUTDOWN_TIMEOUT_SEC", "1")

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	_, _, err := run(t, ctx, "--host", "127.0.0.1", "--port", "0")
	assert.NoError(t, err)
}

func TestRootCommand_ListenFailure(t *testing.T) {
	t.Setenv("OTEL_SDK_DISABLED", "true")
	t.Setenv("LOG_LEVEL", "error")

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	_, _, err = run(t, context.Background(), "--host", "127.0.0.1", "--port", port)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}
