package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"finengine/internal/config"
	"finengine/internal/engine"
	"finengine/internal/model"
)

// ErrUnhealthy is returned when the probed engine does not report "healthy".
var ErrUnhealthy = errors.New("engine is not healthy")

func newProbeCommand(eng *engine.Engine) *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check that a running " + eng.Name + " reports healthy",
		Long: `Probe requests the /health endpoint of a running engine and exits non-zero
unless it answers 200 with status "healthy". It is meant for container
healthchecks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				cfg := config.Load(config.Defaults{Workers: eng.DefaultWorkers})
				url = "http://127.0.0.1:" + cfg.Server.Port + "/health"
			}

			health, err := probe(cmd.Context(), url, timeout)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "unhealthy: %v\n", err)
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", health.Status, health.Service, health.Version)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Health endpoint URL (default: http://127.0.0.1:$PORT/health)")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "Request timeout")
	return cmd
}

func probe(ctx context.Context, url string, timeout time.Duration) (*model.Health, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}

	var health model.Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	if health.Status != "healthy" {
		return nil, fmt.Errorf("%w: status %q", ErrUnhealthy, health.Status)
	}
	return &health, nil
}
