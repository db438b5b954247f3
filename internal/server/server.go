// Package server owns everything one engine process needs at runtime: the
// listening socket, the Fiber app with its middleware and route table, the
// logger and the metrics registry.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"finengine/docs"
	"finengine/internal/config"
	"finengine/internal/engine"
	handlers "finengine/internal/http/handler"
	"finengine/internal/http/middleware"
	"finengine/internal/listener"
	"finengine/internal/logging"
)

// Options carries the collaborators of a Server. Zero values get defaults.
type Options struct {
	Config   *config.AppConfig
	Logger   *slog.Logger
	Registry *prometheus.Registry
	// Tracing installs the otelfiber middleware.
	Tracing bool
}

// Server is the runtime context of one engine process.
type Server struct {
	engine   *engine.Engine
	cfg      *config.AppConfig
	logger   *slog.Logger
	registry *prometheus.Registry
	app      *fiber.App

	mu sync.Mutex
	ln net.Listener

	docsMu sync.Mutex
}

// New validates the engine's route table and builds its HTTP app.
func New(eng *engine.Engine, opts Options) (*Server, error) {
	if err := eng.Validate(); err != nil {
		return nil, fmt.Errorf("invalid route table: %w", err)
	}

	s := &Server{
		engine:   eng,
		cfg:      opts.Config,
		logger:   opts.Logger,
		registry: opts.Registry,
	}
	if s.cfg == nil {
		s.cfg = config.Load(config.Defaults{Workers: eng.DefaultWorkers})
	}
	if s.logger == nil {
		s.logger = logging.Nop()
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}

	fcfg := fiber.Config{
		AppName:               eng.Name,
		ErrorHandler:          handlers.ErrorHandler(eng),
		DisableStartupMessage: true,
		DisableKeepalive:      true,
		StrictRouting:         true,
		CaseSensitive:         true,
		ReadBufferSize:        s.cfg.Server.ReadBufferSize,
		ReadTimeout:           s.cfg.Server.ReadTimeout,
		WriteTimeout:          s.cfg.Server.WriteTimeout,
	}
	// Connections are bounded at the listener. fasthttp frees a worker only
	// after its connection closes, so Concurrency stays at its default.
	s.app = fiber.New(fcfg)

	if err := s.mountMiddleware(opts.Tracing); err != nil {
		return nil, err
	}
	s.mountOperationalRoutes()
	handlers.RegisterRoutes(s.app, eng)

	return s, nil
}

func (s *Server) mountMiddleware(tracing bool) error {
	if tracing {
		s.app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
			return c.Path() == middleware.MetricsPath
		})))
	}
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))

	if s.cfg.MetricsEnabled {
		prom, err := middleware.NewPrometheusMiddleware(s.registry)
		if err != nil {
			return fmt.Errorf("register http metrics: %w", err)
		}
		s.app.Use(prom.Handler())
	}

	s.app.Use(fiberrecover.New())
	s.app.Use(middleware.CORS())
	return nil
}

func (s *Server) mountOperationalRoutes() {
	if s.cfg.MetricsEnabled {
		// Process and runtime collectors may already be registered by the caller.
		_ = s.registry.Register(collectors.NewGoCollector())
		_ = s.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		s.app.Get(middleware.MetricsPath, adaptor.HTTPHandler(
			promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry}),
		))
	}

	if !s.cfg.SwaggerEnabled {
		return
	}
	info, ok := docs.Lookup(s.engine.DocsInstance)
	if !ok {
		return
	}
	ui := swagger.New(swagger.Config{InstanceName: info.InstanceName(), Title: s.engine.Name})

	// Swagger UI with dynamic host and scheme
	s.app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		s.docsMu.Lock()
		defer s.docsMu.Unlock()
		info.Host = c.Hostname()
		info.Schemes = []string{scheme}

		return ui(c)
	})
}

// App exposes the Fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Engine returns the engine this server dispatches to.
func (s *Server) Engine() *engine.Engine {
	return s.engine
}

// Listen binds the configured address. It is called by Run and may be called
// earlier to learn the bound address. Failures here are socket setup errors.
func (s *Server) Listen(ctx context.Context) (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr(), nil
	}

	var metrics *listener.Metrics
	if s.cfg.MetricsEnabled {
		m, err := listener.NewMetrics(s.registry)
		if err != nil {
			return nil, fmt.Errorf("register listener metrics: %w", err)
		}
		metrics = m
	}

	ln, err := listener.Listen(ctx, listener.Config{
		Addr:      s.cfg.Server.Addr(),
		ReusePort: s.cfg.Server.ReusePort,
		MaxConns:  s.cfg.Server.Workers,
	}, s.logger, metrics)
	if err != nil {
		return nil, err
	}
	s.ln = ln
	return ln.Addr(), nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Run serves until ctx is cancelled, then closes the listening socket and
// waits up to the shutdown timeout for in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	addr, err := s.Listen(ctx)
	if err != nil {
		s.logger.Error("listen_failed", "service", s.engine.Name, "addr", s.cfg.Server.Addr(), "error", err.Error())
		return err
	}
	s.logStartup(addr)

	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("engine_stopping", "service", s.engine.Name, "detail", "Shutting down "+s.engine.Name+"...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	shutdownErr := s.app.ShutdownWithContext(shutdownCtx)
	// Serve may not have picked up the listener yet; closing it unblocks Accept either way.
	_ = ln.Close()

	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}

	s.logger.Info("engine_stopped", "service", s.engine.Name)
	return nil
}

func (s *Server) logStartup(addr net.Addr) {
	endpoints := make([]string, 0, len(s.engine.Routes))
	for _, r := range s.engine.Routes {
		endpoints = append(endpoints, r.Method+" "+r.Path)
	}

	port := ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}

	s.logger.Info("engine_listening",
		"service", s.engine.Name,
		"version", s.engine.Version,
		"addr", addr.String(),
		"port", port,
		"workers", s.cfg.Server.Workers,
		"endpoints", endpoints,
	)
	if s.engine.Tagline != "" {
		s.logger.Info(s.engine.Tagline, "service", s.engine.Name)
	}
}
