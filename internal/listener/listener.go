// Package listener opens the TCP socket an engine serves on.
//
// The returned listener sets SO_REUSEADDR/SO_REUSEPORT where the platform
// supports it, caps the number of concurrently open connections, and keeps
// accepting after transient accept failures until it is closed.
package listener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/net/netutil"
)

const (
	minAcceptBackoff = 5 * time.Millisecond
	maxAcceptBackoff = time.Second
)

// Config controls how the listening socket is opened.
type Config struct {
	// Addr is the host:port to bind. An empty host binds all interfaces.
	Addr string
	// ReusePort enables SO_REUSEADDR and SO_REUSEPORT on the socket.
	ReusePort bool
	// MaxConns bounds concurrently open connections. Zero means unbounded.
	MaxConns int
}

// Metrics counts listener activity. A nil *Metrics is valid and records nothing.
type Metrics struct {
	accepted     prometheus.Counter
	acceptErrors prometheus.Counter
}

// NewMetrics registers the listener counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "engine_connections_accepted_total",
			Help: "Total number of TCP connections accepted.",
		}),
		acceptErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "engine_accept_errors_total",
			Help: "Total number of failed accept calls that were retried.",
		}),
	}
	for _, c := range []prometheus.Collector{m.accepted, m.acceptErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) incAccepted() {
	if m != nil {
		m.accepted.Inc()
	}
}

func (m *Metrics) incAcceptErrors() {
	if m != nil {
		m.acceptErrors.Inc()
	}
}

// Listen binds cfg.Addr and returns the wrapped listener.
// Bind and listen failures are returned; they are fatal for the caller.
func Listen(ctx context.Context, cfg Config, logger *slog.Logger, metrics *Metrics) (net.Listener, error) {
	lc := net.ListenConfig{}
	if cfg.ReusePort {
		lc.Control = reuseControl
	}

	ln, err := lc.Listen(ctx, "tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return Wrap(ln, cfg.MaxConns, logger, metrics), nil
}

// Wrap applies the connection bound and accept retry policy to an existing listener.
func Wrap(ln net.Listener, maxConns int, logger *slog.Logger, metrics *Metrics) net.Listener {
	if maxConns > 0 {
		ln = netutil.LimitListener(ln, maxConns)
	}
	return &retryListener{Listener: ln, logger: logger, metrics: metrics, sleep: time.Sleep}
}

// retryListener keeps accepting after failures that are not caused by Close.
type retryListener struct {
	net.Listener
	logger  *slog.Logger
	metrics *Metrics
	closed  atomic.Bool
	sleep   func(time.Duration)
}

func (l *retryListener) Accept() (net.Conn, error) {
	var delay time.Duration
	for {
		c, err := l.Listener.Accept()
		if err == nil {
			l.metrics.incAccepted()
			return c, nil
		}
		if l.closed.Load() || errors.Is(err, net.ErrClosed) {
			return nil, err
		}

		if delay == 0 {
			delay = minAcceptBackoff
		} else {
			delay *= 2
		}
		if delay > maxAcceptBackoff {
			delay = maxAcceptBackoff
		}
		l.metrics.incAcceptErrors()
		if l.logger != nil {
			l.logger.Error("accept_failed", "error", err.Error(), "retry_in", delay.String())
		}
		l.sleep(delay)
	}
}

func (l *retryListener) Close() error {
	l.closed.Store(true)
	return l.Listener.Close()
}
