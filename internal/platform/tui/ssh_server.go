package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MjakaMwise/VJSnake-Game/internal/core"
	"github.com/MjakaMwise/VJSnake-Game/internal/games/snake"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.vjsnake/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// MetricsAddress serves Prometheus metrics on /metrics when set.
	MetricsAddress string

	Settings snake.Settings
	CellSize int

	// Logger receives server and session logs. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
		Settings:    snake.DefaultSettings(),
		CellSize:    DefaultCellSize,
	}
}

type sessionIDKey struct{}

// SSHServer serves one independent snake game per SSH session.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	metrics *Metrics
	http    *http.Server
	logger  *log.Logger

	mu          sync.Mutex
	addr        net.Addr // Set once listening
	metricsAddr net.Addr
	ready       chan struct{}
	readyOnce   sync.Once
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "vjsnake-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		metrics: NewMetrics(),
		logger:  logger,
		ready:   make(chan struct{}),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".vjsnake", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	// Middlewares run last to first: logging, then the PTY check, then the game.
	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	srv.server = server

	if cfg.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(srv.metrics.Registry(), promhttp.HandlerOpts{}))
		srv.http = &http.Server{
			Addr:              cfg.MetricsAddress,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
	}

	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()

	logger := s.logger
	if id, ok := sess.Context().Value(sessionIDKey{}).(string); ok {
		logger = logger.With("session", id)
	}

	model, err := NewModel(Options{
		RuntimeConfig: core.RuntimeConfig{
			ScreenW: pty.Window.Width,
			ScreenH: pty.Window.Height,
			Seed:    time.Now().UnixNano(),
		},
		Settings: s.config.Settings,
		CellSize: s.config.CellSize,
		Logger:   logger,
		Observer: s.metrics,
	})
	if err != nil {
		// Settings were validated in NewSSHServer.
		logger.Error("cannot create game", "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware tags each session with an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)
		start := time.Now()

		s.metrics.SessionStarted()
		defer s.metrics.SessionEnded()

		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx)
}

// Serve runs the servers until ctx is cancelled, then shuts them down.
// The listeners are open before Serve starts accepting, and Ready is
// closed at that point.
func (s *SSHServer) Serve(ctx context.Context) error {
	listeners, err := s.listen()
	if err != nil {
		return err
	}
	errCh := make(chan error, len(listeners))

	s.logger.Info("starting SSH server", "address", listeners[0].Addr())
	go func() {
		if err := s.server.Serve(listeners[0]); err != nil && !isClosed(err, ssh.ErrServerClosed) {
			errCh <- fmt.Errorf("ssh server: %w", err)
		}
	}()

	if s.http != nil {
		s.logger.Info("starting metrics endpoint", "address", listeners[1].Addr())
		go func() {
			if err := s.http.Serve(listeners[1]); err != nil && !isClosed(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
		s.logger.Error("server error", "error", serveErr)
	}

	s.logger.Info("shutting down...")
	err = s.Shutdown()
	// Shutdown only closes listeners the servers have started tracking.
	for _, ln := range listeners {
		_ = ln.Close()
	}
	return errors.Join(serveErr, err)
}

// listen opens the SSH listener and, when configured, the metrics listener.
func (s *SSHServer) listen() ([]net.Listener, error) {
	sshLn, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return nil, fmt.Errorf("ssh server: %w", err)
	}
	listeners := []net.Listener{sshLn}

	s.mu.Lock()
	s.addr = sshLn.Addr()
	if s.http != nil {
		metricsLn, err := net.Listen("tcp", s.http.Addr)
		if err != nil {
			s.mu.Unlock()
			_ = sshLn.Close()
			return nil, fmt.Errorf("metrics server: %w", err)
		}
		s.metricsAddr = metricsLn.Addr()
		listeners = append(listeners, metricsLn)
	}
	s.mu.Unlock()

	s.readyOnce.Do(func() { close(s.ready) })
	return listeners, nil
}

func isClosed(err, serverClosed error) bool {
	return errors.Is(err, serverClosed) || errors.Is(err, net.ErrClosed)
}

// Shutdown gracefully stops the servers.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errs []error
	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		errs = append(errs, err)
	}
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ready is closed once Serve has opened its listeners.
func (s *SSHServer) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound SSH address once listening, the configured one before.
func (s *SSHServer) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.addr != nil {
		return s.addr.String()
	}
	return s.config.Address
}

// MetricsAddr returns the bound metrics address, or "" when not listening.
func (s *SSHServer) MetricsAddr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.metricsAddr == nil {
		return ""
	}
	return s.metricsAddr.String()
}

// Metrics returns the server's collectors.
func (s *SSHServer) Metrics() *Metrics {
	return s.metrics
}
