// Package server exposes the equity engines over a WebSocket JSON protocol.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/pokerodds/equity"
	"github.com/lox/pokerodds/internal/requestid"
)

// Limits bounds the work a single request may ask for, and how many
// requests one connection may have running at once.
type Limits struct {
	MaxHoles      int
	MaxSampleSize int
	MaxInFlight   int
}

// DefaultLimits are used when none are configured
var DefaultLimits = Limits{MaxHoles: 10, MaxSampleSize: 1000000, MaxInFlight: 4}

// Option configures a Server
type Option func(*Server)

// WithClock sets the clock used for message timestamps and request timing
func WithClock(clock quartz.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithLimits sets per-request limits
func WithLimits(limits Limits) Option {
	return func(s *Server) {
		s.limits = limits
	}
}

// WithEquityOptions sets the options every request's calculator starts from
func WithEquityOptions(opts ...equity.Option) Option {
	return func(s *Server) {
		s.equityOpts = opts
	}
}

// Server represents the WebSocket server
type Server struct {
	addr        string
	upgrader    websocket.Upgrader
	connections map[*Connection]bool
	logger      *log.Logger
	clock       quartz.Clock
	limits      Limits
	equityOpts  []equity.Option
	ids         *requestid.Generator
	mu          sync.RWMutex
	httpServer  *http.Server
}

// NewServer creates a new WebSocket server
func NewServer(addr string, logger *log.Logger, opts ...Option) *Server {
	s := &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		connections: make(map[*Connection]bool),
		logger:      logger.WithPrefix("server"),
		clock:       quartz.NewReal(),
		limits:      DefaultLimits,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.limits.MaxInFlight <= 0 {
		s.limits.MaxInFlight = DefaultLimits.MaxInFlight
	}
	s.ids = requestid.NewGenerator(s.clock, nil)
	return s
}

// Handler returns the HTTP handler serving /ws and /health
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	s.logger.Info("Starting WebSocket server", "addr", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and closes every connection
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	for conn := range s.connections {
		_ = conn.Close() // Ignore close errors during shutdown
	}
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// ConnectionCount returns the number of open connections
func (s *Server) ConnectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.connections)
}

func (s *Server) register(conn *Connection) {
	s.mu.Lock()
	s.connections[conn] = true
	total := len(s.connections)
	s.mu.Unlock()
	s.logger.Info("Client connected", "conn", conn.id, "total", total)
}

func (s *Server) unregister(conn *Connection) {
	s.mu.Lock()
	if _, ok := s.connections[conn]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.connections, conn)
	total := len(s.connections)
	s.mu.Unlock()

	_ = conn.Close() // Ignore close errors during unregistration
	s.logger.Info("Client disconnected", "conn", conn.id, "total", total)
}

// handleWebSocket handles WebSocket upgrade requests
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("Failed to upgrade connection", "error", err)
		return
	}

	client := NewConnection(conn, s)
	s.register(client)
	client.Start()

	go func() {
		<-client.ctx.Done()
		s.unregister(client)
	}()
}

// handleHealth handles health check requests
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "OK") // Ignore write errors for health check
}

// calculator builds a calculator for one request, applying its overrides
// on top of the server's options.
func (s *Server) calculator(extra ...equity.Option) *equity.Calculator {
	opts := make([]equity.Option, 0, len(s.equityOpts)+len(extra)+1)
	opts = append(opts, s.equityOpts...)
	opts = append(opts, equity.WithLogger(s.logger))
	opts = append(opts, extra...)
	return equity.New(opts...)
}
