// Package httpserver runs the kiosk's local HTTP endpoints.
package httpserver

import (
	"context"
	"net"
	"net/http"
	"time"

	appLogger "github.com/nmgaston/protect-kiosk/pkg/logger"
)

const (
	_defaultReadTimeout     = 15 * time.Second
	_defaultWriteTimeout    = 15 * time.Second
	_defaultAddr            = "127.0.0.1:0"
	_defaultShutdownTimeout = 3 * time.Second
)

// Server -.
type Server struct {
	server          *http.Server
	notify          chan error
	shutdownTimeout time.Duration
	listener        net.Listener
	log             appLogger.Interface
}

// New binds the listener and starts serving. Binding happens before New
// returns so Addr is valid immediately, even for port 0.
func New(handler http.Handler, opts ...Option) (*Server, error) {
	httpServer := &http.Server{
		Handler:           handler,
		ReadTimeout:       _defaultReadTimeout,
		ReadHeaderTimeout: _defaultReadTimeout,
		WriteTimeout:      _defaultWriteTimeout,
		Addr:              _defaultAddr,
	}

	s := &Server{
		server:          httpServer,
		notify:          make(chan error, 1),
		shutdownTimeout: _defaultShutdownTimeout,
		log:             appLogger.New("info"),
	}

	// Custom options
	for _, opt := range opts {
		opt(s)
	}

	l, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return nil, err
	}

	s.listener = l

	s.start()

	return s, nil
}

func (s *Server) start() {
	go func() {
		s.log.Debug("httpserver - serving on %s", s.listener.Addr())

		s.notify <- s.server.Serve(s.listener)

		close(s.notify)
	}()
}

// Addr is the bound address, e.g. 127.0.0.1:53211.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// URL is the http URL of the bound address.
func (s *Server) URL() string {
	return "http://" + s.Addr()
}

// Notify -.
func (s *Server) Notify() <-chan error {
	return s.notify
}

// Shutdown -.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	return s.server.Shutdown(ctx)
}
