package server

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/nutri-track/internal/config"
	"github.com/MKhiriev/nutri-track/internal/handler"
	"github.com/MKhiriev/nutri-track/internal/logger"
	"github.com/MKhiriev/nutri-track/internal/workers"
)

// shutdownTimeout bounds how long in-flight requests may take to finish
// once a stop signal arrives.
const shutdownTimeout = 15 * time.Second

// backgroundRunner is satisfied by [*workers.Workers].
type backgroundRunner interface {
	Run(ctx context.Context)
}

type server struct {
	httpServer *httpServer
	workers    backgroundRunner
	logger     *logger.Logger

	stopOnce sync.Once
	quit     chan struct{}
}

func NewServer(handlers *handler.Handlers, workers *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	s := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
		quit:       make(chan struct{}),
	}
	if workers != nil {
		s.workers = workers
	}

	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops a running server as if a stop signal had arrived.
func (s *server) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
}

// run serves until ctx is done, Shutdown is called or the listener fails,
// then drains the HTTP server and waits for the workers to return.
func (s *server) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if s.workers != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.workers.Run(ctx)
		}()
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
	case <-s.quit:
		s.logger.Info().Msg("shutdown requested")
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("HTTP server: %w", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	s.httpServer.shutdown(shutdownCtx)

	cancel()
	wg.Wait()

	s.logger.Info().Msg("server shutdown gracefully")
	return err
}
