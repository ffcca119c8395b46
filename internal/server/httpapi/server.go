// Package httpapi exposes the identity and employee services over HTTP,
// modelled after the gRPC transport this server grew out of: one Server
// struct owning the services, a middleware admission check, and graceful
// shutdown driven by the surrounding context.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/staffdesk/internal/logging"
	"github.com/dmitrijs2005/staffdesk/internal/server/auth"
	"github.com/dmitrijs2005/staffdesk/internal/server/employees"
	"github.com/dmitrijs2005/staffdesk/internal/server/positions"
	"github.com/dmitrijs2005/staffdesk/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	gate      *auth.Gate
	users     *users.Service
	employees *employees.Service
	positions *positions.Client
}

func NewServer(a string, l logging.Logger, g *auth.Gate, us *users.Service, es *employees.Service, pc *positions.Client) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		gate:      g,
		users:     us,
		employees: es,
		positions: pc,
	}, nil
}

func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.setupRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "error shutting down server", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
