package server

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Server is http.Server with the platform's lifecycle logging attached.
type Server struct {
	http.Server
	Logger *logrus.Logger
}

func (s *Server) ListenAndServe() error {
	s.Logger.WithField("address", s.Addr).Info("http server is listening")

	err := s.Server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.Logger.WithError(err).Error("http server stopped unexpectedly")
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("http server is shutting down")

	if err := s.Server.Shutdown(ctx); err != nil {
		s.Logger.WithError(err).Error("http server shutdown failed")
		return err
	}

	s.Logger.Info("http server has been shut down gracefully")

	return nil
}
