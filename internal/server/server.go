// Package server exposes the extraction and plan-generation pipeline over
// HTTP: one endpoint to inspect a spec's operations and one to download a
// generated plan.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/sudoDevesh/swagger2jmeter/internal/openapi"
)

var stopSignals = []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT}

type Server struct {
	addr   string
	loader *openapi.Loader
}

func New(addr string) *Server {
	return &Server{
		addr:   addr,
		loader: openapi.NewLoader(30 * time.Second),
	}
}

// Run starts the HTTP server and blocks until a stop signal arrives, then
// shuts down with a bounded grace period.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
	}

	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, stopSignals...)
	go func() {
		select {
		case <-sig:
		case <-ctx.Done():
		}
		timeout := 30 * time.Second
		log.Infof("Received shutdown signal. The graceful period will be %v", timeout)
		shutdownCtx, cancel := context.WithTimeout(serverCtx, timeout)
		defer cancel()
		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Fatal(err)
		}
		serverStopCtx()
	}()

	log.Infof("Started server on %s", httpServer.Addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-serverCtx.Done()
	log.Info("Shut down is finished.")
	return nil
}
