package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cardoctor/pkg/client"
	"cardoctor/pkg/config"
	"cardoctor/pkg/events"
	"cardoctor/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

// Application owns the HTTP server and every resource with a teardown path:
// the Mongo handle and the optional event publisher are closed during
// graceful shutdown.
type Application struct {
	cfg       *config.Config
	server    *http.Server
	mongo     *client.MongoClient
	publisher events.Publisher
}

func NewApplication(cfg *config.Config, mongo *client.MongoClient, publisher events.Publisher) *Application {
	return &Application{
		cfg:       cfg,
		mongo:     mongo,
		publisher: publisher,
	}
}

// SetServer wraps the router in the global middleware chain: recovery
// outermost, then request logging, then CORS.
func (a *Application) SetServer(router *httprouter.Router) {
	var handler http.Handler = router
	handler = middleware.CORS(a.cfg.CORSOrigin)(handler)
	handler = middleware.RequestLogging(a.cfg.Log)(handler)
	handler = middleware.Recovery(a.cfg.Log)(handler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      handler,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.cfg.Log.Error("Failed to close event publisher", "error", err)
		}
	}

	a.mongo.Disconnect(ctx)
	a.cfg.Log.Info("Server stopped gracefully")
}
