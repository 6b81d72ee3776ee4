package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "opencog_dashboard/docs"
	"opencog_dashboard/internal/config"
	"opencog_dashboard/internal/handlers"
	"opencog_dashboard/internal/logger"
	"opencog_dashboard/internal/repository"
	"opencog_dashboard/internal/repository/db"
	"opencog_dashboard/internal/server"
	"opencog_dashboard/internal/service"
)

const shutdownTimeout = 10 * time.Second

// @title        OpenCog Dashboard API
// @version      1.0
// @description  Control panel for a simulated OpenCog server.
// @host         localhost:8080
// @BasePath     /
func main() {
	// load configs/config.yml; defaults cover a missing file
	cfg, err := config.Load()
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Init(cfg.Log.Level, cfg.Log.Encoding)
	defer func() { _ = log.Sync() }()

	// open DB
	conn, err := openDB(cfg, log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(service.Deps{
		Repos:    repos,
		Backend:  service.NewMockBackend(mockLatency(cfg.Latency)),
		Options:  dashboardOptions(cfg, log),
		Registry: hostRegistry(cfg),
	})

	var opts []handlers.Option
	if cfg.Automation.MCP {
		opts = append(opts, handlers.WithMCP())
	}
	apiHandler := handlers.NewHandler(services, log, opts...)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(services, srv, log)
}

// openDB initializes the SQLite database using configuration.
func openDB(cfg config.Config, log *logger.Logger) (*sql.DB, error) {
	if cfg.DB.Path != db.MemoryPath {
		log.Infow("output log stored on disk", "path", cfg.DB.Path)
	}
	return db.InitDB(cfg.DB.Path)
}

func mockLatency(l config.Latency) service.MockLatency {
	return service.MockLatency{
		Connect:    l.Connect,
		Evaluate:   l.Evaluate,
		FetchAtoms: l.Refresh,
		ClearAtoms: l.Clear,
	}
}

func dashboardOptions(cfg config.Config, log *logger.Logger) service.Options {
	return service.Options{
		AllowList:            cfg.Dashboard.AllowList,
		DefaultServerURL:     cfg.Dashboard.DefaultServerURL,
		MutationRefreshDelay: cfg.Latency.MutationRefresh,
		Logger:               log,
	}
}

// hostRegistry stands in for the host application's automation registry.
// With automation.registry off the shim is never registered.
func hostRegistry(cfg config.Config) *service.Registry {
	if !cfg.Automation.Registry {
		return nil
	}
	return service.NewRegistry(nil)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = config.DefaultPort
		}
		log.Infow("http_server_starting", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(services *service.Service, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}

	// cancel pending simulated calls and wait for background refreshes
	services.Close()
}
