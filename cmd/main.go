package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"rukun-live/auth"
	"rukun-live/internal"
	"rukun-live/observability"
	"rukun-live/repositories"
	"rukun-live/runtime"
	"rukun-live/runtime/workers"
	"rukun-live/services"
	"rukun-live/sink"
	"rukun-live/transport"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and centralizes error reporting.
// This pattern is preferred over calling os.Exit or panic directly because:
// 1. It ensures all 'defer' statements (like database cleanup) are executed before the program exits.
// 2. It improves testability by decoupling the initialization logic from the main entry point.
// 3. It provides a structured way to handle graceful shutdowns for the HTTP server and background workers.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	replacement, err := internal.CharacterRune(config.ModerationCharReplacement)
	if err != nil {
		return err
	}

	// 2. Database (BadgerDB) backing the notification read model
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Setup Supervision & Orchestration
	sup := workers.NewSupervisor(log, config.RestartInterval)
	registry := runtime.NewRegistry()
	monitor := observability.NewMonitor()
	counters := repositories.NewCounterRepository(db, log)

	orchestrator := runtime.NewOrchestrator(
		log, sup, registry, monitor,
		config.BufferSize, config.SinkTimeout, config.HeartbeatInterval,
		replacement,
	)
	orchestrator.Add(sink.NewReadModelSink(counters, log))

	if config.DebugPort != 0 {
		internal.StartDebugServer(db, config.DebugPort, func() map[string]any {
			snap := monitor.Snapshot()
			return map[string]any{
				"connections": snap.ActiveConnections,
				"published":   snap.EventsPublished,
				"deliveries":  snap.Deliveries,
			}
		})
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Start the engine
	engineErr := make(chan error, 1)
	go func() {
		if err := orchestrator.Start(ctx); err != nil {
			engineErr <- fmt.Errorf("orchestrator failed to start: %w", err)
		}
	}()

	// 6. HTTP + WebSocket server setup
	notifyService := services.NewNotifyService(orchestrator)
	verifier := auth.NewVerifier(config.AuthSecret)
	wsServer := transport.NewServer(log, notifyService, verifier, config.ConnectionBufferSize)
	api := transport.NewAPI(log, notifyService, counters)

	mux := http.NewServeMux()
	api.Routes(mux, wsServer)

	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	httpServer := &http.Server{Addr: address, Handler: mux}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting realtime server", "address", address, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server error: %w", err)
		}
	}()

	// 7. Wait for stop or error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	case err := <-engineErr:
		return err
	}

	// 8. Final cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	orchestrator.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
