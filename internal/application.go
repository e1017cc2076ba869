package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ninjamadeena/XO-Online/internal/config"
	"github.com/ninjamadeena/XO-Online/internal/repository"
	"github.com/ninjamadeena/XO-Online/internal/repository/storage"
	"github.com/ninjamadeena/XO-Online/internal/service"
	"github.com/ninjamadeena/XO-Online/internal/transport/rest"
	"github.com/ninjamadeena/XO-Online/internal/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const shutdownTimeout = 5 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	historyRepo := repository.NewHistoryRepository(redisStorage.Connection)
	coordinator := service.NewCoordinator(logger, historyRepo)
	wsServer := websocket.New(logger, coordinator)

	mux := rest.NewRouter(conf.StaticDir)
	mux.HandleFunc("/ws", wsServer.HandleConnection)

	// Websocket connections survive past these timeouts: gorilla hijacks
	// the connection on upgrade and manages its own deadlines.
	srv := &http.Server{
		Addr:              ":" + conf.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.Port)
		if httpErr := srv.ListenAndServe(); httpErr != nil && !errors.Is(httpErr, http.ErrServerClosed) {
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err = srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown error: %w", err)
		}

		return nil
	}
}
