package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gogame/internal/bootstrap"
	gameDelivery "gogame/internal/delivery/game"
	ownMiddleware "gogame/internal/middleware"
	repo "gogame/internal/repository"
)

type mainDeliveryHandler struct {
	game *gameDelivery.GameHandler
}

func main() {
	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		NewLogger(false).Error("Failed to setup configuration", zap.Error(err))
		return
	}
	logger := NewLogger(cfg.LogDevelopment)
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	r := chi.NewRouter()
	handlers := initializeDeliveryHandlers(*cfg, logger)
	handlers.Router(r, cfg.IsLocalCors)

	server := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Errorw("Graceful shutdown failed", "error", err)
		}
	}()

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func NewLogger(development bool) *zap.SugaredLogger {
	build := zap.NewProduction
	if development {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h.game.Router(r)
}

func initializeDeliveryHandlers(cfg bootstrap.Config, log *zap.SugaredLogger) *mainDeliveryHandler {
	seed := uint64(cfg.BotSeed)
	if cfg.BotSeed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infow("Bot seeded", "seed", seed, "autoplay", cfg.BotAutoplay)

	store := repo.NewSessionStore(log, seed)
	return &mainDeliveryHandler{
		game: gameDelivery.NewGameHandler(cfg, log, store),
	}
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
