package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/profile-board/backend/internal/audit"
	"github.com/zhouzirui/profile-board/backend/internal/config"
	"github.com/zhouzirui/profile-board/backend/internal/handler"
	"github.com/zhouzirui/profile-board/backend/internal/model/profile"
	profileService "github.com/zhouzirui/profile-board/backend/internal/service/profile"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	seed, err := loadSeed(cfg.Seed)
	if err != nil {
		log.Fatalf("failed to load seed profiles: %v", err)
	}

	store := profile.NewMemoryStore(seed)
	recorder := audit.NewRecorder(log.Writer(), cfg.Audit.HistoryLimit)
	svc := profileService.NewService(store, recorder)
	log.Printf("profile store seeded with %d profiles", len(seed))

	router := handler.NewRouter(svc, cfg.Server.AllowedOrigin)

	startServer(ctx, cfg.Server, router)
}

func loadSeed(cfg config.SeedConfig) ([]profile.Profile, error) {
	if cfg.File == "" {
		return profile.Seed(), nil
	}
	return profile.LoadSeed(cfg.File)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("profile board listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
