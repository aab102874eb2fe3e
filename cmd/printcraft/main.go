package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	adapthttp "printcraft/internal/adapter/http"
	"printcraft/internal/app"
	"printcraft/internal/catalog"
	"printcraft/internal/config"
	"printcraft/internal/logging"
	"printcraft/internal/persist"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	repo, closeRepo, err := openStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.Warn("close storage", zap.Error(err))
		}
	}()

	adapter := persist.New(repo, cfg.StorageNamespace, logger)
	cart := app.NewCartStore(ctx, adapter, app.WithLogger(logger))
	session := app.NewSessionStore(ctx, adapter, app.WithLogger(logger))
	checkout := app.NewCheckoutService(cart, cfg.CheckoutDelay, app.WithCheckoutLogger(logger))

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: adapthttp.New(adapthttp.Services{
			Catalog:  products,
			Cart:     cart,
			Session:  session,
			Checkout: checkout,
			Artwork:  app.NewArtworkService(repo),
			Drafts:   app.NewDraftService(products),
		}, logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("listening",
		zap.String("addr", cfg.Addr),
		zap.String("storage", cfg.StorageBackend),
		zap.Int("cart_items", cart.Count()),
		zap.Stringer("session", session.State()),
	)
	return serve(ctx, srv, checkout, logger)
}

// serve runs srv until it fails or ctx is done. Pending checkout completions
// are drained on every exit path.
func serve(ctx context.Context, srv *http.Server, pending interface{ Wait() }, logger *zap.Logger) error {
	defer pending.Wait()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
	return nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
