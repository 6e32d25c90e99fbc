package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/DoyleJ11/sosphone-backend/internal/clock"
	"github.com/DoyleJ11/sosphone-backend/internal/config"
	"github.com/DoyleJ11/sosphone-backend/internal/device"
	"github.com/DoyleJ11/sosphone-backend/internal/httpapi"
	"github.com/DoyleJ11/sosphone-backend/internal/hub"
	"github.com/DoyleJ11/sosphone-backend/internal/phone"
	"github.com/DoyleJ11/sosphone-backend/internal/prefs"
	"github.com/DoyleJ11/sosphone-backend/internal/reveal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.Dev)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := prefs.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeStore()) }()

	validator := phone.NewValidator()
	h := hub.NewHub(ctx, func(ctx context.Context, id string) *device.Device {
		return device.NewDevice(ctx, id, device.Deps{
			Store:     prefs.Scoped(store, prefs.DeviceNamespace(id)),
			Validator: validator,
			Region:    cfg.Region,
			Locale:    cfg.Locale,
			Log:       log,
			Clock:     clock.Real{},
			Source:    reveal.NewRandSource(),
			Unit:      cfg.RevealStep,
		})
	})

	// Build the router *with* the hub injected
	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: httpapi.SetupRoutes(h, httpapi.Options{
			Log:            log,
			Region:         cfg.Region,
			RateLimitRPS:   cfg.RateLimitRPS,
			RateLimitBurst: cfg.RateLimitBurst,
		}),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)

		select {
		case h.Inbox() <- hub.ShutdownHub{}:
		case <-h.Done():
		}
		select {
		case <-h.Done():
		case <-shutdownCtx.Done():
			err = multierr.Append(err, shutdownCtx.Err())
		}
		return err
	})
	return g.Wait()
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
