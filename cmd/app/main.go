package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/osse101/BrandishVendor_Go/internal/config"
	"github.com/osse101/BrandishVendor_Go/internal/domain"
	"github.com/osse101/BrandishVendor_Go/internal/item"
	"github.com/osse101/BrandishVendor_Go/internal/logger"
	"github.com/osse101/BrandishVendor_Go/internal/metrics"
	"github.com/osse101/BrandishVendor_Go/internal/shop"
)

func main() {
	// Defaults until the environment has been read
	logger.InitLogger(logger.DefaultConfig())

	cfg, warnings, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	log := logger.FromContext(ctx)

	for _, w := range warnings {
		log.Warn("Config warning", "warning", w)
	}

	if err := run(ctx, shop.NewVendor(os.Stdout), item.NewLoader()); err != nil {
		log.Error("Vendor run failed", "error", err)
		os.Exit(1)
	}

	if snap, err := metrics.Snapshot(prometheus.DefaultGatherer); err == nil {
		log.Info("Vendor run complete", "metrics", snap)
	}
}

// run presents the counter items through both dispatch paths, then the boxed stock
func run(ctx context.Context, v *shop.Vendor, loader item.Loader) error {
	sword, err := domain.NewSword("Sword of cowardise", 10, 1500)
	if err != nil {
		return err
	}
	shield, err := domain.NewShield("Golden Barrier", 50, 35)
	if err != nil {
		return err
	}

	if err := shop.Present(ctx, v, sword); err != nil {
		return err
	}
	if err := shop.Present(ctx, v, shield); err != nil {
		return err
	}

	// Borrowed handles: the stall points at sword and shield above
	counter := shop.NewStall(&sword, &shield)
	if err := v.PresentAll(ctx, counter.Items()); err != nil {
		return err
	}

	// Owned handles: the loader hands over values nobody else holds
	stock, err := loader.LoadEmbedded()
	if err != nil {
		return err
	}
	boxed, err := loader.Build(ctx, stock)
	if err != nil {
		return err
	}
	return v.PresentAll(ctx, shop.NewStall(boxed...).Items())
}
