package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/database"
	"airline-warehouse/internal/shared/errors"
	"airline-warehouse/internal/shared/logger"
	"airline-warehouse/internal/warehouse"
)

const (
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize config: %v\n", err)
		os.Exit(exitConfig)
	}
	logger.Init()

	opts, err := parseFlags(os.Args[1:], config.GlobalConfig, os.Stderr)
	if err != nil {
		os.Exit(exitCode(err))
	}
	if opts == nil {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("Generation failed", "error", err, "error_type", errors.GetType(err))
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errors.ErrorTypeValidation) {
		return exitConfig
	}
	return exitFailure
}

// run validates everything up front so a bad configuration never leaves a
// half-written output directory behind.
func run(ctx context.Context, opts *options) error {
	log := slog.With("component", "generate", "operation", "run")

	if err := opts.generator.Validate(); err != nil {
		return err
	}
	exporter, err := warehouse.NewExporter(opts.format, opts.outputDir)
	if err != nil {
		return err
	}

	ds, err := generator.Generate(opts.generator, slog.Default())
	if err != nil {
		return err
	}

	files, err := exporter.Export(ds)
	if err != nil {
		return err
	}
	log.Info("Dataset exported",
		"run_id", ds.RunID,
		"seed", ds.Seed,
		"format", opts.format,
		"dir", opts.outputDir,
		"files", len(files))

	if !opts.load {
		return nil
	}
	return load(ctx, ds, opts.truncate)
}

func load(ctx context.Context, ds *generator.Dataset, truncate bool) error {
	db, err := database.Connect(ctx)
	if err != nil {
		return errors.WrapExternal("failed to connect to warehouse database", err)
	}
	defer db.Close()

	if _, err := db.RunMigrations(ctx, config.GlobalConfig.Database.MigrationsPath); err != nil {
		return err
	}

	return warehouse.NewLoader(db).Load(ctx, warehouse.Tables(ds), truncate)
}
