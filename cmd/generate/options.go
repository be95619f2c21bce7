package main

import (
	stderrors "errors"
	"flag"
	"io"
	"strconv"
	"strings"
	"time"

	"airline-warehouse/internal/generator"
	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/errors"
)

type options struct {
	generator generator.Config
	outputDir string
	format    string
	load      bool
	truncate  bool
}

// parseFlags overlays command-line flags on the environment configuration.
// It returns nil options and a nil error when only help was requested.
func parseFlags(args []string, cfg *config.Config, output io.Writer) (*options, error) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(output)

	gen := cfg.Generator
	seed := ""
	if gen.Seed != nil {
		seed = strconv.FormatInt(*gen.Seed, 10)
	}

	flights := fs.Int("flights", gen.Flights, "number of flights to generate")
	passengers := fs.Int("passengers", gen.Customers, "number of customers to generate")
	start := fs.String("start", gen.StartDate.Format(config.DateLayout), "first day of the window (YYYY-MM-DD)")
	end := fs.String("end", gen.EndDate.Format(config.DateLayout), "last day of the window (YYYY-MM-DD)")
	routes := fs.Int("routes", gen.Routes, "number of distinct routes")
	perFlight := fs.Int("bookings-per-flight", gen.BookingsPerFlight, "average bookings per flight")
	seedFlag := fs.String("seed", seed, "random seed; empty for a non-deterministic run")
	outputDir := fs.String("output", cfg.Output.Dir, "output directory")
	format := fs.String("format", cfg.Output.Format, "output format: csv or parquet")
	load := fs.Bool("load", cfg.Output.LoadDatabase, "bulk load the dataset into Postgres")
	truncate := fs.Bool("truncate", false, "empty the warehouse tables before loading")

	if err := fs.Parse(args); err != nil {
		if stderrors.Is(err, flag.ErrHelp) {
			return nil, nil
		}
		return nil, errors.WrapValidation("invalid arguments", err)
	}

	startDate, err := time.Parse(config.DateLayout, *start)
	if err != nil {
		return nil, errors.WrapValidation("start date must use YYYY-MM-DD", err)
	}
	endDate, err := time.Parse(config.DateLayout, *end)
	if err != nil {
		return nil, errors.WrapValidation("end date must use YYYY-MM-DD", err)
	}
	parsedSeed, err := config.ParseSeed(*seedFlag)
	if err != nil {
		return nil, errors.WrapValidation("invalid seed", err)
	}

	return &options{
		generator: generator.Config{
			Flights:           *flights,
			Customers:         *passengers,
			StartDate:         startDate,
			EndDate:           endDate,
			Routes:            *routes,
			BookingsPerFlight: *perFlight,
			Seed:              parsedSeed,
		},
		outputDir: *outputDir,
		format:    strings.ToLower(*format),
		load:      *load,
		truncate:  *truncate,
	}, nil
}
