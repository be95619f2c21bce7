package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"airline-warehouse/internal/shared/config"
	"airline-warehouse/internal/shared/errors"
	"airline-warehouse/internal/warehouse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(dir string) *config.Config {
	seed := int64(42)
	return &config.Config{
		Generator: config.GeneratorConfig{
			Flights:           1000,
			Customers:         500,
			StartDate:         time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:           time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
			Routes:            200,
			BookingsPerFlight: 3,
			Seed:              &seed,
		},
		Output: config.OutputConfig{Dir: dir, Format: "csv"},
	}
}

func TestParseFlagsOverlaysEnvironment(t *testing.T) {
	opts, err := parseFlags([]string{
		"-flights", "50",
		"-passengers", "20",
		"-start", "2024-02-01",
		"-end", "2024-02-10",
		"-format", "PARQUET",
		"-truncate",
	}, baseConfig("out"), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, 50, opts.generator.Flights)
	assert.Equal(t, 20, opts.generator.Customers)
	assert.Equal(t, 200, opts.generator.Routes)
	assert.Equal(t, 3, opts.generator.BookingsPerFlight)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), opts.generator.StartDate)
	require.NotNil(t, opts.generator.Seed)
	assert.Equal(t, int64(42), *opts.generator.Seed)
	assert.Equal(t, "parquet", opts.format)
	assert.Equal(t, "out", opts.outputDir)
	assert.True(t, opts.truncate)
	assert.False(t, opts.load)
}

func TestParseFlagsEmptySeed(t *testing.T) {
	opts, err := parseFlags([]string{"-seed", ""}, baseConfig("out"), io.Discard)
	require.NoError(t, err)
	assert.Nil(t, opts.generator.Seed)
}

func TestParseFlagsHelp(t *testing.T) {
	for _, arg := range []string{"-h", "-help"} {
		var usage strings.Builder
		opts, err := parseFlags([]string{arg}, baseConfig("out"), &usage)
		require.NoError(t, err, arg)
		assert.Nil(t, opts, arg)
		assert.Contains(t, usage.String(), "-bookings-per-flight", arg)
	}
}

func TestParseFlagsRejectsBadInput(t *testing.T) {
	for _, args := range [][]string{
		{"-start", "01/02/2024"},
		{"-end", "tomorrow"},
		{"-seed", "abc"},
		{"-flights", "many"},
		{"-unknown"},
	} {
		_, err := parseFlags(args, baseConfig("out"), io.Discard)
		require.Error(t, err, args)
		assert.Equal(t, exitConfig, exitCode(err), args)
	}
}

func TestRunRejectsConfigBeforeWriting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	for _, args := range [][]string{
		{"-flights", "0"},
		{"-start", "2024-03-10", "-end", "2024-03-01"},
		{"-format", "xlsx"},
	} {
		opts, err := parseFlags(append(args, "-output", dir), baseConfig(dir), io.Discard)
		require.NoError(t, err)

		err = run(context.Background(), opts)
		require.Error(t, err, args)
		assert.Equal(t, exitConfig, exitCode(err), args)

		_, statErr := os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr), args)
	}
}

func TestRunWritesDataset(t *testing.T) {
	dir := t.TempDir()
	opts, err := parseFlags([]string{
		"-flights", "30",
		"-passengers", "15",
		"-start", "2024-04-01",
		"-end", "2024-04-05",
		"-routes", "20",
		"-bookings-per-flight", "1",
	}, baseConfig(dir), io.Discard)
	require.NoError(t, err)

	require.NoError(t, run(context.Background(), opts))

	manifest, err := warehouse.ReadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(42), manifest.Seed)
	for _, name := range warehouse.TableNames {
		assert.FileExists(t, filepath.Join(dir, name+".csv"))
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitConfig, exitCode(errors.Validation("bad")))
	assert.Equal(t, exitFailure, exitCode(errors.WrapExternal("disk", os.ErrPermission)))
	assert.Equal(t, exitFailure, exitCode(errors.Internalf("broken invariant")))
}
