// Command mobius computes the surface area and edge length of a Möbius
// strip and renders its mesh to a PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/mobius"
	"github.com/gogpu/mobius/plot"
)

// config holds the command-line settings.
type config struct {
	radius     float64
	width      float64
	resolution int
	output     string
	summation  string
	boundary   bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("mobius", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.radius, "R", 4.0, "midline radius")
	fs.Float64Var(&cfg.width, "w", 0.4, "strip width")
	fs.IntVar(&cfg.resolution, "n", 100, "samples per parametric axis")
	fs.StringVar(&cfg.output, "o", "mobius_strip.png", "output image file")
	fs.StringVar(&cfg.summation, "summation", "naive", "reduction: naive, kahan or pairwise")
	fs.BoolVar(&cfg.boundary, "boundary", false, "also print the full boundary length")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func parseSummation(s string) (mobius.Summation, error) {
	switch strings.ToLower(s) {
	case "naive", "":
		return mobius.SumNaive, nil
	case "kahan":
		return mobius.SumKahan, nil
	case "pairwise":
		return mobius.SumPairwise, nil
	default:
		return 0, fmt.Errorf("unknown summation %q", s)
	}
}

// run installs a stderr logger at warn level before parsing flags, so
// every failure can be reported through mobius.Logger. The -v flag lowers
// the level to debug.
func run(args []string, stdout, stderr io.Writer) error {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	mobius.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		level.Set(slog.LevelDebug)
	}

	sum, err := parseSummation(cfg.summation)
	if err != nil {
		return err
	}

	strip, err := mobius.New(
		mobius.WithRadius(cfg.radius),
		mobius.WithWidth(cfg.width),
		mobius.WithResolution(cfg.resolution),
		mobius.WithSummation(sum),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Surface Area: %.4f square units\n", strip.SurfaceArea())
	fmt.Fprintf(stdout, "Edge Length: %.4f units\n", strip.EdgeLength())
	if cfg.boundary {
		fmt.Fprintf(stdout, "Boundary Length: %.4f units\n", strip.BoundaryLength())
	}

	return plot.New().SavePNG(strip.Mesh(), cfg.output)
}

// exitCode reports err through the logger run installed and returns the
// process status.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	default:
		mobius.Logger().Error("mobius failed", "err", err)
		return 1
	}
}

func main() {
	if code := exitCode(run(os.Args[1:], os.Stdout, os.Stderr)); code != 0 {
		os.Exit(code)
	}
}
