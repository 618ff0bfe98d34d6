// Package main provides the CLI entry point for rngspeed, a cycle-accurate
// throughput benchmark for pseudo-random number generators.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/weiihann/rngspeed/cpu"
	"github.com/weiihann/rngspeed/cycles"
	"github.com/weiihann/rngspeed/generator"
	"github.com/weiihann/rngspeed/harness"
	"github.com/weiihann/rngspeed/report"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "rngspeed",
		Short: "Cycle-accurate throughput benchmark for random number generators",
		Long: `Rngspeed fills a fixed-size buffer with the output of each compiled-in
pseudo-random number generator, times every fill between serialized cycle
counter reads, and reports the best observed cost in cycles per byte.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetOut(out)
	root.AddCommand(newRunCmd(logger, level))
	root.AddCommand(newListCmd())

	return root
}

type runConfig struct {
	size      int
	repeat    int
	sweeps    int
	seed      uint64
	cpu       int
	clock     string
	format    string
	only      []string
	samples   bool
	verbose   bool
	calibrate bool
}

func newRunCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var cfg runConfig

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure every generator and report cycles per byte",
		Long: `Run the generator sweep more than once with identical parameters so the
results of each pass can be compared by eye.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.verbose {
				level.Set(slog.LevelDebug)
			}

			return runBenchmark(cmd.Context(), logger, cmd.OutOrStdout(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.size, "size", harness.DefaultSize,
		"Buffer size in bytes (positive multiple of 8)")
	flags.IntVar(&cfg.repeat, "repeat", harness.DefaultRepeat,
		"Timed repetitions per generator; the minimum is kept")
	flags.IntVar(&cfg.sweeps, "sweeps", 2,
		"Number of full sweeps to run")
	flags.Uint64Var(&cfg.seed, "seed", 0,
		"Generator seed (0 = use current time)")
	flags.IntVar(&cfg.cpu, "cpu", -1,
		"Pin the measuring thread to this CPU (-1 = do not pin)")
	flags.StringVar(&cfg.clock, "clock", cycles.ClockAuto,
		"Counter: auto, tsc, monotonic")
	flags.StringVar(&cfg.format, "format", formatText,
		"Output format: text, markdown, json")
	flags.StringSliceVar(&cfg.only, "only", nil,
		"Only measure these generators (e.g. pcg32,splitmix64)")
	flags.BoolVar(&cfg.samples, "samples", false,
		"Keep every repetition and report median and p90 as well")
	flags.BoolVar(&cfg.verbose, "verbose", false,
		"Enable debug logging")
	flags.BoolVar(&cfg.calibrate, "calibrate", false,
		"Estimate the TSC rate before measuring")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the compiled-in generators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := generator.Default(1)
			w := cmd.OutOrStdout()

			for _, e := range reg.Width32() {
				fmt.Fprintf(w, "32  %s\n", e.Name)
			}
			for _, e := range reg.Width64() {
				fmt.Fprintf(w, "64  %s\n", e.Name)
			}

			return nil
		},
	}
}

func runBenchmark(
	ctx context.Context,
	logger *slog.Logger,
	out io.Writer,
	cfg runConfig,
) error {
	if err := harness.CheckSize(cfg.size); err != nil {
		return err
	}

	if cfg.repeat <= 0 {
		return fmt.Errorf("%w: got %d", harness.ErrInvalidRepeat, cfg.repeat)
	}

	if cfg.sweeps <= 0 {
		return fmt.Errorf("sweeps must be positive, got %d", cfg.sweeps)
	}

	switch cfg.format {
	case formatText, formatMarkdown, formatJSON:
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}

	seed := cfg.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	reg := generator.Default(seed)
	if len(cfg.only) > 0 {
		var err error

		reg, err = reg.Filter(cfg.only)
		if err != nil {
			return fmt.Errorf("select generators: %w", err)
		}
	}

	counter, err := cycles.New(cfg.clock)
	if err != nil {
		return fmt.Errorf("open counter: %w", err)
	}

	info := cpu.Describe()
	logger.InfoContext(ctx, "starting benchmark",
		slog.String("cpu", info.Brand),
		slog.Int("logical_cores", info.LogicalCores),
		slog.String("unit", counter.Unit()),
		slog.Int("size", cfg.size),
		slog.Int("repeat", cfg.repeat),
		slog.Int("sweeps", cfg.sweeps),
		slog.Uint64("seed", seed),
		slog.Int("generators", reg.Len()),
	)

	if tsc, ok := counter.(*cycles.TSC); ok && cfg.calibrate {
		logger.InfoContext(ctx, "calibrated tsc",
			slog.Float64("ticks_per_ns", tsc.Calibrate(50*time.Millisecond)),
			slog.Bool("rdtscp", tsc.RDTSCP()),
		)
	}

	if cfg.cpu >= 0 {
		release, err := cpu.Pin(cfg.cpu)
		switch {
		case errors.Is(err, cpu.ErrPinUnsupported):
			logger.WarnContext(ctx, "running unpinned", slog.String("error", err.Error()))
		case err != nil:
			return fmt.Errorf("pin: %w", err)
		default:
			defer release()
			logger.InfoContext(ctx, "pinned", slog.Int("cpu", cfg.cpu))
		}
	}

	runner := harness.NewRunner(counter, reg, logger)
	hcfg := harness.Config{
		Size:        cfg.size,
		Repeat:      cfg.repeat,
		KeepSamples: cfg.samples,
	}

	var sweeps []harness.Sweep

	if cfg.format == formatText {
		// Stream each line as soon as the generator is measured.
		runner.Observe = func(r harness.Result, _ *harness.Scratch) {
			report.Line(out, r, counter.Unit())
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "We repeat the benchmark more than once. "+
			"Make sure that you get comparable results.")

		for i := 1; i <= cfg.sweeps; i++ {
			report.Header(out, cfg.size, counter.Unit())

			s, err := runner.Sweep(ctx, hcfg)
			if err != nil {
				return fmt.Errorf("sweep %d: %w", i, err)
			}

			s.Run = i
			sweeps = append(sweeps, *s)
			fmt.Fprintln(out)
		}
	} else {
		sweeps, err = runner.Run(ctx, hcfg, cfg.sweeps)
		if err != nil {
			return err
		}

		if cfg.format == formatJSON {
			if err := report.GenerateJSON(out, sweeps); err != nil {
				return fmt.Errorf("generate JSON report: %w", err)
			}
		} else {
			if err := report.Generate(out, sweeps); err != nil {
				return fmt.Errorf("generate report: %w", err)
			}
		}
	}

	logger.InfoContext(ctx, "benchmark complete",
		slog.Int("measurements", measurementCount(sweeps)),
	)

	return nil
}

func measurementCount(sweeps []harness.Sweep) int {
	n := 0
	for _, s := range sweeps {
		n += len(s.Results)
	}

	return n
}
