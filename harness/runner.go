package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/weiihann/rngspeed/cycles"
	"github.com/weiihann/rngspeed/generator"
)

// Config holds parameters for one sweep.
type Config struct {
	Size        int
	Repeat      int
	KeepSamples bool
}

// Runner measures every generator of a registry, one after another, on a
// single scratch buffer.
type Runner struct {
	Counter  cycles.Counter
	Registry *generator.Registry
	Logger   *slog.Logger

	// Observe, if set, is called after each generator is measured. The
	// scratch buffer still holds that generator's last fill.
	Observe func(Result, *Scratch)
}

// NewRunner creates a Runner over the given registry.
func NewRunner(
	counter cycles.Counter,
	registry *generator.Registry,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		Counter:  counter,
		Registry: registry,
		Logger:   logger.With(slog.String("unit", counter.Unit())),
	}
}

// Run performs sweeps consecutive sweeps with the same configuration.
func (r *Runner) Run(ctx context.Context, cfg Config, sweeps int) ([]Sweep, error) {
	out := make([]Sweep, 0, sweeps)

	for i := 1; i <= sweeps; i++ {
		s, err := r.Sweep(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("sweep %d: %w", i, err)
		}

		s.Run = i
		out = append(out, *s)
	}

	return out, nil
}

// Sweep allocates a scratch buffer of cfg.Size bytes and measures every
// 32-bit generator, then every 64-bit generator, in registry order.
func (r *Runner) Sweep(ctx context.Context, cfg Config) (*Sweep, error) {
	if err := CheckSize(cfg.Size); err != nil {
		return nil, err
	}

	if cfg.Repeat <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRepeat, cfg.Repeat)
	}

	buf, err := NewScratch(cfg.Size)
	if err != nil {
		return nil, err
	}

	timer := &Timer{
		Counter:     r.Counter,
		Repeat:      cfg.Repeat,
		KeepSamples: cfg.KeepSamples,
	}

	sweep := &Sweep{
		Size:    cfg.Size,
		Repeat:  cfg.Repeat,
		Unit:    r.Counter.Unit(),
		Results: make([]Result, 0, r.Registry.Len()),
	}

	r.Logger.DebugContext(ctx, "sweep starting",
		slog.Int("size", cfg.Size),
		slog.Int("repeat", cfg.Repeat),
		slog.Int("generators", r.Registry.Len()),
	)

	slots32, n32 := buf.Uint32s(), cfg.Size/4
	for _, e := range r.Registry.Width32() {
		next := e.Next

		trial, err := timer.Measure(func() { Fill(next, slots32, n32) }, cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("measure %s: %w", e.Name, err)
		}

		r.record(ctx, sweep, e.Name, 32, trial, buf)
	}

	slots64, n64 := buf.Uint64s(), cfg.Size/8
	for _, e := range r.Registry.Width64() {
		next := e.Next

		trial, err := timer.Measure(func() { Fill(next, slots64, n64) }, cfg.Size)
		if err != nil {
			return nil, fmt.Errorf("measure %s: %w", e.Name, err)
		}

		r.record(ctx, sweep, e.Name, 64, trial, buf)
	}

	return sweep, nil
}

func (r *Runner) record(
	ctx context.Context,
	sweep *Sweep,
	name string,
	width int,
	trial Trial,
	buf *Scratch,
) {
	res := Result{
		Name:      name,
		Width:     width,
		Bytes:     trial.Bytes,
		Repeat:    trial.Repeat,
		MinCycles: trial.MinCycles,
		PerByte:   trial.CyclesPerByte(),
		Discarded: trial.Discarded,
	}

	if len(trial.Samples) > 0 {
		res.MedianPerByte = trial.QuantilePerByte(0.5)
		res.P90PerByte = trial.QuantilePerByte(0.9)
	}

	if trial.Discarded > 0 {
		r.Logger.WarnContext(ctx, "discarded backwards samples",
			slog.String("generator", name),
			slog.Int("discarded", trial.Discarded),
		)
	}

	r.Logger.DebugContext(ctx, "generator measured",
		slog.String("generator", name),
		slog.Int("width", width),
		slog.Uint64("min_cycles", trial.MinCycles),
		slog.Float64("per_byte", res.PerByte),
	)

	sweep.Results = append(sweep.Results, res)

	if r.Observe != nil {
		r.Observe(res, buf)
	}
}
