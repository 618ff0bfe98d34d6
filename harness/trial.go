package harness

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"

	"github.com/weiihann/rngspeed/cycles"
)

// Reference configuration.
const (
	DefaultSize   = 4096
	DefaultRepeat = 500
)

var (
	// ErrInvalidRepeat is returned for a repetition count below one.
	ErrInvalidRepeat = errors.New("repeat count must be positive")

	// ErrNoSamples is returned when every repetition had to be discarded.
	ErrNoSamples = errors.New("no valid samples")
)

// Trial is the outcome of repeating one timed operation.
type Trial struct {
	Repeat    int
	Bytes     int
	MinCycles uint64

	// Discarded counts repetitions whose stop tick was below the start tick.
	Discarded int

	// Samples holds every kept delta when the Timer was asked to keep them.
	Samples []uint64
}

// CyclesPerByte is MinCycles divided by Bytes.
func (t Trial) CyclesPerByte() float64 {
	if t.Bytes <= 0 {
		return 0
	}

	return float64(t.MinCycles) / float64(t.Bytes)
}

// QuantilePerByte returns the q-th quantile of the kept samples, per byte.
// It returns 0 when no samples were kept.
func (t Trial) QuantilePerByte(q float64) float64 {
	if len(t.Samples) == 0 || t.Bytes <= 0 {
		return 0
	}

	xs := make([]float64, len(t.Samples))
	for i, v := range t.Samples {
		xs[i] = float64(v)
	}

	s := stats.Sample{Xs: xs}
	s.Sort()

	return s.Quantile(q) / float64(t.Bytes)
}

// Timer runs an operation between serialized counter reads.
type Timer struct {
	Counter     cycles.Counter
	Repeat      int
	KeepSamples bool
}

// Measure runs op Repeat times and returns the smallest elapsed tick count.
// Noise only ever adds ticks, so the minimum is the closest observation of
// the true cost. totalBytes is the amount of output one run of op produces.
func (t *Timer) Measure(op func(), totalBytes int) (Trial, error) {
	if t.Repeat <= 0 {
		return Trial{}, fmt.Errorf("%w: got %d", ErrInvalidRepeat, t.Repeat)
	}

	trial := Trial{Repeat: t.Repeat, Bytes: totalBytes}
	if t.KeepSamples {
		trial.Samples = make([]uint64, 0, t.Repeat)
	}

	c := t.Counter
	best := uint64(math.MaxUint64)

	for i := 0; i < t.Repeat; i++ {
		cycles.Fence()
		start := c.Start()
		op()
		stop := c.Stop()

		if stop < start {
			trial.Discarded++
			continue
		}

		d := stop - start
		if d < best {
			best = d
		}
		if t.KeepSamples {
			trial.Samples = append(trial.Samples, d)
		}
	}

	if trial.Discarded == t.Repeat {
		return trial, fmt.Errorf("%w: all %d repetitions ran backwards", ErrNoSamples, t.Repeat)
	}

	trial.MinCycles = best

	return trial, nil
}
