// Package cycles reads the monotonic tick counters used to bound a measured
// region of code.
//
// Two counters are provided:
//   - TSC: the CPU Time Stamp Counter read with serializing instruction
//     sequences (amd64 only)
//   - Monotonic: the runtime monotonic clock, in nanoseconds
//
// A measurement reads Start before the region and Stop after it. Start drains
// the pipeline before capturing the timestamp; Stop captures the timestamp
// before draining, so the region is bounded as tightly as the platform allows.
package cycles

import (
	"errors"
	"fmt"

	"github.com/spacemonkeygo/monotime"
)

// Clock names accepted by New.
const (
	ClockAuto      = "auto"
	ClockTSC       = "tsc"
	ClockMonotonic = "monotonic"
)

// ErrTSCNotSupported is returned when the TSC is not available on this
// architecture.
var ErrTSCNotSupported = errors.New("cycles: TSC counter requires amd64 architecture")

// Counter reads a monotonic tick counter.
type Counter interface {
	// Start serializes the instruction stream, then reads the counter.
	Start() uint64

	// Stop reads the counter, then serializes the instruction stream.
	Stop() uint64

	// Unit names what one tick measures, e.g. "cycles" or "ns".
	Unit() string
}

// New returns the counter for the named clock. ClockAuto (or "") picks the
// TSC where it is available and falls back to Monotonic otherwise.
func New(clock string) (Counter, error) {
	switch clock {
	case "", ClockAuto:
		tsc, err := NewTSC()
		if err != nil {
			return Monotonic{}, nil
		}
		return tsc, nil
	case ClockTSC:
		tsc, err := NewTSC()
		if err != nil {
			return nil, err
		}
		return tsc, nil
	case ClockMonotonic:
		return Monotonic{}, nil
	default:
		return nil, fmt.Errorf("unknown clock %q", clock)
	}
}

// Monotonic counts nanoseconds on the runtime monotonic clock. It works on
// every platform but its resolution is coarser than a cycle counter.
type Monotonic struct{}

// Start fences, then reads the clock.
func (Monotonic) Start() uint64 {
	Fence()
	return uint64(monotime.Monotonic())
}

// Stop reads the clock, then fences.
func (Monotonic) Stop() uint64 {
	now := uint64(monotime.Monotonic())
	Fence()
	return now
}

// Unit returns "ns".
func (Monotonic) Unit() string { return "ns" }
