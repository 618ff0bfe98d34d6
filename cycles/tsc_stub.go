//go:build !amd64

package cycles

import (
	"sync/atomic"
	"time"
)

// fenceWord is the target of the atomic read-modify-write used as a full
// barrier.
var fenceWord atomic.Uint64

// Fence performs an atomic read-modify-write, which the Go memory model
// orders as a full barrier.
func Fence() { fenceWord.Add(1) }

// TSC is a stub for non-amd64 architectures. Use Monotonic instead.
type TSC struct{}

// NewTSC returns ErrTSCNotSupported on non-amd64 architectures.
func NewTSC() (*TSC, error) {
	return nil, ErrTSCNotSupported
}

// Start returns 0 on the stub implementation.
func (t *TSC) Start() uint64 { return 0 }

// Stop returns 0 on the stub implementation.
func (t *TSC) Stop() uint64 { return 0 }

// Unit returns "cycles".
func (t *TSC) Unit() string { return "cycles" }

// RDTSCP returns false on the stub implementation.
func (t *TSC) RDTSCP() bool { return false }

// Calibrate returns 0 on the stub implementation.
func (t *TSC) Calibrate(time.Duration) float64 { return 0 }
