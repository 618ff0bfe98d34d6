//go:build amd64

package cycles

import (
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/spacemonkeygo/monotime"
)

// Implemented in tsc_amd64.s.
func cpuidRDTSC() uint64
func rdtscpCPUID() uint64
func rdtscCPUID() uint64
func mfence()

// Fence issues MFENCE. Being an assembly call, it is also a compiler barrier.
func Fence() { mfence() }

// TSC reads the CPU Time Stamp Counter.
//
// Start executes CPUID then RDTSC. Stop executes RDTSCP then CPUID; on CPUs
// without RDTSCP it falls back to RDTSC then CPUID.
type TSC struct {
	rdtscp bool
}

// NewTSC returns a TSC counter for this CPU.
func NewTSC() (*TSC, error) {
	return &TSC{rdtscp: cpuid.CPU.Has(cpuid.RDTSCP)}, nil
}

// Start serializes with CPUID, then reads the TSC.
func (t *TSC) Start() uint64 {
	return cpuidRDTSC()
}

// Stop reads the TSC, then serializes with CPUID.
func (t *TSC) Stop() uint64 {
	if t.rdtscp {
		return rdtscpCPUID()
	}
	return rdtscCPUID()
}

// Unit returns "cycles".
func (t *TSC) Unit() string { return "cycles" }

// RDTSCP reports whether Stop uses RDTSCP.
func (t *TSC) RDTSCP() bool { return t.rdtscp }

// Calibrate estimates TSC ticks per nanosecond by comparing the counter with
// the monotonic clock over d. The estimate drifts with frequency scaling and
// is only meant for logging.
func (t *TSC) Calibrate(d time.Duration) float64 {
	t.Start()

	c0, n0 := t.Start(), monotime.Monotonic()
	time.Sleep(d)
	c1, n1 := t.Stop(), monotime.Monotonic()

	nanos := float64((n1 - n0).Nanoseconds())
	if nanos <= 0 {
		return 0
	}
	return float64(c1-c0) / nanos
}
