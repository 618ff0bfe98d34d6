//go:build linux

package cpu

import (
	"fmt"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxCPU is the number of CPUs a unix.CPUSet can address. CPUSet.Set ignores
// indices past it, which would hand an empty mask to SchedSetaffinity.
const maxCPU = int(unsafe.Sizeof(unix.CPUSet{})) * 8

// Pin locks the calling goroutine to its OS thread and restricts that thread
// to CPU n. The returned func restores the previous affinity and unlocks the
// thread; it must run on the same goroutine.
func Pin(n int) (func(), error) {
	if n < 0 || n >= maxCPU {
		return nil, fmt.Errorf("cpu %d out of range", n)
	}

	runtime.LockOSThread()

	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("get affinity: %w", err)
	}

	var set unix.CPUSet
	set.Set(n)

	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("pin to cpu %d: %w", n, err)
	}

	return func() {
		_ = unix.SchedSetaffinity(0, &prev)
		runtime.UnlockOSThread()
	}, nil
}
