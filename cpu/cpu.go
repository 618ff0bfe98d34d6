// Package cpu describes the host processor and pins the measuring thread to
// a single core.
package cpu

import (
	"errors"

	"github.com/klauspost/cpuid/v2"
)

// ErrPinUnsupported is returned by Pin on platforms without thread affinity.
var ErrPinUnsupported = errors.New("cpu: thread pinning is not supported on this platform")

// Info summarizes the host processor.
type Info struct {
	Brand        string `json:"brand"`
	Vendor       string `json:"vendor"`
	LogicalCores int    `json:"logical_cores"`
	Hz           int64  `json:"hz"`
	RDTSCP       bool   `json:"rdtscp"`
}

// Describe reports the host processor as seen by CPUID.
func Describe() Info {
	c := cpuid.CPU

	return Info{
		Brand:        c.BrandName,
		Vendor:       c.VendorString,
		LogicalCores: c.LogicalCores,
		Hz:           c.Hz,
		RDTSCP:       c.Has(cpuid.RDTSCP),
	}
}
