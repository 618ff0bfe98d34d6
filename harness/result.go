// Package harness measures how many counter ticks a generator needs to fill
// a scratch buffer, keeping the best of many timed trials.
package harness

// Result holds the measurement of one generator in one sweep.
type Result struct {
	Name      string `json:"name"`
	Width     int    `json:"width"`
	Bytes     int    `json:"bytes"`
	Repeat    int    `json:"repeat"`
	MinCycles uint64 `json:"min_cycles"`

	// PerByte is MinCycles / Bytes, in the sweep's Unit per byte.
	PerByte   float64 `json:"per_byte"`
	Discarded int     `json:"discarded,omitempty"`

	// Set only when samples were kept.
	MedianPerByte float64 `json:"median_per_byte,omitempty"`
	P90PerByte    float64 `json:"p90_per_byte,omitempty"`
}

// Sweep holds one pass over every registered generator.
type Sweep struct {
	Run     int      `json:"run"`
	Size    int      `json:"size_bytes"`
	Repeat  int      `json:"repeat"`
	Unit    string   `json:"unit"`
	Results []Result `json:"results"`
}
