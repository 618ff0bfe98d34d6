// Package report formats sweep results as plain text, markdown or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/weiihann/rngspeed/harness"
)

// Header writes the plain-text preamble printed before each sweep.
func Header(w io.Writer, size int, unit string) {
	fmt.Fprintf(w, "Generating %d bytes of random numbers\n", size)
	fmt.Fprintf(w, "Time reported in number of %s per byte.\n", unit)
	fmt.Fprintf(w, "We store values to an array of size = %d kB.\n", size/1024)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "We just generate the random numbers:")
}

// Line writes one generator's plain-text result.
func Line(w io.Writer, r harness.Result, unit string) {
	fmt.Fprintf(w, "%s: %s %s per byte", r.Name, formatCPB(r.PerByte), unit)

	if r.MedianPerByte > 0 {
		fmt.Fprintf(w, " (median %s, p90 %s)",
			formatCPB(r.MedianPerByte), formatCPB(r.P90PerByte))
	}

	fmt.Fprintln(w)
}

// Generate writes a markdown table with one column per sweep. Relative
// compares each generator with the fastest one of the first sweep.
func Generate(w io.Writer, sweeps []harness.Sweep) error {
	if len(sweeps) == 0 || len(sweeps[0].Results) == 0 {
		return fmt.Errorf("no results to report")
	}

	first := sweeps[0]
	fastest := findFastest(first.Results)

	// Header.
	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Buffer %s, best of %d repetitions, %s per byte.\n",
		formatBytes(uint64(first.Size)), first.Repeat, first.Unit)
	fmt.Fprintln(w)

	// Table header.
	var head, rule strings.Builder
	head.WriteString("| Generator | Width |")
	rule.WriteString("|-----------|-------|")

	for _, s := range sweeps {
		fmt.Fprintf(&head, " Run %d |", s.Run)
		rule.WriteString("-------|")
	}

	head.WriteString(" Relative |")
	rule.WriteString("----------|")

	fmt.Fprintln(w, head.String())
	fmt.Fprintln(w, rule.String())

	for i, r := range first.Results {
		fmt.Fprintf(w, "| %s | %d |", r.Name, r.Width)

		for _, s := range sweeps {
			if i < len(s.Results) && s.Results[i].Name == r.Name {
				fmt.Fprintf(w, " %s |", formatCPB(s.Results[i].PerByte))
			} else {
				fmt.Fprint(w, " - |")
			}
		}

		relative := 1.0
		if fastest > 0 && r.PerByte > 0 {
			relative = r.PerByte / fastest
		}

		fmt.Fprintf(w, " %.2fx |\n", relative)
	}

	return nil
}

// GenerateJSON writes sweeps as JSON to w.
func GenerateJSON(w io.Writer, sweeps []harness.Sweep) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(sweeps)
}

func findFastest(results []harness.Result) float64 {
	fastest := math.Inf(1)
	for _, r := range results {
		if r.PerByte > 0 && r.PerByte < fastest {
			fastest = r.PerByte
		}
	}

	if math.IsInf(fastest, 1) {
		return 0
	}

	return fastest
}

func formatCPB(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatBytes(b uint64) string {
	if b == 0 {
		return "-"
	}

	units := []string{"B", "kB", "MB", "GB", "TB"}
	size := float64(b)
	unit := 0

	for size >= 1024 && unit < len(units)-1 {
		size /= 1024
		unit++
	}

	formatted := fmt.Sprintf("%.1f", size)
	formatted = strings.TrimRight(formatted, "0")
	formatted = strings.TrimRight(formatted, ".")

	return formatted + " " + units[unit]
}
