package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiihann/rngspeed/generator"
	"github.com/weiihann/rngspeed/harness"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var out bytes.Buffer
	root := newRootCmd(logger, new(slog.LevelVar), &out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestRunText(t *testing.T) {
	out, err := execute(t, "run", "--size", "64", "--repeat", "3",
		"--only", "pcg32,splitmix64", "--seed", "7")
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(out, "Generating 64 bytes of random numbers"))
	assert.Equal(t, 2, strings.Count(out, "We store values to an array of size = 0 kB."))
	assert.Equal(t, 2, strings.Count(out, "pcg32: "))
	assert.Equal(t, 2, strings.Count(out, "splitmix64: "))
	assert.Less(t, strings.Index(out, "pcg32: "), strings.Index(out, "splitmix64: "))
}

func TestRunJSON(t *testing.T) {
	out, err := execute(t, "run", "--size", "128", "--repeat", "2",
		"--format", "json", "--sweeps", "3", "--clock", "monotonic", "--samples")
	require.NoError(t, err)

	var sweeps []harness.Sweep
	require.NoError(t, json.Unmarshal([]byte(out), &sweeps))

	require.Len(t, sweeps, 3)
	n := generator.Default(1).Len()
	for _, s := range sweeps {
		assert.Equal(t, "ns", s.Unit)
		assert.Len(t, s.Results, n)
	}
}

func TestRunMarkdown(t *testing.T) {
	out, err := execute(t, "run", "--size", "64", "--repeat", "1",
		"--format", "markdown", "--only", "xorshift32")
	require.NoError(t, err)

	assert.Contains(t, out, "| Generator | Width | Run 1 | Run 2 | Relative |")
	assert.Contains(t, out, "| xorshift32 | 32 |")
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"size not multiple of 8", []string{"--size", "4095"}, harness.ErrInvalidSize},
		{"zero size", []string{"--size", "0"}, harness.ErrInvalidSize},
		{"zero repeat", []string{"--repeat", "0"}, harness.ErrInvalidRepeat},
		{"unknown generator", []string{"--only", "dice"}, generator.ErrUnknownGenerator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"run"}, tt.args...)...)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := execute(t, "run", "--format", "csv")
	assert.Error(t, err)

	_, err = execute(t, "run", "--clock", "sundial")
	assert.Error(t, err)

	_, err = execute(t, "run", "--sweeps", "0")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, generator.Default(1).Len())
	assert.Equal(t, "32  xorshift_k4", lines[0])
	assert.Equal(t, "64  aesctr", lines[9])
}

func TestMeasurementCount(t *testing.T) {
	sweeps := []harness.Sweep{
		{Results: make([]harness.Result, 3)},
		{Results: make([]harness.Result, 3)},
	}
	assert.Equal(t, 6, measurementCount(sweeps))
}
