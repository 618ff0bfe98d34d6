package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	info := Describe()

	assert.GreaterOrEqual(t, info.LogicalCores, 0)
	assert.GreaterOrEqual(t, info.Hz, int64(0))

	t.Logf("cpu: %q vendor=%s cores=%d rdtscp=%v", info.Brand, info.Vendor, info.LogicalCores, info.RDTSCP)
}
