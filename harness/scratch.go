package harness

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrInvalidSize is returned for buffer sizes that are not a positive
// multiple of 8 bytes.
var ErrInvalidSize = errors.New("buffer size must be a positive multiple of 8")

// CheckSize validates a scratch buffer size in bytes.
func CheckSize(size int) error {
	if size <= 0 || size%8 != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	return nil
}

// Scratch is a fixed-length byte region that generators fill. It is backed
// by 64-bit words so both width views are aligned.
type Scratch struct {
	words []uint64
}

// NewScratch allocates a zeroed Scratch of size bytes.
func NewScratch(size int) (*Scratch, error) {
	if err := CheckSize(size); err != nil {
		return nil, err
	}

	return &Scratch{words: make([]uint64, size/8)}, nil
}

// Size returns the length in bytes.
func (s *Scratch) Size() int {
	return len(s.words) * 8
}

// Uint64s views the buffer as 64-bit slots.
func (s *Scratch) Uint64s() []uint64 {
	return s.words
}

// Uint32s views the buffer as 32-bit slots.
func (s *Scratch) Uint32s() []uint32 {
	return unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(s.words))), len(s.words)*2)
}
