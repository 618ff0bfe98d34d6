package harness

// Word is the set of generator output widths.
type Word interface {
	~uint32 | ~uint64
}

// Fill calls next exactly count times, storing the i-th result in dst[i].
// dst must hold at least count slots.
func Fill[T Word](next func() T, dst []T, count int) {
	dst = dst[:count]
	for i := range dst {
		dst[i] = next()
	}
}
