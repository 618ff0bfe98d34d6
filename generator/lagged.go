package generator

import "math/bits"

const (
	mmLongLag  = 55
	mmShortLag = 24

	// Weyl increment for the middle square sequence.
	mswsStep = 0xb5ad4eceda1ce2a9

	lehmerMultiplier = 0xda942042e4dd58b5
)

// MitchellMoore is the additive lagged Fibonacci generator
// x[n] = x[n-24] + x[n-55] mod 2^32.
type MitchellMoore struct {
	s [mmLongLag]uint32
	j int
}

// NewMitchellMoore fills the lag table from seed through SplitMix64. At least
// one entry is odd, which the full period requires.
func NewMitchellMoore(seed uint64) *MitchellMoore {
	s := NewSplitMix64(seed)
	g := &MitchellMoore{}
	for i := range g.s {
		g.s[i] = uint32(s.Uint64())
	}
	g.s[0] |= 1

	return g
}

// Uint32 returns the next value.
func (g *MitchellMoore) Uint32() uint32 {
	// s[j] holds x[n-55]; s[j+31 mod 55] holds x[n-24].
	k := g.j + mmLongLag - mmShortLag
	if k >= mmLongLag {
		k -= mmLongLag
	}

	v := g.s[g.j] + g.s[k]
	g.s[g.j] = v

	g.j++
	if g.j == mmLongLag {
		g.j = 0
	}

	return v
}

// Widynski is Widynski's middle square Weyl sequence generator.
type Widynski struct {
	x, w uint64
}

// NewWidynski starts the square at seed.
func NewWidynski(seed uint64) *Widynski {
	return &Widynski{x: seed}
}

// Uint32 returns the next value.
func (g *Widynski) Uint32() uint32 {
	g.x *= g.x
	g.w += mswsStep
	g.x += g.w
	g.x = bits.RotateLeft64(g.x, 32)

	return uint32(g.x)
}

// Lehmer64 is the multiplicative congruential generator over a 128-bit state,
// returning the high 64 bits.
type Lehmer64 struct {
	hi, lo uint64
}

// NewLehmer64 seeds the 128-bit state from seed through SplitMix64. The low
// word is forced odd so the state never reaches zero.
func NewLehmer64(seed uint64) *Lehmer64 {
	s := NewSplitMix64(seed)

	return &Lehmer64{hi: s.Uint64(), lo: s.Uint64() | 1}
}

// Uint64 returns the next value.
func (g *Lehmer64) Uint64() uint64 {
	hi, lo := bits.Mul64(g.lo, lehmerMultiplier)
	g.hi = hi + g.hi*lehmerMultiplier
	g.lo = lo

	return g.hi
}
