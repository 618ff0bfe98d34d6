package generator

import "math/bits"

const (
	pcg32Multiplier = 6364136223846793005

	// 128-bit PCG default multiplier, high and low words.
	pcg64MulHi = 2549297995355413924
	pcg64MulLo = 4865540595714422341
)

// PCG32 is O'Neill's pcg32 (XSH RR 64/32).
type PCG32 struct {
	state uint64
	inc   uint64
}

// NewPCG32 seeds a PCG32 the way pcg32_srandom_r does: initState picks the
// starting point, initSeq picks the stream.
func NewPCG32(initState, initSeq uint64) *PCG32 {
	g := &PCG32{inc: initSeq<<1 | 1}
	g.Uint32()
	g.state += initState
	g.Uint32()

	return g
}

// Uint32 returns the next value.
func (g *PCG32) Uint32() uint32 {
	old := g.state
	g.state = old*pcg32Multiplier + g.inc

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)

	return bits.RotateLeft32(xorshifted, -rot)
}

// PCG64 is O'Neill's pcg64 (XSL RR 128/64) over a 128-bit LCG.
type PCG64 struct {
	hi, lo       uint64
	incHi, incLo uint64
}

// NewPCG64 seeds a PCG64 with a 128-bit start derived from initState and
// an odd 128-bit increment derived from initSeq.
func NewPCG64(initState, initSeq uint64) *PCG64 {
	s := NewSplitMix64(initSeq)
	g := &PCG64{incHi: s.Uint64(), incLo: s.Uint64() | 1}
	g.step()
	s = NewSplitMix64(initState)
	var c uint64
	g.lo, c = bits.Add64(g.lo, s.Uint64(), 0)
	g.hi, _ = bits.Add64(g.hi, s.Uint64(), c)
	g.step()

	return g
}

// step advances state = state*mul + inc modulo 2^128.
func (g *PCG64) step() {
	hi, lo := bits.Mul64(g.lo, pcg64MulLo)
	hi += g.lo*pcg64MulHi + g.hi*pcg64MulLo

	var c uint64
	g.lo, c = bits.Add64(lo, g.incLo, 0)
	g.hi, _ = bits.Add64(hi, g.incHi, c)
}

// Uint64 returns the next value.
func (g *PCG64) Uint64() uint64 {
	g.step()

	return bits.RotateLeft64(g.hi^g.lo, -int(g.hi>>58))
}
