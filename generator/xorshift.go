package generator

import "math/bits"

// XorshiftK4 is Marsaglia's xor128: four 32-bit words of state.
type XorshiftK4 struct {
	x, y, z, w uint32
}

// NewXorshiftK4 seeds the state from seed through SplitMix64.
func NewXorshiftK4(seed uint64) *XorshiftK4 {
	s := NewSplitMix64(seed)
	a, b := s.Uint64(), s.Uint64()
	g := &XorshiftK4{x: uint32(a), y: uint32(a >> 32), z: uint32(b), w: uint32(b >> 32)}
	if g.x|g.y|g.z|g.w == 0 {
		g.w = 1
	}

	return g
}

// Uint32 returns the next value.
func (g *XorshiftK4) Uint32() uint32 {
	t := g.x ^ (g.x << 11)
	g.x, g.y, g.z = g.y, g.z, g.w
	g.w = g.w ^ (g.w >> 19) ^ t ^ (t >> 8)

	return g.w
}

// XorshiftK5 is Marsaglia's five-word xorshift combined with a (2y+1)
// multiplier on output.
type XorshiftK5 struct {
	x, y, z, w, v uint32
}

// NewXorshiftK5 seeds the state from seed through SplitMix64.
func NewXorshiftK5(seed uint64) *XorshiftK5 {
	s := NewSplitMix64(seed)
	a, b, c := s.Uint64(), s.Uint64(), s.Uint64()
	g := &XorshiftK5{x: uint32(a), y: uint32(a >> 32), z: uint32(b), w: uint32(b >> 32), v: uint32(c)}
	if g.x|g.y|g.z|g.w|g.v == 0 {
		g.v = 1
	}

	return g
}

// Uint32 returns the next value.
func (g *XorshiftK5) Uint32() uint32 {
	t := g.x ^ (g.x >> 7)
	g.x, g.y, g.z, g.w = g.y, g.z, g.w, g.v
	g.v = (g.v ^ (g.v << 6)) ^ (t ^ (t << 13))

	return (g.y + g.y + 1) * g.v
}

// Xorshift32 is the 13/17/5 single-word xorshift.
type Xorshift32 struct {
	x uint32
}

// NewXorshift32 returns a Xorshift32 with state seed. A zero seed, which would
// lock the generator at zero, is replaced by 1.
func NewXorshift32(seed uint32) *Xorshift32 {
	if seed == 0 {
		seed = 1
	}

	return &Xorshift32{x: seed}
}

// Uint32 returns the next value.
func (g *Xorshift32) Uint32() uint32 {
	x := g.x
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.x = x

	return x
}

// Xorshift128Plus is Vigna's xorshift128+ (23/18/5).
type Xorshift128Plus struct {
	s0, s1 uint64
}

// NewXorshift128Plus seeds the state from seed through SplitMix64.
func NewXorshift128Plus(seed uint64) *Xorshift128Plus {
	s := NewSplitMix64(seed)
	g := &Xorshift128Plus{s0: s.Uint64(), s1: s.Uint64()}
	if g.s0|g.s1 == 0 {
		g.s1 = 1
	}

	return g
}

// Uint64 returns the next value.
func (g *Xorshift128Plus) Uint64() uint64 {
	s1 := g.s0
	s0 := g.s1
	g.s0 = s0
	s1 ^= s1 << 23
	g.s1 = s1 ^ s0 ^ (s1 >> 18) ^ (s0 >> 5)

	return g.s1 + s0
}

// Xoroshiro128Plus is Blackman and Vigna's xoroshiro128+ (55/14/36).
type Xoroshiro128Plus struct {
	s0, s1 uint64
}

// NewXoroshiro128Plus seeds the state from seed through SplitMix64.
func NewXoroshiro128Plus(seed uint64) *Xoroshiro128Plus {
	s := NewSplitMix64(seed)
	g := &Xoroshiro128Plus{s0: s.Uint64(), s1: s.Uint64()}
	if g.s0|g.s1 == 0 {
		g.s1 = 1
	}

	return g
}

// Uint64 returns the next value.
func (g *Xoroshiro128Plus) Uint64() uint64 {
	s0, s1 := g.s0, g.s1
	result := s0 + s1

	s1 ^= s0
	g.s0 = bits.RotateLeft64(s0, 55) ^ s1 ^ (s1 << 14)
	g.s1 = bits.RotateLeft64(s1, 36)

	return result
}

// Xorshift1024Star is Vigna's xorshift1024*.
type Xorshift1024Star struct {
	s [16]uint64
	p int
}

// NewXorshift1024Star seeds the state from seed through SplitMix64.
func NewXorshift1024Star(seed uint64) *Xorshift1024Star {
	s := NewSplitMix64(seed)
	g := &Xorshift1024Star{}

	var acc uint64
	for i := range g.s {
		g.s[i] = s.Uint64()
		acc |= g.s[i]
	}
	if acc == 0 {
		g.s[0] = 1
	}

	return g
}

// Uint64 returns the next value.
func (g *Xorshift1024Star) Uint64() uint64 {
	s0 := g.s[g.p]
	g.p = (g.p + 1) & 15
	s1 := g.s[g.p]

	s1 ^= s1 << 31
	g.s[g.p] = s1 ^ s0 ^ (s1 >> 11) ^ (s0 >> 30)

	return g.s[g.p] * 1181783497276652981
}
