package generator

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MersenneTwister is Matsumoto and Nishimura's 32-bit MT19937.
type MersenneTwister struct {
	mt  [mtN]uint32
	mti int
}

// NewMersenneTwister seeds the generator with init_genrand(seed).
func NewMersenneTwister(seed uint32) *MersenneTwister {
	g := &MersenneTwister{}
	g.mt[0] = seed
	for i := 1; i < mtN; i++ {
		prev := g.mt[i-1]
		g.mt[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	g.mti = mtN

	return g
}

func (g *MersenneTwister) twist() {
	for i := 0; i < mtN; i++ {
		y := (g.mt[i] & mtUpperMask) | (g.mt[(i+1)%mtN] & mtLowerMask)
		next := g.mt[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		g.mt[i] = next
	}
	g.mti = 0
}

// Uint32 returns the next tempered value.
func (g *MersenneTwister) Uint32() uint32 {
	if g.mti >= mtN {
		g.twist()
	}

	y := g.mt[g.mti]
	g.mti++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	return y
}
