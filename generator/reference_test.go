package generator

import (
	"crypto/aes"
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMix64Reference(t *testing.T) {
	g := NewSplitMix64(0)

	want := []uint64{0xe220a8397b1dcdaf, 0x6e789e6aa1b965f4, 0x06c45d188009454f}
	for i, w := range want {
		assert.Equal(t, w, g.Uint64(), "output %d", i)
	}
}

func TestMersenneTwisterReference(t *testing.T) {
	g := NewMersenneTwister(5489)

	want := []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}
	for i, w := range want {
		assert.Equal(t, w, g.Uint32(), "output %d", i)
	}
}

func TestXorshift32Reference(t *testing.T) {
	g := NewXorshift32(1)
	assert.Equal(t, uint32(270369), g.Uint32())

	zero := NewXorshift32(0)
	assert.NotZero(t, zero.Uint32())
}

func TestPCG32Reference(t *testing.T) {
	g := NewPCG32(42, 54)

	want := []uint32{0xa15c02b7, 0x7b47f409, 0xba1d3330, 0x83d2f293, 0xbfa4784b, 0xcbed606e}
	for i, w := range want {
		assert.Equal(t, w, g.Uint32(), "output %d", i)
	}
}

var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

func u128(hi, lo uint64) *big.Int {
	v := new(big.Int).SetUint64(hi)
	v.Lsh(v, 64)

	return v.Or(v, new(big.Int).SetUint64(lo))
}

func TestPCG64MatchesBigInt(t *testing.T) {
	g := NewPCG64(3, 5)

	state := u128(g.hi, g.lo)
	inc := u128(g.incHi, g.incLo)
	mul := u128(pcg64MulHi, pcg64MulLo)
	mask := new(big.Int).SetUint64(^uint64(0))

	for i := 0; i < 64; i++ {
		state.Mul(state, mul)
		state.Add(state, inc)
		state.Mod(state, two128)

		lo := new(big.Int).And(state, mask).Uint64()
		hi := new(big.Int).Rsh(state, 64).Uint64()
		x := hi ^ lo
		rot := hi >> 58
		want := x>>rot | x<<((64-rot)&63)

		require.Equal(t, want, g.Uint64(), "output %d", i)
	}
}

func TestLehmer64MatchesBigInt(t *testing.T) {
	g := NewLehmer64(9)

	state := u128(g.hi, g.lo)
	mul := new(big.Int).SetUint64(lehmerMultiplier)

	for i := 0; i < 64; i++ {
		state.Mul(state, mul)
		state.Mod(state, two128)

		want := new(big.Int).Rsh(state, 64).Uint64()
		require.Equal(t, want, g.Uint64(), "output %d", i)
	}
}

func TestAESCTRMatchesBlockCipher(t *testing.T) {
	const k0, k1 = 0x0123456789abcdef, 0xfedcba9876543210

	g := NewAESCTR(k0, k1)

	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], k0)
	binary.LittleEndian.PutUint64(key[8:], k1)
	block, err := aes.NewCipher(key[:])
	require.NoError(t, err)

	// Counter blocks 0..9 cover one refill boundary.
	for ctr := 0; ctr < 10; ctr++ {
		var in, out [aes.BlockSize]byte
		binary.BigEndian.PutUint64(in[8:], uint64(ctr))
		block.Encrypt(out[:], in[:])

		assert.Equal(t, binary.LittleEndian.Uint64(out[:8]), g.Uint64(), "block %d low", ctr)
		assert.Equal(t, binary.LittleEndian.Uint64(out[8:]), g.Uint64(), "block %d high", ctr)
	}
}

func TestMitchellMooreRecurrence(t *testing.T) {
	g := NewMitchellMoore(11)

	// Rebuild x[0..54] from the table, then check x[n] = x[n-24] + x[n-55].
	xs := append([]uint32(nil), g.s[:]...)
	for n := mmLongLag; n < 500; n++ {
		want := xs[n-mmShortLag] + xs[n-mmLongLag]
		got := g.Uint32()
		require.Equal(t, want, got, "x[%d]", n)
		xs = append(xs, got)
	}
}
