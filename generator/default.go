package generator

import (
	"encoding/binary"
	mrand "math/rand"
	randv2 "math/rand/v2"

	"github.com/valyala/fastrand"
)

// Default builds the compiled-in generator set. Every generator is seeded
// from a SplitMix64 stream over seed, so equal seeds give equal sequences.
func Default(seed uint64) *Registry {
	s := NewSplitMix64(seed)

	return NewRegistry(
		[]Entry32{
			{Name: "xorshift_k4", Next: NewXorshiftK4(s.Uint64()).Uint32},
			{Name: "xorshift_k5", Next: NewXorshiftK5(s.Uint64()).Uint32},
			{Name: "mersennetwister", Next: NewMersenneTwister(uint32(s.Uint64())).Uint32},
			{Name: "mitchellmoore", Next: NewMitchellMoore(s.Uint64()).Uint32},
			{Name: "widynski", Next: NewWidynski(s.Uint64()).Uint32},
			{Name: "xorshift32", Next: NewXorshift32(uint32(s.Uint64())).Uint32},
			{Name: "pcg32", Next: NewPCG32(s.Uint64(), s.Uint64()).Uint32},
			{Name: "rand", Next: mrand.New(mrand.NewSource(int64(s.Uint64()))).Uint32},
			{Name: "fastrand", Next: newFastrand(uint32(s.Uint64())).Uint32},
		},
		[]Entry64{
			{Name: "aesctr", Next: NewAESCTR(s.Uint64(), s.Uint64()).Uint64},
			{Name: "lehmer64", Next: NewLehmer64(s.Uint64()).Uint64},
			{Name: "xorshift128plus", Next: NewXorshift128Plus(s.Uint64()).Uint64},
			{Name: "xoroshiro128plus", Next: NewXoroshiro128Plus(s.Uint64()).Uint64},
			{Name: "splitmix64", Next: NewSplitMix64(s.Uint64()).Uint64},
			{Name: "pcg64", Next: NewPCG64(s.Uint64(), s.Uint64()).Uint64},
			{Name: "xorshift1024star", Next: NewXorshift1024Star(s.Uint64()).Uint64},
			{Name: "pcg-go", Next: randv2.NewPCG(s.Uint64(), s.Uint64()).Uint64},
			{Name: "chacha8", Next: newChaCha8(s).Uint64},
		},
	)
}

func newFastrand(seed uint32) *fastrand.RNG {
	if seed == 0 {
		seed = 1
	}

	r := new(fastrand.RNG)
	r.Seed(seed)

	return r
}

func newChaCha8(s *SplitMix64) *randv2.ChaCha8 {
	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], s.Uint64())
	}

	return randv2.NewChaCha8(key)
}
