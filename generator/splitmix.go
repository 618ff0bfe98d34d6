package generator

// SplitMix64 is Steele, Lea and Flood's SplitMix64. It also seeds the other
// generators in this package.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 returns a SplitMix64 starting at seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 returns the next value.
func (s *SplitMix64) Uint64() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}
