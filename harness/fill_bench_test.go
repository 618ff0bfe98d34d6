package harness

import (
	"testing"

	"github.com/weiihann/rngspeed/generator"
)

// Go-native counterpart of the cycle sweep, for use with benchstat.
func BenchmarkFill(b *testing.B) {
	reg := generator.Default(1)

	s, err := NewScratch(DefaultSize)
	if err != nil {
		b.Fatal(err)
	}

	for _, e := range reg.Width32() {
		b.Run(e.Name, func(b *testing.B) {
			slots := s.Uint32s()
			b.SetBytes(DefaultSize)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Fill(e.Next, slots, DefaultSize/4)
			}
		})
	}

	for _, e := range reg.Width64() {
		b.Run(e.Name, func(b *testing.B) {
			slots := s.Uint64s()
			b.SetBytes(DefaultSize)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				Fill(e.Next, slots, DefaultSize/8)
			}
		})
	}
}
