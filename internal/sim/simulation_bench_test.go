package sim

import (
	"testing"

	"stablefluids/internal/scene"
)

func BenchmarkTick(b *testing.B) {
	for _, name := range []string{scene.Whirlwind, scene.WaterFountain} {
		b.Run(name, func(b *testing.B) {
			cfg := DefaultConfig()
			cfg.N = 128
			cfg.Scene = name
			s, err := New(cfg)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := s.Tick(0.1); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
