package fluid

import (
	"testing"

	"stablefluids/internal/core"
)

func newBenchSolver(b *testing.B, n int) *Solver {
	g, err := core.NewGrid(n)
	if err != nil {
		b.Fatal(err)
	}
	s, err := NewSolver(g, DefaultIterations)
	if err != nil {
		b.Fatal(err)
	}
	return s
}

func BenchmarkVelStep(b *testing.B) {
	s := newBenchSolver(b, 128)
	g := s.Grid()
	u := NewPair(g)
	v := NewPair(g)
	src := constVelocity{u: g.NewField(), v: g.NewField()}
	for j := g.N/2 - 8; j < g.N/2+8; j++ {
		src.u[g.Index(2, j)] = 4
	}
	srcs := []VelocitySource{src}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.VelStep(&u, &v, srcs, 0, 1.0/60.0)
	}
}

func BenchmarkDensStep(b *testing.B) {
	s := newBenchSolver(b, 128)
	g := s.Grid()
	x := NewPair(g)
	u := g.NewField()
	v := g.NewField()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.DensStep(&x, u, v, nil, 0.0001, 1.0/60.0)
	}
}
