package fluid

import "stablefluids/internal/core"

// Pair holds the current and scratch generation of one field. Swap exchanges
// the slices, never their contents.
type Pair struct {
	Cur  core.Field
	Prev core.Field
}

// NewPair allocates both generations for g.
func NewPair(g core.Grid) Pair {
	return Pair{Cur: g.NewField(), Prev: g.NewField()}
}

// Swap makes the scratch buffer current and vice versa.
func (p *Pair) Swap() { p.Cur, p.Prev = p.Prev, p.Cur }

// Zero clears both generations.
func (p *Pair) Zero() {
	p.Cur.Zero()
	p.Prev.Zero()
}
