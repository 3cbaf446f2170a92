package fluid

import "stablefluids/internal/core"

// BoundaryKind selects how SetBoundary fills the boundary ring.
type BoundaryKind int

const (
	// BoundaryNone mirrors the interior neighbour unchanged (scalar fields).
	BoundaryNone BoundaryKind = iota
	// BoundaryHorizontal negates on the left/right walls (u component).
	BoundaryHorizontal
	// BoundaryVertical negates on the top/bottom walls (v component).
	BoundaryVertical
)

func (b BoundaryKind) String() string {
	switch b {
	case BoundaryNone:
		return "none"
	case BoundaryHorizontal:
		return "horizontal"
	case BoundaryVertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// SetBoundary fills the boundary ring of x from its interior neighbours. The
// four corners take the average of their two adjacent edge cells.
func SetBoundary(g core.Grid, kind BoundaryKind, x core.Field) {
	n := g.N
	sx, sy := 1.0, 1.0
	if kind == BoundaryHorizontal {
		sx = -1
	}
	if kind == BoundaryVertical {
		sy = -1
	}
	for k := 1; k <= n; k++ {
		x[g.Index(0, k)] = sx * x[g.Index(1, k)]
		x[g.Index(n+1, k)] = sx * x[g.Index(n, k)]
		x[g.Index(k, 0)] = sy * x[g.Index(k, 1)]
		x[g.Index(k, n+1)] = sy * x[g.Index(k, n)]
	}
	x[g.Index(0, 0)] = 0.5 * (x[g.Index(1, 0)] + x[g.Index(0, 1)])
	x[g.Index(0, n+1)] = 0.5 * (x[g.Index(1, n+1)] + x[g.Index(0, n)])
	x[g.Index(n+1, 0)] = 0.5 * (x[g.Index(n, 0)] + x[g.Index(n+1, 1)])
	x[g.Index(n+1, n+1)] = 0.5 * (x[g.Index(n, n+1)] + x[g.Index(n+1, n)])
}
