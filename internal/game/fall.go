package game

import "github.com/mlevkov/stacktower/internal/core"

// AdvanceFalls integrates the fall animation for every cut-away cell in
// the grid. Offsets grow without bound; cells are never removed, so a
// falling block keeps occupying its column slot for the row's lifetime.
func AdvanceFalls(g *Grid, dt, speed float64) {
	for i := 0; i < g.RowCount(); i++ {
		row := g.Row(i)
		for col := range row {
			if row[col].Falling {
				row[col].FallOffset += speed * dt
			}
		}
	}
}

// FallAlpha derives the remaining opacity of a falling block from its
// offset: fully opaque at the cut, fully transparent after half the
// viewport height. The simulation never reads this; it exists for
// renderers.
func FallAlpha(offset, viewportH float64) float64 {
	if viewportH <= 0 {
		return 0
	}
	return core.ClampF(1-offset/(viewportH/2), 0, 1)
}
