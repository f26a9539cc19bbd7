package game

import "github.com/mlevkov/stacktower/internal/core"

// Grid is the ordered stack of rows from the immovable base (row 0) to the
// most recently spawned platform. Only the last row can hold cells that
// are active but not yet landed.
type Grid struct {
	width int
	rows  [][]Block
}

// NewGrid creates an empty grid with the given number of columns.
func NewGrid(width int) *Grid {
	return &Grid{width: width}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// RowCount returns the number of rows including the base.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// Row returns the row at the given index, nil when out of range.
func (g *Grid) Row(i int) []Block {
	if i < 0 || i >= len(g.rows) {
		return nil
	}
	return g.rows[i]
}

// LiveRow returns the most recently spawned row, nil for an empty grid.
func (g *Grid) LiveRow() []Block {
	if len(g.rows) == 0 {
		return nil
	}
	return g.rows[len(g.rows)-1]
}

// Reset drops all rows.
func (g *Grid) Reset() {
	g.rows = g.rows[:0]
}

// AddBaseRow creates row 0: the platform span marked active and landed.
func (g *Grid) AddBaseRow(span core.Span) {
	row := make([]Block, g.width)
	for col := span.Pos; col < span.End(); col++ {
		if col >= 0 && col < g.width {
			row[col].Active = true
			row[col].Landed = true
		}
	}
	g.rows = append(g.rows, row)
}

// AddRow spawns a new top row: the platform span marked active but not
// landed, tagged with the given level for color alternation.
func (g *Grid) AddRow(span core.Span, level int) {
	row := make([]Block, g.width)
	for col := range row {
		row[col].Level = level
	}
	for col := span.Pos; col < span.End(); col++ {
		if col >= 0 && col < g.width {
			row[col].Active = true
		}
	}
	g.rows = append(g.rows, row)
}

// ResolveLanding freezes the live row against the target span: active cells
// outside the span start falling, active cells inside it land. On any
// overlap it returns the surviving platform recentered in the grid and
// true; on a total miss it returns an empty span and false, and the caller
// must not spawn another row.
//
// Overlap is judged purely against the stored target span rather than by
// re-deriving geometry from the row below: the span already encodes the
// previous row's resolved position, keeping each landing O(width).
func (g *Grid) ResolveLanding(target core.Span) (core.Span, bool) {
	row := g.LiveRow()
	if row == nil {
		return core.Span{}, false
	}

	for col := range row {
		if row[col].Active && !row[col].Landed && !target.Contains(col) {
			row[col].Falling = true
			row[col].FallOffset = 0
		}
	}

	landed := 0
	for col := target.Pos; col < target.End(); col++ {
		if col >= 0 && col < g.width && row[col].Active && !row[col].Falling {
			row[col].Landed = true
			landed++
		}
	}

	if landed == 0 {
		return core.Span{}, false
	}
	return core.Centered(landed, g.width), true
}
