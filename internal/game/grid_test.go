package game

import (
	"testing"

	"github.com/mlevkov/stacktower/internal/core"
)

func activeCols(row []Block) []int {
	var cols []int
	for col := range row {
		if row[col].Active {
			cols = append(cols, col)
		}
	}
	return cols
}

func TestGridAddBaseRow(t *testing.T) {
	g := NewGrid(15)
	g.AddBaseRow(core.Span{Pos: 5, Width: 5})

	if g.RowCount() != 1 {
		t.Fatalf("expected 1 row, got %d", g.RowCount())
	}

	row := g.Row(0)
	for col := 0; col < 15; col++ {
		want := col >= 5 && col < 10
		if row[col].Active != want {
			t.Errorf("col %d: active = %v, want %v", col, row[col].Active, want)
		}
		if row[col].Active && !row[col].Landed {
			t.Errorf("col %d: base cell should be landed", col)
		}
	}
}

func TestGridAddRowTagsLevel(t *testing.T) {
	g := NewGrid(15)
	g.AddBaseRow(core.Span{Pos: 5, Width: 5})
	g.AddRow(core.Span{Pos: 5, Width: 5}, 3)

	row := g.LiveRow()
	for col := range row {
		if row[col].Level != 3 {
			t.Fatalf("col %d: level = %d, want 3", col, row[col].Level)
		}
		if row[col].Landed {
			t.Fatalf("col %d: fresh row must not be landed", col)
		}
	}
}

func TestResolveLandingPartialOverlap(t *testing.T) {
	g := NewGrid(15)
	g.AddBaseRow(core.Span{Pos: 5, Width: 5})
	g.AddRow(core.Span{Pos: 7, Width: 5}, 0) // cols 7..11 over target 5..9

	surviving, ok := g.ResolveLanding(core.Span{Pos: 5, Width: 5})
	if !ok {
		t.Fatal("expected the landing to succeed")
	}
	if surviving.Width != 3 {
		t.Errorf("surviving width = %d, want 3", surviving.Width)
	}
	if surviving.Pos != 6 {
		t.Errorf("surviving pos = %d, want 6 (recentered)", surviving.Pos)
	}

	row := g.LiveRow()
	for _, col := range []int{7, 8, 9} {
		if !row[col].Landed || row[col].Falling {
			t.Errorf("col %d: should be landed, not falling", col)
		}
	}
	for _, col := range []int{10, 11} {
		if !row[col].Falling {
			t.Errorf("col %d: overhang should be falling", col)
		}
		if row[col].Landed {
			t.Errorf("col %d: falling cell must not be landed", col)
		}
	}
}

func TestResolveLandingTotalMiss(t *testing.T) {
	g := NewGrid(15)
	g.AddBaseRow(core.Span{Pos: 6, Width: 3})
	g.AddRow(core.Span{Pos: 12, Width: 3}, 0) // cols 12..14, no overlap with 6..8

	before := g.RowCount()
	surviving, ok := g.ResolveLanding(core.Span{Pos: 6, Width: 3})
	if ok {
		t.Fatal("expected the landing to fail")
	}
	if !surviving.Empty() {
		t.Errorf("surviving span = %+v, want empty", surviving)
	}
	if g.RowCount() != before {
		t.Errorf("row count changed on miss: %d -> %d", before, g.RowCount())
	}

	row := g.LiveRow()
	for _, col := range []int{12, 13, 14} {
		if !row[col].Falling {
			t.Errorf("col %d: missed cell should be falling", col)
		}
	}
}

func TestResolveLandingPerfectAlignment(t *testing.T) {
	g := NewGrid(15)
	span := core.Centered(5, 15)
	g.AddBaseRow(span)

	// A perfectly aligned landing is a fixed point: the width never
	// shrinks and nothing falls.
	for i := 0; i < 10; i++ {
		g.AddRow(span, i)
		surviving, ok := g.ResolveLanding(span)
		if !ok {
			t.Fatalf("landing %d failed", i)
		}
		if surviving != span {
			t.Fatalf("landing %d: surviving = %+v, want %+v", i, surviving, span)
		}
		for _, col := range activeCols(g.LiveRow()) {
			if g.LiveRow()[col].Falling {
				t.Fatalf("landing %d: col %d falling on perfect alignment", i, col)
			}
		}
		span = surviving
	}
}

func TestResolveLandingEmptyGrid(t *testing.T) {
	g := NewGrid(15)
	if _, ok := g.ResolveLanding(core.Span{Pos: 5, Width: 5}); ok {
		t.Fatal("landing on an empty grid should fail")
	}
}

func TestGridReset(t *testing.T) {
	g := NewGrid(15)
	g.AddBaseRow(core.Span{Pos: 5, Width: 5})
	g.AddRow(core.Span{Pos: 5, Width: 5}, 0)
	g.Reset()

	if g.RowCount() != 0 {
		t.Errorf("row count after reset = %d, want 0", g.RowCount())
	}
	if g.LiveRow() != nil {
		t.Error("live row after reset should be nil")
	}
	if g.Row(0) != nil {
		t.Error("row 0 after reset should be nil")
	}
}
