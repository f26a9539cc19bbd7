package game

import "math"

// Snapshot captures the complete engine state in primitive types for
// save/replay and determinism tests.
type Snapshot struct {
	State         int
	Level         int
	PlatformPos   int
	PlatformWidth int
	MovingPos     int
	MovingWidth   int
	MoveRight     bool
	MoveTimer     float64
	MoveInterval  float64
	CameraY       float64
	HighScore     int
	GamesPlayed   int

	GridWidth int
	RowCount  int

	// CellData holds 4 ints per cell, rows concatenated:
	// active, landed, level, falling.
	CellData []int

	// FallOffsets holds one offset per cell, same ordering.
	FallOffsets []float64
}

// Snapshot returns the current engine state.
func (s *Session) Snapshot() Snapshot {
	w := s.grid.Width()
	rows := s.grid.RowCount()

	cells := make([]int, 0, rows*w*4)
	offsets := make([]float64, 0, rows*w)
	for i := 0; i < rows; i++ {
		row := s.grid.Row(i)
		for col := range row {
			b := row[col]
			cells = append(cells, boolInt(b.Active), boolInt(b.Landed), b.Level, boolInt(b.Falling))
			offsets = append(offsets, b.FallOffset)
		}
	}

	return Snapshot{
		State:         int(s.state),
		Level:         s.level,
		PlatformPos:   s.platform.Pos,
		PlatformWidth: s.platform.Width,
		MovingPos:     s.osc.span.Pos,
		MovingWidth:   s.osc.span.Width,
		MoveRight:     s.osc.right,
		MoveTimer:     s.osc.timer,
		MoveInterval:  s.osc.interval,
		CameraY:       s.camera.offsetY,
		HighScore:     s.stats.HighScore,
		GamesPlayed:   s.stats.GamesPlayed,
		GridWidth:     w,
		RowCount:      rows,
		CellData:      cells,
		FallOffsets:   offsets,
	}
}

// ApplySnapshot restores engine state from a snapshot taken on a session
// with the same grid width.
func (s *Session) ApplySnapshot(snap Snapshot) {
	s.state = StateTag(snap.State)
	s.level = snap.Level
	s.platform.Pos = snap.PlatformPos
	s.platform.Width = snap.PlatformWidth
	s.osc.span.Pos = snap.MovingPos
	s.osc.span.Width = snap.MovingWidth
	s.osc.right = snap.MoveRight
	s.osc.timer = snap.MoveTimer
	s.osc.interval = snap.MoveInterval
	s.camera.offsetY = snap.CameraY
	s.stats.HighScore = snap.HighScore
	s.stats.GamesPlayed = snap.GamesPlayed

	s.grid.Reset()
	w := snap.GridWidth
	for i := 0; i < snap.RowCount; i++ {
		row := make([]Block, w)
		for col := 0; col < w; col++ {
			idx := i*w + col
			if idx*4+3 >= len(snap.CellData) || idx >= len(snap.FallOffsets) {
				break
			}
			row[col] = Block{
				Active:     snap.CellData[idx*4] == 1,
				Landed:     snap.CellData[idx*4+1] == 1,
				Level:      snap.CellData[idx*4+2],
				Falling:    snap.CellData[idx*4+3] == 1,
				FallOffset: snap.FallOffsets[idx],
			}
		}
		s.grid.rows = append(s.grid.rows, row)
	}
}

// Hash returns a mixing hash of the snapshot for determinism checks.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v uint64) {
		h = h*31 + v
	}

	mix(uint64(snap.State))
	mix(uint64(snap.Level))
	mix(uint64(snap.PlatformPos))
	mix(uint64(snap.PlatformWidth))
	mix(uint64(snap.MovingPos))
	mix(uint64(snap.MovingWidth))
	mix(uint64(boolInt(snap.MoveRight)))
	mix(math.Float64bits(snap.MoveTimer))
	mix(math.Float64bits(snap.MoveInterval))
	mix(math.Float64bits(snap.CameraY))
	mix(uint64(snap.HighScore))
	mix(uint64(snap.GamesPlayed))
	mix(uint64(snap.GridWidth))
	mix(uint64(snap.RowCount))
	for _, v := range snap.CellData {
		mix(uint64(v))
	}
	for _, v := range snap.FallOffsets {
		mix(math.Float64bits(v))
	}
	return h
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
