package game

import (
	"fmt"
	"math"

	"github.com/mlevkov/stacktower/internal/core"
)

// Visual characters for rendering.
const (
	BlockChar = '█'
	FadeHeavy = '▓'
	FadeLight = '░'
)

const (
	minScreenW = 20
	minScreenH = 10
)

// Render draws the current session state into the screen buffer. The
// buffer is a read-only view of the simulation: drawing never mutates
// grid or session state beyond the derived camera offset already computed
// during Tick.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	switch s.state {
	case StateMenu:
		s.renderMenu(dst)
	case StatePlaying, StateGameOver:
		s.renderTower(dst)
	case StateSettings:
		s.renderSettings(dst)
	}
}

func (s *Session) renderMenu(dst *core.Screen) {
	h := dst.Height()
	mid := h / 2

	dst.DrawTextCenteredColored(mid-6, "S T A C K T O W E R", core.ColorBrightYellow)

	dst.DrawTextCentered(mid-3, "Enter - start")
	dst.DrawTextCentered(mid-2, "S     - settings")
	dst.DrawTextCentered(mid-1, "Q     - quit")

	dst.DrawTextCenteredColored(mid+2, fmt.Sprintf("High Score: %d", s.stats.HighScore), core.ColorWhite)
	dst.DrawTextCenteredColored(mid+3, fmt.Sprintf("Games Played: %d", s.stats.GamesPlayed), core.ColorWhite)

	if s.level > 0 {
		dst.DrawTextCenteredColored(mid+5, fmt.Sprintf("Last Level: %d", s.level), core.ColorGray)
	}
}

func (s *Session) renderTower(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	gridW := s.grid.Width()
	blockW := max(1, w/gridW)
	startX := (w - gridW*blockW) / 2
	cameraY := int(math.Round(s.camera.OffsetY()))

	// The base row is drawn in fixed coordinates, outside the camera
	// transform, so the tower appears anchored to the bottom edge.
	if base := s.grid.Row(0); base != nil {
		y := h - s.blockH
		s.drawRowCells(dst, base, startX, blockW, y, float64(h))
	}

	// All other rows scroll with the camera.
	for i := 1; i < s.grid.RowCount(); i++ {
		worldY := h - (i+1)*s.blockH
		s.drawRowCells(dst, s.grid.Row(i), startX, blockW, worldY-cameraY, float64(h))
	}

	dst.DrawTextCenteredColored(1, fmt.Sprintf("Level %d", s.level), core.ColorBrightWhite)

	if s.state == StateGameOver {
		s.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Level reached: %d", s.level))
	}
}

// drawRowCells draws one row of blocks at the given screen y.
func (s *Session) drawRowCells(dst *core.Screen, row []Block, startX, blockW, y int, viewportH float64) {
	for col := range row {
		b := row[col]
		if !b.Active && !b.Falling {
			continue
		}

		glyph := rune(BlockChar)
		var color core.Color
		drawY := y

		switch {
		case b.Falling:
			drawY = y + int(b.FallOffset)
			alpha := FallAlpha(b.FallOffset, viewportH)
			if alpha <= 0 {
				continue
			}
			color = core.ColorRed
			if alpha < 0.33 {
				glyph = FadeLight
				color = core.ColorDarkGray
			} else if alpha < 0.66 {
				glyph = FadeHeavy
			}
		case b.Landed:
			color = platformColor(b.Level)
		default:
			color = core.ColorGreen
		}

		x := startX + col*blockW
		for dx := 0; dx < blockW; dx++ {
			dst.SetCell(x+dx, drawY, glyph, color)
		}
	}
}

func (s *Session) renderSettings(dst *core.Screen) {
	h := dst.Height()
	mid := h / 2

	dst.DrawTextCenteredColored(mid-5, "Settings", core.ColorBrightYellow)

	lines := []string{
		fmt.Sprintf("Grid width:      %d", s.cfg.Geometry.GridWidth),
		fmt.Sprintf("Platform width:  %d", s.cfg.Geometry.PlatformWidth),
		fmt.Sprintf("Step interval:   %.2fs", s.cfg.Speed.MoveInterval),
		fmt.Sprintf("Speed increase:  %.2f", s.cfg.Speed.SpeedIncrease),
	}
	for i, line := range lines {
		dst.DrawTextCentered(mid-2+i, line)
	}

	dst.DrawTextCenteredColored(mid+4, "Press Esc to return", core.ColorGray)
}

// drawCenteredBox draws a boxed two-line message in the screen center.
func (s *Session) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorBrightRed)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightRed)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorWhite)
}

// platformColor alternates the landed-row palette by level parity.
func platformColor(level int) core.Color {
	if level%2 == 0 {
		return core.ColorBlue
	}
	return core.ColorYellow
}
