package game

import "github.com/mlevkov/stacktower/internal/config"

// Camera computes the vertical scroll offset that keeps the live row in a
// visible band near the top of the viewport. The offset is derived state:
// it only moves as the tower grows and is never persisted.
type Camera struct {
	offsetY float64
}

// OffsetY returns the current scroll offset in rows. Rendering subtracts
// it from world positions, so a shrinking offset shifts the tower down
// into view as it grows.
func (c *Camera) OffsetY() float64 {
	return c.offsetY
}

// Reset clears the offset for a fresh game.
func (c *Camera) Reset() {
	c.offsetY = 0
}

// Update recomputes the offset. The live row sits at
// viewportH - rowCount*blockH; once that rises above the trigger band the
// offset pins it a fixed fraction down from the top. Below the configured
// level and row count the tower renders unscrolled.
func (c *Camera) Update(rowCount, blockH, viewportH, level int, cfg config.CameraConfig) {
	if rowCount < cfg.MinRowCount || level < cfg.MinLevel {
		return
	}

	h := float64(viewportH)
	liveY := h - float64(rowCount*blockH)
	if liveY < h*cfg.TriggerBand {
		c.offsetY = liveY - h*cfg.TopBand
	}
}
