// Package game implements the stacking-tower simulation: the row grid, the
// oscillating platform, the landing cut, the falling-overhang animation,
// the camera scroll policy, and the session state machine tying them
// together. The package has no knowledge of terminals or key codes; the
// platform layer feeds it actions and elapsed time and reads back screens.
package game

// Block is one cell of the tower grid.
type Block struct {
	// Active marks the cell as occupied by a platform segment, moving or
	// landed.
	Active bool

	// Landed marks the cell as a permanent part of the tower. A landed
	// cell is never re-evaluated by later landings.
	Landed bool

	// Level is the row level at spawn time. Drives color alternation only;
	// the simulation never reads it.
	Level int

	// Falling marks a segment cut away at landing. A falling cell keeps
	// its column slot forever but is excluded from all later overlap
	// computation. Landed and Falling are mutually exclusive.
	Falling bool

	// FallOffset is how far the cut segment has dropped, in rows. It grows
	// monotonically and is never reset or reclaimed.
	FallOffset float64
}
