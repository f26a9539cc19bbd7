package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mlevkov/stacktower/internal/config"
	"github.com/mlevkov/stacktower/internal/core"
	"github.com/mlevkov/stacktower/internal/stats"
)

// StateTag identifies the session's current screen.
type StateTag int

const (
	StateMenu StateTag = iota
	StatePlaying
	StateGameOver
	StateSettings
)

// String returns a human-readable name for the state.
func (t StateTag) String() string {
	switch t {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	case StateSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// RunRecorder receives the level reached by each finished game.
// Satisfied by the SQLite storage; recording is best-effort.
type RunRecorder interface {
	RecordRun(level int) (int64, error)
}

// Session is the long-lived aggregate driving one player's game: the grid,
// the oscillator, the camera, the lifetime statistics, and the state
// machine over Menu / Playing / GameOver / Settings. All mutation happens
// synchronously inside Tick and Handle; there are no background actors.
type Session struct {
	cfg config.GameConfig

	grid   *Grid
	osc    *Oscillator
	camera *Camera

	// platform is the target span: the columns of the last landed
	// platform, against which the next landing is judged.
	platform core.Span

	level int
	state StateTag

	gameOverAt time.Time
	now        func() time.Time

	stats      stats.Stats
	statsStore stats.Store
	recorder   RunRecorder
	logger     *log.Logger

	screenW int
	screenH int
	blockW  int
	blockH  int

	quit bool
}

// NewSession creates a session in the Menu state, loading lifetime stats
// from the store. A nil logger discards log output.
func NewSession(cfg config.GameConfig, st stats.Store, logger *log.Logger) *Session {
	cfg.Normalize()
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{
		cfg:        cfg,
		grid:       NewGrid(cfg.Geometry.GridWidth),
		camera:     &Camera{},
		statsStore: st,
		logger:     logger,
		state:      StateMenu,
		now:        time.Now,
		blockH:     1,
	}
	s.platform = core.Centered(cfg.Geometry.PlatformWidth, cfg.Geometry.GridWidth)
	s.osc = NewOscillator(s.platform, cfg.Speed.MoveInterval)
	if st != nil {
		s.stats = st.Load()
	}
	return s
}

// SetRecorder wires a run-history sink. Optional; recording failures are
// logged and ignored.
func (s *Session) SetRecorder(r RunRecorder) {
	s.recorder = r
}

// Resize stores the new viewport dimensions and rederives the block size.
func (s *Session) Resize(w, h int) {
	s.screenW = w
	s.screenH = h
	s.blockW = max(1, w/s.cfg.Geometry.GridWidth)
}

// State returns the current state tag.
func (s *Session) State() StateTag {
	return s.state
}

// Level returns the count of successful landings this game.
func (s *Session) Level() int {
	return s.level
}

// Stats returns the lifetime statistics as currently held in memory.
func (s *Session) Stats() stats.Stats {
	return s.stats
}

// Platform returns the target span of the last landed platform.
func (s *Session) Platform() core.Span {
	return s.platform
}

// MovingSpan returns the live platform's current columns.
func (s *Session) MovingSpan() core.Span {
	return s.osc.Span()
}

// CameraOffset returns the current scroll offset in rows.
func (s *Session) CameraOffset() float64 {
	return s.camera.OffsetY()
}

// Grid exposes the tower rows for rendering and tests. Collaborators must
// treat it as read-only.
func (s *Session) Grid() *Grid {
	return s.grid
}

// Quitting reports whether the player asked to leave the program.
func (s *Session) Quitting() bool {
	return s.quit
}

// Handle reacts to one discrete input action according to the current
// state. Unmapped (state, action) pairs are ignored.
func (s *Session) Handle(a core.Action) {
	switch s.state {
	case StateMenu:
		switch a {
		case core.ActionConfirm:
			s.startGame()
		case core.ActionSettings:
			s.state = StateSettings
		case core.ActionQuit:
			s.quit = true
		}

	case StatePlaying:
		if a == core.ActionFreeze {
			s.freeze()
		}

	case StateSettings:
		if a == core.ActionCancel {
			s.state = StateMenu
		}

	case StateGameOver:
		// No input accepted; the state times out on its own.
	}
}

// Tick advances the simulation by dt seconds of wall-clock time.
func (s *Session) Tick(dt float64) {
	switch s.state {
	case StatePlaying:
		s.osc.Update(dt, s.grid.LiveRow(), s.grid.Width())
		AdvanceFalls(s.grid, dt, s.cfg.Speed.FallSpeed)
		s.updateCamera()

	case StateGameOver:
		s.updateCamera()
		if s.now().Sub(s.gameOverAt).Seconds() >= s.cfg.Session.GameOverDelay {
			s.state = StateMenu
		}
	}
}

// startGame begins a fresh run from the menu.
func (s *Session) startGame() {
	s.state = StatePlaying
	s.level = 0
	s.camera.Reset()
	s.stats.GamesPlayed++
	s.saveStats()
	s.resetGame()
}

// resetGame rebuilds the grid: base row plus the first moving row, both at
// the configured starting width, centered.
func (s *Session) resetGame() {
	s.platform = core.Centered(s.cfg.Geometry.PlatformWidth, s.grid.Width())
	s.osc = NewOscillator(s.platform, s.cfg.Speed.MoveInterval)
	s.grid.Reset()
	s.grid.AddBaseRow(s.platform)
	s.grid.AddRow(s.platform, s.level)
}

// freeze resolves a landing. Success shrinks and recenters the platform,
// spawns the next row, and accelerates the oscillator; a total miss ends
// the game.
func (s *Session) freeze() {
	surviving, ok := s.grid.ResolveLanding(s.platform)
	if !ok {
		s.gameOver()
		return
	}

	s.platform = surviving
	s.osc.Place(surviving)
	s.grid.AddRow(surviving, s.level)
	s.level++
	s.osc.Accelerate(s.cfg.Speed.SpeedIncrease)
}

// gameOver finishes the run: updates the high score when strictly beaten,
// records the run, and enters the timed GameOver state.
func (s *Session) gameOver() {
	if s.level > s.stats.HighScore {
		s.stats.HighScore = s.level
		s.saveStats()
	}

	if s.recorder != nil && s.level > 0 {
		if _, err := s.recorder.RecordRun(s.level); err != nil {
			s.logger.Warn("failed to record run", "level", s.level, "error", err)
		}
	}

	s.gameOverAt = s.now()
	s.state = StateGameOver
}

// saveStats persists the stats record. Failures are logged and ignored;
// the in-memory record stays authoritative for this session.
func (s *Session) saveStats() {
	if s.statsStore == nil {
		return
	}
	if err := s.statsStore.Save(s.stats); err != nil {
		s.logger.Warn("failed to save stats", "error", err)
	}
}

func (s *Session) updateCamera() {
	s.camera.Update(s.grid.RowCount(), s.blockH, s.screenH, s.level, s.cfg.Camera)
}
