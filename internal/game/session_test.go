package game

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/mlevkov/stacktower/internal/config"
	"github.com/mlevkov/stacktower/internal/core"
	"github.com/mlevkov/stacktower/internal/stats"
)

// memStore is an in-memory stats.Store counting saves.
type memStore struct {
	st    stats.Stats
	saves int
	fail  bool
}

func (m *memStore) Load() stats.Stats {
	return m.st
}

func (m *memStore) Save(st stats.Stats) error {
	if m.fail {
		return errors.New("disk full")
	}
	m.st = st
	m.saves++
	return nil
}

type memRecorder struct {
	levels []int
	fail   bool
}

func (m *memRecorder) RecordRun(level int) (int64, error) {
	if m.fail {
		return 0, errors.New("db closed")
	}
	m.levels = append(m.levels, level)
	return int64(len(m.levels)), nil
}

func testConfig() config.GameConfig {
	var cfg config.GameConfig
	cfg.Normalize() // all defaults: 15-wide grid, 5-wide platform, 0.2s steps
	return cfg
}

func newTestSession(t *testing.T) (*Session, *memStore) {
	t.Helper()
	st := &memStore{}
	s := NewSession(testConfig(), st, nil)
	s.Resize(80, 24)
	return s, st
}

// loseGame sweeps the platform clear of the target and freezes.
func loseGame(t *testing.T, s *Session) {
	t.Helper()
	for i := 0; i < 20 && s.MovingSpan().Pos < 10; i++ {
		s.Tick(0.25)
	}
	if s.MovingSpan().Pos != 10 {
		t.Fatalf("could not park the platform at the edge, pos = %d", s.MovingSpan().Pos)
	}
	s.Handle(core.ActionFreeze)
}

func TestSessionStartsInMenu(t *testing.T) {
	s, _ := newTestSession(t)
	if s.State() != StateMenu {
		t.Fatalf("state = %v, want menu", s.State())
	}
}

func TestSessionConfirmStartsGame(t *testing.T) {
	s, st := newTestSession(t)
	s.Handle(core.ActionConfirm)

	if s.State() != StatePlaying {
		t.Fatalf("state = %v, want playing", s.State())
	}
	if s.Level() != 0 {
		t.Errorf("level = %d, want 0", s.Level())
	}
	if s.Grid().RowCount() != 2 {
		t.Errorf("row count = %d, want 2 (base plus moving row)", s.Grid().RowCount())
	}
	if st.st.GamesPlayed != 1 {
		t.Errorf("games played = %d, want 1", st.st.GamesPlayed)
	}
	if st.saves != 1 {
		t.Errorf("saves = %d, want 1 (the play counter persists at start)", st.saves)
	}
	if want := core.Centered(5, 15); s.Platform() != want {
		t.Errorf("platform = %+v, want %+v", s.Platform(), want)
	}
}

func TestSessionMenuNavigation(t *testing.T) {
	s, _ := newTestSession(t)

	s.Handle(core.ActionSettings)
	if s.State() != StateSettings {
		t.Fatalf("state = %v, want settings", s.State())
	}

	// Only Cancel leaves the settings screen.
	s.Handle(core.ActionConfirm)
	if s.State() != StateSettings {
		t.Fatalf("confirm should be ignored in settings")
	}
	s.Handle(core.ActionCancel)
	if s.State() != StateMenu {
		t.Fatalf("state = %v, want menu", s.State())
	}

	s.Handle(core.ActionQuit)
	if !s.Quitting() {
		t.Fatal("quit from the menu should set the quit flag")
	}
}

func TestSessionFreezeIgnoredOutsidePlaying(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(core.ActionFreeze)
	if s.State() != StateMenu {
		t.Fatalf("state = %v, want menu", s.State())
	}
}

func TestSessionPerfectLanding(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(core.ActionConfirm)

	// Freeze immediately: the fresh row sits exactly on the target.
	s.Handle(core.ActionFreeze)

	if s.Level() != 1 {
		t.Errorf("level = %d, want 1", s.Level())
	}
	if s.Platform().Width != 5 {
		t.Errorf("platform width = %d, want 5 on perfect alignment", s.Platform().Width)
	}
	if s.Grid().RowCount() != 3 {
		t.Errorf("row count = %d, want 3", s.Grid().RowCount())
	}
	if s.State() != StatePlaying {
		t.Errorf("state = %v, want playing", s.State())
	}
}

func TestSessionSpeedIncreasesGeometrically(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(core.ActionConfirm)

	for i := 0; i < 5; i++ {
		s.Handle(core.ActionFreeze)
	}

	want := 0.2 * math.Pow(0.92, 5)
	if got := s.osc.Interval(); math.Abs(got-want) > 1e-12 {
		t.Errorf("interval after 5 landings = %v, want %v", got, want)
	}
}

func TestSessionPartialLandingShrinksPlatform(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(core.ActionConfirm)

	// Two steps right: moving row at [7..11] over target [5..9].
	s.Tick(0.2)
	s.Tick(0.2)
	if got := s.MovingSpan(); got.Pos != 7 {
		t.Fatalf("moving pos = %d, want 7", got.Pos)
	}

	s.Handle(core.ActionFreeze)

	if want := (core.Span{Pos: 6, Width: 3}); s.Platform() != want {
		t.Errorf("platform = %+v, want %+v", s.Platform(), want)
	}
	if s.Level() != 1 {
		t.Errorf("level = %d, want 1", s.Level())
	}
}

func TestSessionTotalMissEndsGame(t *testing.T) {
	s, st := newTestSession(t)
	rec := &memRecorder{}
	s.SetRecorder(rec)

	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.Handle(core.ActionConfirm)
	s.Handle(core.ActionFreeze) // level 1
	loseGame(t, s)

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, want gameover", s.State())
	}
	if st.st.HighScore != 1 {
		t.Errorf("high score = %d, want 1", st.st.HighScore)
	}
	if len(rec.levels) != 1 || rec.levels[0] != 1 {
		t.Errorf("recorded levels = %v, want [1]", rec.levels)
	}

	// Input is dead until the timeout.
	s.Handle(core.ActionConfirm)
	if s.State() != StateGameOver {
		t.Fatal("gameover must ignore input")
	}

	now = now.Add(2900 * time.Millisecond)
	s.Tick(0)
	if s.State() != StateGameOver {
		t.Fatal("returned to menu before the delay elapsed")
	}

	now = now.Add(200 * time.Millisecond)
	s.Tick(0)
	if s.State() != StateMenu {
		t.Fatalf("state = %v, want menu after the delay", s.State())
	}
}

func TestSessionHighScoreOnlyOnStrictImprovement(t *testing.T) {
	s, st := newTestSession(t)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.Handle(core.ActionConfirm)
	s.Handle(core.ActionFreeze)
	loseGame(t, s)
	savesAfterFirst := st.saves

	now = now.Add(4 * time.Second)
	s.Tick(0)

	// Tie the high score: no extra save beyond the start-of-game one.
	s.Handle(core.ActionConfirm)
	s.Handle(core.ActionFreeze)
	loseGame(t, s)

	if st.st.HighScore != 1 {
		t.Errorf("high score = %d, want 1", st.st.HighScore)
	}
	if st.saves != savesAfterFirst+1 {
		t.Errorf("saves = %d, want %d (start only, tie must not persist)", st.saves, savesAfterFirst+1)
	}
}

func TestSessionLevelZeroRunNotRecorded(t *testing.T) {
	s, _ := newTestSession(t)
	rec := &memRecorder{}
	s.SetRecorder(rec)

	s.Handle(core.ActionConfirm)
	loseGame(t, s) // miss on the very first freeze

	if len(rec.levels) != 0 {
		t.Errorf("recorded levels = %v, want none for a level-0 run", rec.levels)
	}
}

func TestSessionSurvivesFailingPersistence(t *testing.T) {
	st := &memStore{fail: true}
	s := NewSession(testConfig(), st, nil)
	s.Resize(80, 24)
	rec := &memRecorder{fail: true}
	s.SetRecorder(rec)

	s.Handle(core.ActionConfirm)
	s.Handle(core.ActionFreeze)
	loseGame(t, s)

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, want gameover despite persistence failures", s.State())
	}
	if s.Stats().GamesPlayed != 1 {
		t.Errorf("in-memory games played = %d, want 1", s.Stats().GamesPlayed)
	}
}

func TestSessionNilStoreAndLogger(t *testing.T) {
	s := NewSession(testConfig(), nil, nil)
	s.Resize(80, 24)

	s.Handle(core.ActionConfirm)
	s.Handle(core.ActionFreeze)
	loseGame(t, s)

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, want gameover", s.State())
	}
}

func TestSessionRestartResetsTower(t *testing.T) {
	s, _ := newTestSession(t)
	now := time.Unix(1000, 0)
	s.now = func() time.Time { return now }

	s.Handle(core.ActionConfirm)
	for i := 0; i < 3; i++ {
		s.Handle(core.ActionFreeze)
	}
	loseGame(t, s)
	now = now.Add(4 * time.Second)
	s.Tick(0)

	s.Handle(core.ActionConfirm)
	if s.Level() != 0 {
		t.Errorf("level = %d, want 0 after restart", s.Level())
	}
	if s.Grid().RowCount() != 2 {
		t.Errorf("row count = %d, want 2 after restart", s.Grid().RowCount())
	}
	if got, want := s.osc.Interval(), 0.2; math.Abs(got-want) > 1e-12 {
		t.Errorf("interval = %v, want %v reset after restart", got, want)
	}
	if s.CameraOffset() != 0 {
		t.Errorf("camera offset = %v, want 0 after restart", s.CameraOffset())
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() uint64 {
		s := NewSession(testConfig(), &memStore{}, nil)
		s.Resize(80, 24)
		s.Handle(core.ActionConfirm)
		for i := 0; i < 40; i++ {
			s.Tick(0.07)
			if i%9 == 8 {
				s.Handle(core.ActionFreeze)
			}
		}
		snap := s.Snapshot()
		return snap.Hash()
	}

	first := run()
	for i := 0; i < 3; i++ {
		if got := run(); got != first {
			t.Fatalf("run %d hashed %d, want %d", i, got, first)
		}
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(core.ActionConfirm)
	s.Tick(0.2)
	s.Tick(0.2)
	s.Handle(core.ActionFreeze)
	s.Tick(0.13)

	snap := s.Snapshot()

	restored := NewSession(testConfig(), &memStore{}, nil)
	restored.Resize(80, 24)
	restored.ApplySnapshot(snap)

	got := restored.Snapshot()
	if got.Hash() != snap.Hash() {
		t.Fatal("restored snapshot hash differs from the original")
	}
	if restored.Level() != s.Level() {
		t.Errorf("level = %d, want %d", restored.Level(), s.Level())
	}
	if restored.Platform() != s.Platform() {
		t.Errorf("platform = %+v, want %+v", restored.Platform(), s.Platform())
	}
}

func TestSnapshotHashSensitivity(t *testing.T) {
	s, _ := newTestSession(t)
	s.Handle(core.ActionConfirm)

	before := s.Snapshot()
	s.Tick(0.2)
	after := s.Snapshot()

	if before.Hash() == after.Hash() {
		t.Fatal("a platform step should change the snapshot hash")
	}
}
