package chroma

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/core"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
	"github.com/vovakirdan/tui-chroma/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func press(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

// withPuzzle runs a test with a puzzle active and restores free play after.
func withPuzzle(t *testing.T, id string) *levels.Level {
	t.Helper()
	lvl, err := levels.Builtin().LoadByID(id)
	if err != nil {
		t.Fatal(err)
	}
	SetPuzzle(&lvl)
	t.Cleanup(func() { SetPuzzle(nil) })
	return &lvl
}

func TestRegisteredModes(t *testing.T) {
	testCases := []struct {
		id   string
		mode engine.Mode
	}{
		{IDStandard, engine.ModeStandard},
		{IDColor, engine.ModeColorMerge},
		{IDAdvanced, engine.ModeAdvanced},
	}

	for _, tc := range testCases {
		t.Run(tc.id, func(t *testing.T) {
			g, err := registry.Create(tc.id)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			cg, ok := g.(*Game)
			if !ok {
				t.Fatalf("unexpected type %T", g)
			}
			if cg.Mode() != tc.mode {
				t.Errorf("mode = %v, want %v", cg.Mode(), tc.mode)
			}
			if m, ok := ModeForID(tc.id); !ok || m != tc.mode {
				t.Errorf("ModeForID(%q) = %v, %v", tc.id, m, ok)
			}

			info, _ := registry.Lookup(tc.id)
			if info.Description == "" {
				t.Error("missing menu description")
			}
		})
	}
}

func TestResetUsesConfig(t *testing.T) {
	cfg := config.DefaultChromaConfig()
	cfg.Grid = config.GridConfig{Width: 4, Height: 5}
	SetConfig(cfg)
	t.Cleanup(func() { SetConfig(config.DefaultChromaConfig()) })

	g := New(engine.ModeColorMerge)
	g.Reset(testConfig())

	s := g.Controller().Settings()
	if s.Width != 4 || s.Height != 5 {
		t.Errorf("grid = %dx%d, want 4x5", s.Width, s.Height)
	}
	if s.Mode != engine.ModeColorMerge {
		t.Error("registered mode should override the configured mode")
	}
	if st := g.State(); st.Score != 0 || st.Moves != 0 || st.Finished() {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestStepPlaysOneRound(t *testing.T) {
	g := New(engine.ModeStandard)
	g.Reset(testConfig())

	res := g.Step(core.NewInputFrame())
	if res.Changed || res.State.Moves != 0 {
		t.Error("empty frame should not play a round")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)
	res = g.Step(in)
	if !res.Changed || res.State.Moves != 1 {
		t.Errorf("expected exactly one round, got %+v", res)
	}

	report, ok := g.LastRound()
	if !ok || report.Dir != engine.DirUp {
		t.Errorf("expected Up to take priority, got %v", report.Dir)
	}
}

func TestPauseAndHelpBlockMoves(t *testing.T) {
	g := New(engine.ModeStandard)
	g.Reset(testConfig())

	g.Step(press(core.ActionPause))
	if res := g.Step(press(core.ActionLeft)); res.Changed || !res.State.Paused {
		t.Error("moves should be ignored while paused")
	}
	g.Step(press(core.ActionPause))

	g.Step(press(core.ActionHelp))
	if g.Snapshot().State != StatePaused {
		t.Error("rules panel should pause the game")
	}
	g.Step(press(core.ActionHelp))

	if res := g.Step(press(core.ActionLeft)); !res.Changed {
		t.Error("moves should resume after closing the panels")
	}
}

func TestPuzzleCompletesAndRestarts(t *testing.T) {
	lvl := withPuzzle(t, "02-growth")

	g := New(engine.ModeAdvanced)
	g.Reset(testConfig())
	if g.Mode() != engine.ModeStandard {
		t.Errorf("puzzle mode should win, got %v", g.Mode())
	}
	start := g.Snapshot().Board

	for range lvl.Solution {
		g.Step(press(core.ActionLeft))
	}
	st := g.State()
	if !st.LevelComplete || st.Score != 160 {
		t.Fatalf("expected completed puzzle with 160 points, got %+v", st)
	}
	if g.Snapshot().State != StateLevelComplete {
		t.Error("snapshot should report level complete")
	}
	if len(g.popups) == 0 {
		t.Error("expected score popups after the last merge")
	}

	g.Step(press(core.ActionRestart))
	if g.Snapshot().Board != start || g.State().Moves != 0 {
		t.Error("restart should restore the puzzle board")
	}
	if _, played := g.LastRound(); played {
		t.Error("restart should clear the last round")
	}
}

func TestPopupsExpire(t *testing.T) {
	withPuzzle(t, "01-pair")

	g := New(engine.ModeStandard)
	g.Reset(testConfig())
	for range 3 {
		g.Step(press(core.ActionLeft))
	}
	if len(g.popups) != 1 || g.popups[0].text != "+100" {
		t.Fatalf("popups = %+v", g.popups)
	}

	for range popupTicks {
		g.Step(core.NewInputFrame())
	}
	if len(g.popups) != 0 {
		t.Errorf("popups should expire, %d left", len(g.popups))
	}
}

func TestFeedIsBounded(t *testing.T) {
	g := New(engine.ModeStandard)
	g.Reset(testConfig())

	for i := range 20 {
		d := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}[i%4]
		g.Step(press(d))
		if g.State().Finished() {
			break
		}
	}
	if len(g.feed) == 0 || len(g.feed) > feedSize {
		t.Errorf("feed has %d lines", len(g.feed))
	}
}

func TestDeterminism(t *testing.T) {
	moves := []core.Action{core.ActionLeft, core.ActionDown, core.ActionRight, core.ActionUp, core.ActionLeft}

	run := func() Snapshot {
		g := New(engine.ModeColorMerge)
		g.Reset(testConfig())
		for range 6 {
			for _, a := range moves {
				g.Step(press(a))
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	withPuzzle(t, "03-prism")

	g := New(engine.ModeColorMerge)
	g.Reset(testConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Puzzle: Prism", "Moves: 0", "Goal: clear", "Q: Quit"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	g.Step(press(core.ActionHelp))
	g.Render(screen)
	if !strings.Contains(screen.String(), "RULES: Color Merge") {
		t.Error("rules panel not rendered")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(engine.ModeStandard)
	g.Reset(testConfig())
	screen := core.NewScreen(10, 5)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too small") {
		t.Errorf("expected too-small message:\n%s", screen.String())
	}
}

func TestConfigurePinsInstance(t *testing.T) {
	pinned := config.DefaultChromaConfig()
	pinned.Grid = config.GridConfig{Width: 4, Height: 5}

	g := New(engine.ModeStandard)
	g.Configure(pinned, nil)

	shared := config.DefaultChromaConfig()
	shared.Grid = config.GridConfig{Width: 9, Height: 9}
	SetConfig(shared)
	t.Cleanup(func() { SetConfig(config.DefaultChromaConfig()) })

	g.Reset(testConfig())
	if w, h := g.GridSize(); w != 4 || h != 5 {
		t.Errorf("GridSize() = %dx%d, want 4x5", w, h)
	}
	if g.PuzzleID() != "" {
		t.Errorf("PuzzleID() = %q in free play", g.PuzzleID())
	}

	lvl, err := levels.Builtin().LoadByID("01-pair")
	if err != nil {
		t.Fatal(err)
	}
	g.Configure(pinned, &lvl)
	g.Reset(testConfig())
	if g.PuzzleID() != "01-pair" {
		t.Errorf("PuzzleID() = %q, want 01-pair", g.PuzzleID())
	}
	if w, h := g.GridSize(); w != 4 || h != 4 {
		t.Errorf("puzzle GridSize() = %dx%d, want 4x4", w, h)
	}
}
