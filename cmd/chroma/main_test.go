package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/config"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
	engine "github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
	"github.com/vovakirdan/tui-chroma/internal/games/chroma/levels"
	"github.com/vovakirdan/tui-chroma/internal/storage"
)

// isolate points the config search paths at empty directories and resets
// the setup flags after the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		flagConfig, flagPreset, flagPuzzle = "", "", ""
		flagWidth, flagHeight = 0, 0
	})
}

func TestResolveSetup(t *testing.T) {
	isolate(t)

	gs, err := resolveSetup(nil)
	if err != nil {
		t.Fatal(err)
	}
	def := config.DefaultChromaConfig()
	if gs.Mode != def.ModeValue() || gs.Config.Grid != def.Grid || gs.Puzzle != nil {
		t.Errorf("defaults not used: %+v", gs)
	}

	flagPreset = "compact"
	flagWidth = 5
	gs, err = resolveSetup([]string{"advanced"})
	if err != nil {
		t.Fatal(err)
	}
	if gs.Mode != engine.ModeAdvanced || gs.Config.Grid.Width != 5 || gs.Config.Grid.Height != 4 {
		t.Errorf("unexpected setup %+v", gs)
	}

	flagPuzzle = "03-prism"
	gs, err = resolveSetup([]string{"standard"})
	if err != nil {
		t.Fatal(err)
	}
	if gs.Puzzle == nil || gs.Mode != engine.ModeColorMerge {
		t.Errorf("puzzle should decide the mode, got %v", gs.Mode)
	}
}

func TestResolveSetupErrors(t *testing.T) {
	testCases := []struct {
		name string
		set  func()
		args []string
	}{
		{"unknown preset", func() { flagPreset = "huge" }, nil},
		{"grid too large", func() { flagWidth = config.MaxGridSize + 1 }, nil},
		{"unknown mode", func() {}, []string{"diagonal"}},
		{"unknown puzzle", func() { flagPuzzle = "99-nothing" }, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			isolate(t)
			tc.set()
			if _, err := resolveSetup(tc.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseModeArg(t *testing.T) {
	testCases := []struct {
		arg  string
		want engine.Mode
	}{
		{chroma.IDStandard, engine.ModeStandard},
		{chroma.IDColor, engine.ModeColorMerge},
		{"advanced", engine.ModeAdvanced},
		{"color_merge", engine.ModeColorMerge},
	}

	for _, tc := range testCases {
		got, err := parseModeArg(tc.arg)
		if err != nil || got != tc.want {
			t.Errorf("parseModeArg(%q) = %v, %v; want %v", tc.arg, got, err, tc.want)
		}
	}
}

func TestSimulatePuzzleSolution(t *testing.T) {
	lvl, err := levels.Builtin().LoadByID("01-pair")
	if err != nil {
		t.Fatal(err)
	}
	ctrl := lvl.NewController(config.DefaultChromaConfig().Settings(), 1)

	var out bytes.Buffer
	moves := append(append([]engine.Dir{}, lvl.Solution...), engine.DirUp)
	st := simulate(&out, ctrl, moves)

	if !st.LevelComplete || st.TotalScore != 100 || st.MoveCount != 3 {
		t.Errorf("unexpected final status %+v", st)
	}
	text := out.String()
	for _, want := range []string{"#3 Left", "+100", "1 move(s) ignored"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	moves, err := engine.ParseMoves("l u r d, l l u u r d d l")
	if err != nil {
		t.Fatal(err)
	}

	run := func() string {
		var out bytes.Buffer
		simulate(&out, engine.NewController(engine.DefaultSettings(), 42), moves)
		return out.String()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and moves gave different output:\n%s\n---\n%s", a, b)
	}
}

func TestPrintPuzzles(t *testing.T) {
	puzzles, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	printPuzzles(&out, puzzles)
	for _, want := range []string{"01-pair", "05-harvest", "clear the board", "60 points"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	printPuzzles(&out, nil)
	if !strings.Contains(out.String(), "No puzzles found.") {
		t.Error("empty list should say so")
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	if _, err := store.SaveScore(storage.Run{
		GameID: chroma.IDColor, Puzzle: "03-prism", Score: 110, Moves: 2, Width: 3, Height: 3, Completed: true,
	}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := printTopScores(&out, store, chroma.IDColor); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"110", "3x3", "03-prism *", "Best: 110"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("top scores missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	if err := printSummary(&out, store); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Color Merge") {
		t.Errorf("summary missing mode title:\n%s", out.String())
	}
}
