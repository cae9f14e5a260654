package formats

import (
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

func TestParseYAMLBlocks(t *testing.T) {
	data := []byte(`
id: t1
name: Test
mode: advanced
spawn_next: true
win:
  target_score: 200
size: {w: 3, h: 2}
blocks:
  - {x: 0, y: 0, c: red, s: small}
  - {x: 2, y: 1, indicator: true}
solution: "l, u"
`)
	pz, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if pz.Mode != core.ModeAdvanced || !pz.SpawnNext || pz.Win.TargetScore != 200 || pz.Win.ClearBoard {
		t.Errorf("unexpected puzzle %+v", pz)
	}
	if pz.Board.Count() != 2 || pz.Board.IndicatorCount() != 1 {
		t.Errorf("got %d blocks / %d indicators", pz.Board.Count(), pz.Board.IndicatorCount())
	}
	if len(pz.Solution) != 2 || pz.Solution[0] != core.DirLeft || pz.Solution[1] != core.DirUp {
		t.Errorf("solution = %v", pz.Solution)
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	pz, err := ParseYAML([]byte("id: plain\nboard: |\n  Rs ..\n  .. Rs\n"))
	if err != nil {
		t.Fatal(err)
	}
	if pz.Name != "plain" || pz.Mode != core.ModeStandard || pz.SpawnNext {
		t.Errorf("unexpected defaults %+v", pz)
	}
	if g := pz.Board.Grid(); g.W != 2 || g.H != 2 {
		t.Errorf("grid = %+v", g)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"bad yaml", "id: [x"},
		{"missing id", "board: \"Rs ..\\n.. ..\""},
		{"unknown mode", "id: x\nmode: chess\nboard: \"Rs ..\\n.. ..\""},
		{"negative target", "id: x\nwin: {target_score: -1}\nboard: \"Rs ..\\n.. ..\""},
		{"no board", "id: x"},
		{"board and blocks", "id: x\nboard: \"Rs ..\\n.. ..\"\nsize: {w: 2, h: 2}\nblocks: [{x: 0, y: 0, c: r, s: s}]"},
		{"out of bounds", "id: x\nsize: {w: 2, h: 2}\nblocks: [{x: 2, y: 0, c: r, s: s}]"},
		{"overlap", "id: x\nsize: {w: 2, h: 2}\nblocks: [{x: 0, y: 0, c: r, s: s}, {x: 0, y: 0, c: g, s: s}]"},
		{"bad color", "id: x\nsize: {w: 2, h: 2}\nblocks: [{x: 0, y: 0, c: pink, s: s}]"},
		{"bad size", "id: x\nsize: {w: 2, h: 2}\nblocks: [{x: 0, y: 0, c: r, s: huge}]"},
		{"bad solution", "id: x\nboard: \"Rs ..\\n.. ..\"\nsolution: lx"},
		{"size too large", "id: x\nsize: {w: 13, h: 2}"},
		{"size too small", "id: x\nsize: {w: 2, h: 1}"},
		{"board too small", "id: x\nboard: \"Rs .. Gs\""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
