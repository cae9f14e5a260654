package core_test

import (
	"testing"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma/core"
)

func TestPointTable(t *testing.T) {
	table := core.PointTable{Tier1: 10, Tier2: -5, Tier3: 100, Tier4: 200}

	testCases := []struct {
		tier core.ScoreTier
		want int
	}{
		{core.TierNone, 0},
		{core.Tier1, 10},
		{core.Tier2, 0},
		{core.Tier3, 100},
		{core.Tier4, 200},
	}

	for _, tc := range testCases {
		if got := table.Points(tc.tier); got != tc.want {
			t.Errorf("Points(%v) = %d, want %d", tc.tier, got, tc.want)
		}
	}
}

func TestScoreApply(t *testing.T) {
	var s core.Score
	table := core.DefaultPointTable()

	awards := s.Apply([]core.MergeEvent{
		{Tier: core.Tier1, Pos: core.C(1, 1), Color: core.ColorRed},
		{Tier: core.Tier3, Pos: core.C(2, 2), Color: core.ColorWhite},
	}, table)

	if s.Total != 110 || s.CurrentRound != 110 {
		t.Errorf("score = %+v, want total 110 round 110", s)
	}
	if len(awards) != 2 || awards[1].Points != 100 || awards[1].Pos != core.C(2, 2) {
		t.Errorf("unexpected awards %+v", awards)
	}

	s.Apply(nil, table)
	if s.Total != 110 || s.CurrentRound != 0 {
		t.Errorf("empty round should reset round score only, got %+v", s)
	}
}
