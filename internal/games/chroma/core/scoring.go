package core

// PointTable maps score tiers to points.
type PointTable struct {
	Tier1 int
	Tier2 int
	Tier3 int
	Tier4 int
}

// DefaultPointTable returns the stock tier values.
func DefaultPointTable() PointTable {
	return PointTable{Tier1: 10, Tier2: 50, Tier3: 100, Tier4: 200}
}

// Points returns the value of a tier. Negative entries count as zero.
func (p PointTable) Points(t ScoreTier) int {
	var v int
	switch t {
	case Tier1:
		v = p.Tier1
	case Tier2:
		v = p.Tier2
	case Tier3:
		v = p.Tier3
	case Tier4:
		v = p.Tier4
	}
	return max(v, 0)
}

// Award is the points earned by one merge, for popups and particles.
type Award struct {
	Points int
	Pos    Coord
	Color  Color
	Tier   ScoreTier
}

// Score holds the running total and the last round's gain.
type Score struct {
	Total        int
	CurrentRound int
}

// Apply starts a new round, scores the events and returns one award per event.
func (s *Score) Apply(events []MergeEvent, table PointTable) []Award {
	s.CurrentRound = 0
	awards := make([]Award, 0, len(events))
	for _, ev := range events {
		pts := table.Points(ev.Tier)
		s.CurrentRound += pts
		awards = append(awards, Award{Points: pts, Pos: ev.Pos, Color: ev.Color, Tier: ev.Tier})
	}
	s.Total += s.CurrentRound
	return awards
}
