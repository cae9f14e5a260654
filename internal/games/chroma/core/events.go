package core

// EventKind identifies a round notification for audio, particles and UI.
type EventKind uint8

const (
	EventBlockMoved EventKind = iota
	EventMergeSmall
	EventMergeMedium
	EventMergeLarge
	EventIndicatorSpawned
	EventGameOver
	EventLevelComplete
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBlockMoved:
		return "BlockMoved"
	case EventMergeSmall:
		return "MergeSmall"
	case EventMergeMedium:
		return "MergeMedium"
	case EventMergeLarge:
		return "MergeLarge"
	case EventIndicatorSpawned:
		return "IndicatorSpawned"
	case EventGameOver:
		return "GameOver"
	case EventLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

// Event is one entry of a round's ordered event list.
type Event struct {
	Kind  EventKind
	Pos   Coord
	Color Color
}

// SoundClass buckets a merge for audio: clears are Large, otherwise the
// smallest of mover and result decides.
func (e MergeEvent) SoundClass() EventKind {
	switch {
	case e.Annihilated:
		return EventMergeLarge
	case e.MoverSize == SizeSmall || e.Size == SizeSmall:
		return EventMergeSmall
	case e.MoverSize == SizeMedium || e.Size == SizeMedium:
		return EventMergeMedium
	default:
		return EventMergeLarge
	}
}
