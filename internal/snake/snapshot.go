package snake

// Snapshot captures the externally observable session state for determinism
// testing: two games fed identical seeds and inputs must produce identical
// snapshots at every point.
type Snapshot struct {
	Tick      uint64
	Direction Direction
	Segments  []Position
	Food      []Position
	Eaten     int
}

// Snapshot returns a deep copy of the observable state.
func (g *Game) Snapshot() Snapshot {
	segments := make([]Position, len(g.segments))
	copy(segments, g.segments)
	food := make([]Position, len(g.food))
	copy(food, g.food)

	return Snapshot{
		Tick:      g.tick,
		Direction: g.direction,
		Segments:  segments,
		Food:      food,
		Eaten:     g.eaten,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Tick != other.Tick || s.Direction != other.Direction || s.Eaten != other.Eaten {
		return false
	}
	if len(s.Segments) != len(other.Segments) || len(s.Food) != len(other.Food) {
		return false
	}
	for i := range s.Segments {
		if s.Segments[i] != other.Segments[i] {
			return false
		}
	}
	for i := range s.Food {
		if s.Food[i] != other.Food[i] {
			return false
		}
	}
	return true
}
