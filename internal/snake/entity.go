package snake

// Kind discriminates the entity classes the renderer draws differently.
type Kind int

const (
	KindHead Kind = iota
	KindSegment
	KindFood
)

// Entity is one drawable item: a grid position plus the logical footprint
// the renderer scales to screen cells.
type Entity struct {
	Kind Kind
	Pos  Position
	Size Size
}

// Entities returns every live entity in paint order: food first, then body
// segments, then the head, so later entries draw over earlier ones.
func (g *Game) Entities() []Entity {
	if len(g.segments) == 0 {
		panic("snake: no head segment")
	}

	out := make([]Entity, 0, len(g.food)+len(g.segments))
	for _, f := range g.food {
		out = append(out, Entity{Kind: KindFood, Pos: f, Size: foodSize})
	}
	for _, seg := range g.segments[1:] {
		out = append(out, Entity{Kind: KindSegment, Pos: seg, Size: segmentSize})
	}
	out = append(out, Entity{Kind: KindHead, Pos: g.segments[0], Size: headSize})
	return out
}
