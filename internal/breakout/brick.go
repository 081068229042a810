package breakout

import "github.com/rosasor/brick-breaker/internal/core"

// BrickType determines how many hits a brick takes and what it is worth.
type BrickType int

const (
	BrickNormal BrickType = iota
	BrickTough
	BrickSuper
)

// String returns the name of the brick type.
func (t BrickType) String() string {
	switch t {
	case BrickNormal:
		return "normal"
	case BrickTough:
		return "tough"
	case BrickSuper:
		return "super"
	default:
		return "?"
	}
}

// MaxHits returns the number of hits a fresh brick of this type absorbs.
func (t BrickType) MaxHits() int {
	switch t {
	case BrickTough:
		return 2
	case BrickSuper:
		return 3
	default:
		return 1
	}
}

// Points returns the score awarded when a brick of this type is destroyed.
func (t BrickType) Points() int {
	return t.MaxHits() * 10
}

// Brick is one destructible block on the field.
type Brick struct {
	Row, Col int // Cell in the generating layout
	Box      core.Box
	Type     BrickType
	hits     int
}

// NewBrick creates a brick with full hits for its type.
func NewBrick(row, col int, box core.Box, t BrickType) *Brick {
	return &Brick{Row: row, Col: col, Box: box, Type: t, hits: t.MaxHits()}
}

// HitsLeft returns the remaining hits before the brick is destroyed.
func (b *Brick) HitsLeft() int {
	return b.hits
}

// Destroyed reports whether the brick has no hits left.
func (b *Brick) Destroyed() bool {
	return b.hits <= 0
}

// Hit registers one hit. Points are awarded only on the hit that destroys
// the brick; hitting an already destroyed brick is a no-op.
func (b *Brick) Hit() (destroyed bool, points int) {
	if b.hits <= 0 {
		return false, 0
	}
	b.hits--
	if b.hits > 0 {
		return false, 0
	}
	return true, b.Type.Points()
}

// Color derives the display colour from the type and remaining hits.
func (b *Brick) Color() core.Color {
	return BrickColor(b.Type, b.hits)
}

// BrickColor maps (type, hits left) to a colour. Single-hit bricks are
// always white; multi-hit bricks fade red, orange, yellow as they weaken.
func BrickColor(t BrickType, hitsLeft int) core.Color {
	if t.MaxHits() == 1 {
		return core.ColorWhite
	}
	switch {
	case hitsLeft >= 3:
		return core.ColorRed
	case hitsLeft == 2:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}
