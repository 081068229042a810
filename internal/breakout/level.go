package breakout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rosasor/brick-breaker/internal/config"
	"github.com/rosasor/brick-breaker/internal/core"
)

// ErrUnknownLevel is returned for a level name outside the fixed set.
var ErrUnknownLevel = errors.New("unknown level")

// LevelName identifies a brick layout.
type LevelName string

const (
	LevelClassic  LevelName = "Classic"
	LevelPyramid  LevelName = "Pyramid"
	LevelDiamond  LevelName = "Diamond"
	LevelFortress LevelName = "Fortress"
)

// Fixed grid sizes of the shaped layouts.
const (
	diamondSize     = config.DiamondSize
	fortressRows    = config.FortressRows
	fortressColumns = config.FortressColumns
)

// LevelInfo describes a level for menus and listings.
type LevelInfo struct {
	Name        LevelName
	Description string
}

var levels = []LevelInfo{
	{LevelClassic, "Traditional rows of bricks"},
	{LevelPyramid, "Triangular formation"},
	{LevelDiamond, "Diamond shaped pattern"},
	{LevelFortress, "Strong bricks surrounded by weak ones"},
}

// Levels returns all levels in campaign order.
func Levels() []LevelInfo {
	out := make([]LevelInfo, len(levels))
	copy(out, levels)
	return out
}

// Slug returns the lowercase identifier used on the command line and for
// score boards.
func (n LevelName) Slug() string {
	return strings.ToLower(string(n))
}

// ParseLevel resolves a level name case-insensitively.
func ParseLevel(s string) (LevelName, error) {
	for _, l := range levels {
		if strings.EqualFold(string(l.Name), strings.TrimSpace(s)) {
			return l.Name, nil
		}
	}
	return "", fmt.Errorf("breakout: %w: %q", ErrUnknownLevel, s)
}

// Generate builds the brick field for a level. The result depends only on
// the level name and the brick and field constants in cfg.
func Generate(name LevelName, cfg config.BreakoutConfig) ([]*Brick, error) {
	g := generator{cfg: cfg}
	switch name {
	case LevelClassic:
		return g.classic(), nil
	case LevelPyramid:
		return g.pyramid(), nil
	case LevelDiamond:
		return g.diamond(), nil
	case LevelFortress:
		return g.fortress(), nil
	default:
		return nil, fmt.Errorf("breakout: %w: %q", ErrUnknownLevel, name)
	}
}

type generator struct {
	cfg    config.BreakoutConfig
	bricks []*Brick
}

// place adds a brick at grid cell (row, col) of a row holding n bricks,
// centering the row horizontally in the field.
func (g *generator) place(row, col, n int, t BrickType) {
	b := g.cfg.Bricks
	pitch := b.Width + b.GapX
	rowWidth := float64(n)*pitch - b.GapX
	x := (g.cfg.Field.Width-rowWidth)/2 + float64(col)*pitch
	y := b.Top + float64(row)*(b.Height+b.GapY)
	g.bricks = append(g.bricks, NewBrick(row, col, core.NewBox(x, y, b.Width, b.Height), t))
}

func (g *generator) classic() []*Brick {
	for row := range g.cfg.Bricks.Rows {
		t := BrickNormal
		if row == 0 {
			t = BrickTough
		}
		for col := range g.cfg.Bricks.Columns {
			g.place(row, col, g.cfg.Bricks.Columns, t)
		}
	}
	return g.bricks
}

func (g *generator) pyramid() []*Brick {
	for row := range g.cfg.Bricks.Rows {
		n := g.cfg.Bricks.Columns - 2*row
		if n <= 0 {
			break
		}
		var t BrickType
		switch row {
		case 0:
			t = BrickSuper
		case 1:
			t = BrickTough
		default:
			t = BrickNormal
		}
		for col := range n {
			g.place(row, col, n, t)
		}
	}
	return g.bricks
}

func (g *generator) diamond() []*Brick {
	center := diamondSize / 2
	for row := range diamondSize {
		for col := range diamondSize {
			d := core.Abs(row-center) + core.Abs(col-center)
			if d > center {
				continue
			}
			var t BrickType
			switch d {
			case 0:
				t = BrickSuper
			case 1:
				t = BrickTough
			default:
				t = BrickNormal
			}
			g.place(row, col, diamondSize, t)
		}
	}
	return g.bricks
}

func (g *generator) fortress() []*Brick {
	for row := range fortressRows {
		for col := range fortressColumns {
			t := BrickNormal
			if row >= 1 && row <= 4 && col >= 2 && col <= 5 {
				t = BrickTough
				if row >= 2 && row <= 3 && col >= 3 && col <= 4 {
					t = BrickSuper
				}
			}
			g.place(row, col, fortressColumns, t)
		}
	}
	return g.bricks
}
