// Package tetris implements a falling-block puzzle engine: the board,
// the active piece, the piece randomizer, and the spawn/fall/lock/clear
// state machine. It performs no rendering, input polling, or timing;
// an external driver calls Tick at a fixed cadence and forwards player
// commands between ticks.
package tetris

import "fmt"

// Kind identifies one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindJ
	KindL
	KindS
	KindZ
	KindT
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

var kindNames = [NumKinds]string{"I", "O", "J", "L", "S", "Z", "T"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Offset is a cell position relative to a piece's anchor.
type Offset struct {
	Row, Col int
}

// Shape is one rotation state: the cells a piece occupies around its
// anchor.
type Shape []Offset

// Extent is the bounding box of a shape's offsets.
type Extent struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Extent returns the bounding box of the shape. Every shape has at
// least one cell.
func (s Shape) Extent() Extent {
	e := Extent{s[0].Row, s[0].Row, s[0].Col, s[0].Col}
	for _, off := range s[1:] {
		e.MinRow = min(e.MinRow, off.Row)
		e.MaxRow = max(e.MaxRow, off.Row)
		e.MinCol = min(e.MinCol, off.Col)
		e.MaxCol = max(e.MaxCol, off.Col)
	}
	return e
}

// Rotation states use the right-handed Nintendo Rotation System; each
// state is listed explicitly rather than derived by transform, so kinds
// with non-uniform rotation centers stay faithful. Kinds with
// rotational symmetry store only their distinct states.
// See https://tetris.wiki/Nintendo_Rotation_System
var shapes = [NumKinds][]Shape{
	KindI: {
		{{0, -2}, {0, -1}, {0, 0}, {0, 1}},
		{{-2, 0}, {-1, 0}, {0, 0}, {1, 0}},
	},
	KindO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	KindJ: {
		{{1, 1}, {0, 1}, {0, 0}, {0, -1}},
		{{1, -1}, {1, 0}, {0, 0}, {-1, 0}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
	},
	KindL: {
		{{1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{-1, 1}, {0, 1}, {0, 0}, {0, -1}},
		{{1, 1}, {1, 0}, {0, 0}, {-1, 0}},
	},
	KindS: {
		{{-1, 0}, {0, 0}, {0, 1}, {1, 1}},
		{{0, 1}, {0, 0}, {1, 0}, {1, -1}},
	},
	KindZ: {
		{{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		{{1, 1}, {1, 0}, {0, 0}, {0, -1}},
	},
	KindT: {
		{{0, 0}, {-1, 0}, {0, -1}, {0, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {1, 0}, {0, 1}},
		{{0, 0}, {0, -1}, {1, 0}, {-1, 0}},
	},
}

// RotationStates returns the kind's ordered rotation states. The
// returned slice is shared catalog data and must not be modified.
func (k Kind) RotationStates() []Shape {
	return shapes[k]
}

// maxShapeSpan returns the widest and tallest spans, in cells, over
// every rotation state in the catalog.
func maxShapeSpan() (width, height int) {
	for _, states := range shapes {
		for _, s := range states {
			e := s.Extent()
			width = max(width, e.MaxCol-e.MinCol+1)
			height = max(height, e.MaxRow-e.MinRow+1)
		}
	}
	return width, height
}
