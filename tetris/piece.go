package tetris

// Spin selects a rotation direction.
type Spin uint8

const (
	Clockwise Spin = iota
	CounterClockwise
)

// Piece is the active falling piece. There is exactly one per game;
// the anchor (Row, Col) is the board cell its shape offsets are
// relative to.
type Piece struct {
	Kind     Kind
	Rotation int
	Row, Col int
	Color    int
}

// Shape returns the offsets of the piece's current rotation state.
func (p *Piece) Shape() Shape {
	return shapes[p.Kind][p.Rotation]
}

// Cells returns the absolute board positions the piece occupies.
func (p *Piece) Cells() []Offset {
	shape := p.Shape()
	cells := make([]Offset, len(shape))
	for i, off := range shape {
		cells[i] = Offset{Row: p.Row + off.Row, Col: p.Col + off.Col}
	}
	return cells
}

// Extent returns the bounding box of the current rotation state,
// relative to the anchor rather than the board.
func (p *Piece) Extent() Extent {
	return p.Shape().Extent()
}

// Rotated returns the rotation index one step in the given direction,
// wrapping modulo the kind's state count. It does not mutate the piece.
func (p *Piece) Rotated(dir Spin) int {
	n := len(shapes[p.Kind])
	if dir == CounterClockwise {
		return (p.Rotation + n - 1) % n
	}
	return (p.Rotation + 1) % n
}
