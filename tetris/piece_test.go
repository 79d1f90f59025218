package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

func TestPieceCellsAreAnchorRelative(t *testing.T) {
	p := tetris.Piece{Kind: tetris.KindO, Rotation: 0, Row: 5, Col: 3, Color: 2}

	assert.ElementsMatch(t, []tetris.Offset{
		{Row: 5, Col: 3},
		{Row: 5, Col: 4},
		{Row: 6, Col: 3},
		{Row: 6, Col: 4},
	}, p.Cells())
}

func TestPieceExtentIgnoresAnchor(t *testing.T) {
	near := tetris.Piece{Kind: tetris.KindT, Rotation: 0, Row: 0, Col: 0}
	far := tetris.Piece{Kind: tetris.KindT, Rotation: 0, Row: 17, Col: 8}

	assert.Equal(t, near.Extent(), far.Extent())
	assert.Equal(t, tetris.Extent{MinRow: -1, MaxRow: 0, MinCol: -1, MaxCol: 1}, near.Extent())
}

func TestRotatedWrapsInBothDirections(t *testing.T) {
	for _, kind := range allKinds {
		t.Run(kind.String(), func(t *testing.T) {
			n := len(kind.RotationStates())

			last := tetris.Piece{Kind: kind, Rotation: n - 1}
			assert.Equal(t, 0, last.Rotated(tetris.Clockwise))

			first := tetris.Piece{Kind: kind}
			assert.Equal(t, (n-1)%n, first.Rotated(tetris.CounterClockwise))

			// Rotated must never mutate.
			assert.Equal(t, 0, first.Rotation)
		})
	}
}

func TestRotatedRoundTrip(t *testing.T) {
	for _, kind := range allKinds {
		p := tetris.Piece{Kind: kind, Rotation: 0}
		p.Rotation = p.Rotated(tetris.Clockwise)
		p.Rotation = p.Rotated(tetris.CounterClockwise)
		assert.Equal(t, 0, p.Rotation, "cw then ccw should return to the start for %v", kind)
	}
}
