package tetris

import (
	"fmt"
	"math"
)

// Classic session defaults, used for zero-valued Config fields.
const (
	DefaultWidth           = 10
	DefaultHeight          = 20
	DefaultTicksPerSecond  = 100
	DefaultGravityInterval = 0.5
)

// Config fixes a session's dimensions and pacing at construction;
// nothing is reconfigurable afterwards.
type Config struct {
	Width           int     // visible board width in cells
	Height          int     // visible board height in cells
	TicksPerSecond  int     // cadence the driver calls Tick at
	GravityInterval float64 // seconds between automatic downward steps
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.TicksPerSecond == 0 {
		c.TicksPerSecond = DefaultTicksPerSecond
	}
	if c.GravityInterval == 0 {
		c.GravityInterval = DefaultGravityInterval
	}
	return c
}

// Outcome reports what a Tick or HardDrop did.
type Outcome uint8

const (
	// OutcomeNone means nothing changed: the gravity counter is still
	// below its threshold.
	OutcomeNone Outcome = iota
	// OutcomeMoved means the active piece fell one row.
	OutcomeMoved
	// OutcomeLocked means the piece landed: it locked in place, full
	// rows were cleared, and the next piece spawned.
	OutcomeLocked
	// OutcomeGameOver means the replacement piece overlapped existing
	// board content. The session is over; further calls are no-ops.
	OutcomeGameOver
)

// Game owns the board and the single active piece and runs the
// spawn/fall/lock/clear loop. It is single-threaded: the driver calls
// Tick at Config.TicksPerSecond and forwards player commands between
// ticks. Every operation completes before returning.
type Game struct {
	board *Board
	src   Source
	piece Piece

	score        int
	tickCount    int
	gravityTicks int
	over         bool
}

// New creates a game and spawns the first piece. It fails if the
// configured board cannot fit every rotation state in the catalog.
func New(cfg Config, src Source) (*Game, error) {
	cfg = cfg.withDefaults()
	spanW, spanH := maxShapeSpan()
	if cfg.Width < spanW {
		return nil, fmt.Errorf("tetris: board width %d cannot fit a piece spanning %d columns", cfg.Width, spanW)
	}
	if cfg.Height+BufferRows < spanH {
		return nil, fmt.Errorf("tetris: board height %d cannot fit a piece spanning %d rows", cfg.Height, spanH)
	}
	g := &Game{
		board:        NewBoard(cfg.Height, cfg.Width),
		src:          src,
		gravityTicks: max(1, int(math.Floor(float64(cfg.TicksPerSecond)*cfg.GravityInterval))),
	}
	g.spawn()
	return g, nil
}

// Dimensions returns the visible board size as (height, width).
func (g *Game) Dimensions() (height, width int) {
	return g.board.VisibleRows(), g.board.Width()
}

// Cell returns the color tag at a visible position, with row 0 the top
// visible row. Buffer rows are not addressable here.
func (g *Game) Cell(row, col int) int {
	return g.board.Cell(row+BufferRows, col)
}

// Score returns the total number of cleared rows. It never decreases.
func (g *Game) Score() int { return g.score }

// GameOver reports whether the session has reached its terminal state.
func (g *Game) GameOver() bool { return g.over }

// Tick advances the gravity counter; the driver calls it once per
// real-time tick. Every gravityTicks calls the piece falls one row,
// and a piece that can no longer fall locks, clears lines, and is
// replaced by a fresh spawn.
func (g *Game) Tick() Outcome {
	if g.over {
		return OutcomeGameOver
	}
	g.tickCount++
	if g.tickCount < g.gravityTicks {
		return OutcomeNone
	}
	g.tickCount = 0
	if g.TryMove(1, 0) {
		return OutcomeMoved
	}
	return g.lock()
}

// TryMove shifts the active piece by (dRow, dCol) if every target cell
// is in bounds and empty. It reports whether the move happened; on
// failure nothing changes.
func (g *Game) TryMove(dRow, dCol int) bool {
	if g.over {
		return false
	}
	if !g.fits(g.piece.Shape(), g.piece.Row+dRow, g.piece.Col+dCol) {
		return false
	}
	g.stamp(0)
	g.piece.Row += dRow
	g.piece.Col += dCol
	g.stamp(g.piece.Color)
	return true
}

// TryRotate turns the active piece one step in dir at its current
// anchor. There are no wall kicks: if the rotated footprint collides
// or leaves the board, the rotation fails and nothing changes.
func (g *Game) TryRotate(dir Spin) bool {
	if g.over {
		return false
	}
	next := g.piece.Rotated(dir)
	if !g.fits(shapes[g.piece.Kind][next], g.piece.Row, g.piece.Col) {
		return false
	}
	g.stamp(0)
	g.piece.Rotation = next
	g.stamp(g.piece.Color)
	return true
}

// HardDrop moves the piece down until it lands, then locks it exactly
// like a failed gravity step and resets the gravity counter.
func (g *Game) HardDrop() Outcome {
	if g.over {
		return OutcomeGameOver
	}
	for g.TryMove(1, 0) {
	}
	g.tickCount = 0
	return g.lock()
}

// fits reports whether shape placed at (row, col) lands only on empty
// in-bounds cells. The active piece is lifted off the board for the
// check and restored afterwards, so the piece never collides with
// itself.
func (g *Game) fits(shape Shape, row, col int) bool {
	g.stamp(0)
	ok := true
	for _, off := range shape {
		r, c := row+off.Row, col+off.Col
		if !g.board.InBounds(r, c) || g.board.Cell(r, c) != 0 {
			ok = false
			break
		}
	}
	g.stamp(g.piece.Color)
	return ok
}

// stamp writes color onto every cell of the active piece.
func (g *Game) stamp(color int) {
	for _, cell := range g.piece.Cells() {
		g.board.SetCell(cell.Row, cell.Col, color)
	}
}

// lock finalizes the landed piece (its cells are already stamped by
// the last successful move), clears any full rows in its span, and
// spawns the next piece.
func (g *Game) lock() Outcome {
	g.clearLines()
	if !g.spawn() {
		return OutcomeGameOver
	}
	return OutcomeLocked
}

// clearLines scans only the rows the landed piece spans; no other row
// can have just become full. Cleared rows are compacted away and added
// to the score.
func (g *Game) clearLines() {
	ext := g.piece.Extent()
	full := make(map[int]bool)
	for row := g.piece.Row + ext.MinRow; row <= g.piece.Row+ext.MaxRow; row++ {
		if g.board.RowFull(row) {
			full[row] = true
		}
	}
	if len(full) == 0 {
		return
	}
	g.board.ClearAndCompact(full)
	g.score += len(full)
}

// spawn replaces the active piece with a fresh one whose topmost cell
// sits at the top of the invisible buffer, at a source-chosen feasible
// column. It reports false when the new piece overlaps existing board
// content; that is the sole game-over trigger, and the board is left
// untouched in that case.
func (g *Game) spawn() bool {
	kind := g.src.NextKind()
	p := Piece{
		Kind:     kind,
		Rotation: g.src.Rotation(kind),
		Color:    g.src.Color(),
	}
	ext := shapes[p.Kind][p.Rotation].Extent()
	p.Row = -ext.MinRow
	p.Col = g.src.Column(-ext.MinCol, g.board.Width()-ext.MaxCol-1)
	for _, cell := range p.Cells() {
		if g.board.Cell(cell.Row, cell.Col) != 0 {
			g.over = true
			return false
		}
	}
	g.piece = p
	g.stamp(p.Color)
	return true
}
