package tetris

// BufferRows is the number of invisible rows above the visible board.
// New pieces spawn there so their overlap check happens before they
// become visible.
const BufferRows = 2

// NumColors is the number of distinct color tags a cell can hold.
const NumColors = 7

// Board is the grid of cell colors. A cell holds 0 when empty or a
// color tag in 1..NumColors. Rows 0..BufferRows-1 sit above the
// visible area.
type Board struct {
	width   int
	visible int
	rows    int // visible + BufferRows
	cells   [][]int
}

// NewBoard creates an empty board with the given visible height and
// width, plus the invisible buffer on top.
func NewBoard(height, width int) *Board {
	rows := height + BufferRows
	cells := make([][]int, rows)
	for i := range cells {
		cells[i] = make([]int, width)
	}
	return &Board{width: width, visible: height, rows: rows, cells: cells}
}

// Width returns the board width in cells.
func (b *Board) Width() int { return b.width }

// Rows returns the total row count, buffer included.
func (b *Board) Rows() int { return b.rows }

// VisibleRows returns the number of rows below the buffer.
func (b *Board) VisibleRows() int { return b.visible }

// InBounds reports whether (row, col) lies on the board, buffer
// included.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.width
}

// Cell returns the value at (row, col). Callers bounds-check first.
func (b *Board) Cell(row, col int) int {
	return b.cells[row][col]
}

// SetCell writes value at (row, col). Callers bounds-check first.
func (b *Board) SetCell(row, col, value int) {
	b.cells[row][col] = value
}

// RowFull reports whether every cell in the row is occupied.
func (b *Board) RowFull(row int) bool {
	for _, v := range b.cells[row] {
		if v == 0 {
			return false
		}
	}
	return true
}

// ClearRow zeroes every cell in the row.
func (b *Board) ClearRow(row int) {
	for col := range b.cells[row] {
		b.cells[row][col] = 0
	}
}

// ClearAndCompact removes the given rows and shifts everything above
// them down, preserving the relative order of surviving rows. Each
// surviving row may be consumed as a source at most once, so the scan
// skips over every removed or already-consumed row when sourcing
// replacement content; that keeps non-contiguous removals correct.
// Rows left without a source are zeroed.
func (b *Board) ClearAndCompact(remove map[int]bool) {
	if len(remove) == 0 {
		return
	}
	bottom := -1
	for row := range remove {
		if row > bottom {
			bottom = row
		}
	}
	moved := make([]bool, b.rows)
	for row := bottom; row >= 0; row-- {
		src := row - 1
		for src >= 0 && (remove[src] || moved[src]) {
			src--
		}
		if src >= 0 {
			copy(b.cells[row], b.cells[src])
			moved[src] = true
		} else {
			b.ClearRow(row)
		}
	}
}
