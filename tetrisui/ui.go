// Package tetrisui renders a tetris.Game with Ebitengine and drives it
// with the keyboard. The engine does its own pacing off Tick, so the
// game should be configured with TicksPerSecond equal to the Ebitengine
// tick rate.
package tetrisui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/tetris"
)

const (
	// CellSize is the drawn size of one board cell in pixels.
	CellSize = 30

	margin     = 20
	panelWidth = 140

	// Horizontal movement auto-repeats after a short hold, soft drop
	// repeats immediately. Frame counts assume 60 ticks per second.
	repeatDelayFrames    = 12
	repeatIntervalFrames = 3
	softDropFrames       = 3
)

var palette = [tetris.NumColors + 1]color.RGBA{
	{24, 24, 24, 255}, // empty cell
	{229, 57, 53, 255},
	{67, 160, 71, 255},
	{251, 192, 45, 255},
	{30, 136, 229, 255},
	{142, 36, 170, 255},
	{0, 172, 193, 255},
	{245, 124, 0, 255},
}

// UI implements ebiten.Game over a tetris.Game.
type UI struct {
	game *tetris.Game
}

// New wraps game in a playable UI.
func New(game *tetris.Game) *UI {
	return &UI{game: game}
}

// WindowSize returns the pixel size of the window the UI draws into.
func (u *UI) WindowSize() (width, height int) {
	boardHeight, boardWidth := u.game.Dimensions()
	return boardWidth*CellSize + panelWidth + 2*margin, boardHeight*CellSize + 2*margin
}

// Update polls the keyboard, forwards commands to the engine, and
// advances one engine tick.
func (u *UI) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if u.game.GameOver() {
		return nil
	}

	if shiftFires(ebiten.KeyLeft) {
		u.game.TryMove(0, -1)
	}
	if shiftFires(ebiten.KeyRight) {
		u.game.TryMove(0, 1)
	}
	if d := inpututil.KeyPressDuration(ebiten.KeyDown); d == 1 || (d > 1 && d%softDropFrames == 0) {
		u.game.TryMove(1, 0)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyZ) {
		u.game.TryRotate(tetris.Clockwise)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		u.game.TryRotate(tetris.CounterClockwise)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		u.game.HardDrop()
	}

	u.game.Tick()
	return nil
}

// shiftFires reports whether a held horizontal key should move the
// piece this frame: once on the initial press, then repeatedly after
// the hold delay.
func shiftFires(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d > repeatDelayFrames && (d-repeatDelayFrames)%repeatIntervalFrames == 0
}

// Draw renders the visible board, the score, and the game-over banner.
func (u *UI) Draw(screen *ebiten.Image) {
	boardHeight, boardWidth := u.game.Dimensions()

	vector.StrokeRect(screen,
		margin-2, margin-2,
		float32(boardWidth*CellSize)+4, float32(boardHeight*CellSize)+4,
		2, color.RGBA{128, 128, 128, 255}, false)

	for row := 0; row < boardHeight; row++ {
		for col := 0; col < boardWidth; col++ {
			x := float32(margin + col*CellSize)
			y := float32(margin + row*CellSize)
			vector.DrawFilledRect(screen, x, y, CellSize-1, CellSize-1, palette[u.game.Cell(row, col)], false)
		}
	}

	textX := margin + boardWidth*CellSize + margin
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", u.game.Score()), textX, margin)

	if u.game.GameOver() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nPress Esc to quit",
			margin+boardWidth*CellSize/2-30, margin+boardHeight*CellSize/2)
	}
}

// Layout implements ebiten.Game with a fixed logical size derived from
// the board dimensions.
func (u *UI) Layout(outsideWidth, outsideHeight int) (int, int) {
	return u.WindowSize()
}
