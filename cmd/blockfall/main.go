package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetrisui"
)

func main() {
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Visible board height in cells.")
	gravity := flag.Float64("gravity", tetris.DefaultGravityInterval, "Seconds between automatic downward steps.")
	seed := flag.Uint64("seed", 0, "Randomizer seed; 0 picks one from the clock.")
	flag.Parse()

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	game, err := tetris.New(tetris.Config{
		Width:           *width,
		Height:          *height,
		TicksPerSecond:  ebiten.TPS(),
		GravityInterval: *gravity,
	}, tetris.NewRandomizer(rng))
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ui := tetrisui.New(game)
	ebiten.SetWindowSize(ui.WindowSize())
	ebiten.SetWindowTitle("blockfall")

	log.Printf("Starting game (seed %d)...", *seed)
	if err := ebiten.RunGame(ui); err != nil {
		log.Fatal(err)
	}
	log.Printf("Final score: %d", game.Score())
}
