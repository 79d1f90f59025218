package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// Safety valve for pathological input policies; random play on a
// default board ends well below this.
const maxTicksPerGame = 10_000_000

func main() {
	games := flag.Int("games", 100, "The number of games to play to completion.")
	seed := flag.Uint64("seed", 1, "Seed for the piece randomizer and the input policy.")
	moveChance := flag.Float64("move-chance", 0.3, "Chance per tick that the input policy issues a command.")
	flag.Parse()

	log.Println("Starting engine soak test...")

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))

	report := &Report{Games: *games, Seed: *seed, MoveChance: *moveChance}

	start := time.Now()
	for i := 0; i < *games; i++ {
		playOne(rng, *moveChance, report)
	}
	report.TotalTime = time.Since(start)
	report.Ticks.Finalize()
	report.Lines.Finalize()

	log.Println("Soak finished.")

	fmt.Println("\n--- Engine Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// countingSource wraps the production Randomizer to tally kind
// frequencies and immediate repeats for the fairness section of the
// report.
type countingSource struct {
	*tetris.Randomizer
	report *Report
	prev   int
}

func (s *countingSource) NextKind() tetris.Kind {
	kind := s.Randomizer.NextKind()
	s.report.Draws++
	s.report.KindCounts[kind]++
	if int(kind) == s.prev {
		s.report.Repeats++
	}
	s.prev = int(kind)
	return kind
}

// playOne runs a single game to its game-over state under a random
// input policy and records its length and line count.
func playOne(rng *rand.Rand, moveChance float64, report *Report) {
	src := &countingSource{Randomizer: tetris.NewRandomizer(rng), report: report, prev: -1}

	game, err := tetris.New(tetris.Config{}, src)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	ticks := 0
	for !game.GameOver() && ticks < maxTicksPerGame {
		if rng.Float64() < moveChance {
			switch rng.IntN(5) {
			case 0:
				game.TryMove(0, -1)
			case 1:
				game.TryMove(0, 1)
			case 2:
				game.TryRotate(tetris.Clockwise)
			case 3:
				game.TryRotate(tetris.CounterClockwise)
			case 4:
				game.HardDrop()
			}
		}
		game.Tick()
		ticks++
	}

	report.Ticks.Samples = append(report.Ticks.Samples, ticks)
	report.Lines.Samples = append(report.Lines.Samples, game.Score())
}
