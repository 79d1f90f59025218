package main

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Games      int
	Seed       uint64
	MoveChance float64

	// Results
	TotalTime time.Duration
	Ticks     Stats
	Lines     Stats

	// Randomizer tallies
	Draws      int
	Repeats    int
	KindCounts [tetris.NumKinds]int
}

type Stats struct {
	Min     int
	Max     int
	Avg     float64
	Samples []int
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	total := 0
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

type KindTally struct {
	Name  string
	Count int
	Share float64
}

// Kinds flattens the per-kind counters for the template.
func (r *Report) Kinds() []KindTally {
	tallies := make([]KindTally, tetris.NumKinds)
	for i, count := range r.KindCounts {
		share := 0.0
		if r.Draws > 0 {
			share = float64(count) / float64(r.Draws)
		}
		tallies[i] = KindTally{Name: tetris.Kind(i).String(), Count: count, Share: share}
	}
	return tallies
}

// RepeatRate is the observed frequency of two identical kinds in a
// row; the biased reroll should keep it well under 1/7.
func (r *Report) RepeatRate() float64 {
	if r.Draws == 0 {
		return 0
	}
	return float64(r.Repeats) / float64(r.Draws)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Engine Soak Report

## Test Configuration
- **Games:** {{.Games}}
- **Seed:** {{.Seed}}
- **Move Chance:** {{.MoveChance}}

## Results
- **Total Test Time:** {{.TotalTime}}
- **Game Length (ticks):**
  - **Avg:** {{printf "%.1f" .Ticks.Avg}}
  - **Min:** {{.Ticks.Min}}
  - **Max:** {{.Ticks.Max}}
- **Lines Cleared (per game):**
  - **Avg:** {{printf "%.2f" .Lines.Avg}}
  - **Min:** {{.Lines.Min}}
  - **Max:** {{.Lines.Max}}

## Randomizer
- **Draws:** {{.Draws}}
- **Immediate Repeats:** {{.Repeats}} ({{pct .RepeatRate}}, uniform would be {{pct 0.142857}})
{{- range .Kinds}}
- **{{.Name}}:** {{.Count}} ({{pct .Share}})
{{- end}}
`

	fm := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.2f%%", v*100)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
