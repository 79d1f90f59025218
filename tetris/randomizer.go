package tetris

import "math/rand/v2"

// Source supplies the spawn decisions for new pieces. Randomizer is
// the production implementation; tests can script their own.
type Source interface {
	// NextKind picks the kind of the next piece.
	NextKind() Kind
	// Rotation picks the initial rotation index for kind.
	Rotation(kind Kind) int
	// Color picks a color tag in 1..NumColors.
	Color() int
	// Column picks a spawn anchor column in [min, max].
	Column(min, max int) int
}

// Randomizer picks piece kinds with a biased reroll that makes
// immediate repeats rare while staying uniform in the long run: draw
// from {0..NumKinds}; the extra slot and a repeat of the previous kind
// both trigger one uniform redraw over {0..NumKinds-1}.
// See https://tetris.wiki/Tetris_(NES,_Nintendo)
type Randomizer struct {
	rng  *rand.Rand
	prev int
}

// NewRandomizer creates a Randomizer drawing from rng. Passing a
// seeded generator makes the piece sequence reproducible.
func NewRandomizer(rng *rand.Rand) *Randomizer {
	return &Randomizer{rng: rng, prev: -1}
}

// NextKind implements Source.
func (r *Randomizer) NextKind() Kind {
	k := r.rng.IntN(NumKinds + 1)
	if k == NumKinds || k == r.prev {
		k = r.rng.IntN(NumKinds)
	}
	r.prev = k
	return Kind(k)
}

// Rotation implements Source with a uniform pick over the kind's
// rotation states.
func (r *Randomizer) Rotation(kind Kind) int {
	return r.rng.IntN(len(kind.RotationStates()))
}

// Color implements Source with a uniform pick over the color tags.
func (r *Randomizer) Color() int {
	return 1 + r.rng.IntN(NumColors)
}

// Column implements Source with a uniform pick over [min, max].
func (r *Randomizer) Column(min, max int) int {
	return min + r.rng.IntN(max-min+1)
}
