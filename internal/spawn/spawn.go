// Package spawn decides which tetromino comes next and builds it.
package spawn

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetromino/internal/palette"
	"github.com/vovakirdan/tui-tetromino/internal/tetromino"
)

// Policy selects how kinds are drawn.
type Policy string

const (
	PolicyBag     Policy = "bag"     // Every run of seven spawns holds each kind once
	PolicyUniform Policy = "uniform" // Independent draws, repeats allowed
)

// Spawner produces new pieces at a fixed anchor, colored from a palette.
// Same seed, same policy: same sequence.
type Spawner struct {
	policy  Policy
	rng     *rand.Rand
	anchor  tetromino.Anchor
	palette palette.Palette

	queue []tetromino.Kind
}

// New creates a spawner. An unrecognized policy falls back to PolicyBag.
func New(policy Policy, seed int64, anchor tetromino.Anchor, p palette.Palette) *Spawner {
	if policy != PolicyUniform {
		policy = PolicyBag
	}
	return &Spawner{
		policy:  policy,
		rng:     rand.New(rand.NewSource(seed)),
		anchor:  anchor,
		palette: p,
	}
}

// Policy returns the active draw policy.
func (s *Spawner) Policy() Policy {
	return s.policy
}

// Peek returns the kind the next call to Next will build.
func (s *Spawner) Peek() tetromino.Kind {
	s.fill()
	return s.queue[0]
}

// NextKind consumes and returns the next kind.
func (s *Spawner) NextKind() tetromino.Kind {
	s.fill()
	k := s.queue[0]
	s.queue = s.queue[1:]
	return k
}

// Next builds the next piece.
func (s *Spawner) Next() *tetromino.Tetromino {
	k := s.NextKind()
	return tetromino.New(s.anchor, k, s.palette.Color(k))
}

// fill makes sure at least one kind is queued.
func (s *Spawner) fill() {
	if len(s.queue) > 0 {
		return
	}

	switch s.policy {
	case PolicyUniform:
		s.queue = append(s.queue, tetromino.Kind(s.rng.Intn(int(tetromino.KindCount))))
	default:
		bag := tetromino.Kinds()
		s.rng.Shuffle(len(bag), func(i, j int) {
			bag[i], bag[j] = bag[j], bag[i]
		})
		s.queue = append(s.queue, bag...)
	}
}
