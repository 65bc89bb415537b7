// Package solver narrows down the possible secrets of a cows-and-bulls game
// from the feedback collected so far. It scores every remaining candidate
// with the same scorer the game uses, so a truthful history can never
// eliminate the real secret.
package solver

import (
	"errors"

	"example.com/bnc-cli/internal/game"
)

// ErrInconsistentHistory means an observation contradicts the ones before
// it: no valid Number scores that way against every recorded guess. A
// mistyped feedback line is the usual cause.
var ErrInconsistentHistory = errors.New("no candidate matches this history")

// Observation is one recorded exchange: the guess that was played and the
// feedback the secret holder gave for it. Immutable once recorded.
type Observation struct {
	Guess    game.Number
	Feedback game.Feedback
}

// Universe enumerates all 5040 valid Numbers in ascending order.
func Universe() []game.Number {
	out := make([]game.Number, 0, 10*9*8*7)
	for a := uint8(0); a < 10; a++ {
		for b := uint8(0); b < 10; b++ {
			if b == a {
				continue
			}
			for c := uint8(0); c < 10; c++ {
				if c == a || c == b {
					continue
				}
				for d := uint8(0); d < 10; d++ {
					if d == a || d == b || d == c {
						continue
					}
					out = append(out, game.Number{a, b, c, d})
				}
			}
		}
	}
	return out
}

// Filter keeps the candidates that would have produced exactly the
// observed feedback. Order is preserved; the input slice is not mutated.
func Filter(candidates []game.Number, obs Observation) []game.Number {
	out := make([]game.Number, 0, len(candidates))
	for _, c := range candidates {
		if game.Score(c, obs.Guess) == obs.Feedback {
			out = append(out, c)
		}
	}
	return out
}
