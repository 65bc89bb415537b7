package solver

import (
	"github.com/google/uuid"

	"example.com/bnc-cli/internal/game"
)

// Analysis is one assistant session: the ordered observations entered so
// far and the candidate set consistent with all of them. The set starts at
// the full universe and only ever shrinks.
type Analysis struct {
	id           string
	observations []Observation
	candidates   []game.Number
}

// NewAnalysis starts from the full candidate universe.
func NewAnalysis() *Analysis {
	return &Analysis{
		id:         uuid.NewString(),
		candidates: Universe(),
	}
}

func (a *Analysis) ID() string { return a.id }

// Observations returns the recorded history, oldest first.
func (a *Analysis) Observations() []Observation {
	return a.observations
}

// Add records an observation and filters the candidate set. An observation
// that would leave no candidate at all contradicts the history; it is
// rejected with ErrInconsistentHistory and nothing is recorded, so the
// player can re-enter it.
func (a *Analysis) Add(obs Observation) error {
	next := Filter(a.candidates, obs)
	if len(next) == 0 {
		return ErrInconsistentHistory
	}
	a.observations = append(a.observations, obs)
	a.candidates = next
	return nil
}

// Drop discards the most recent observation and refilters the universe
// through the remaining history. Returns false when there is nothing to
// drop.
func (a *Analysis) Drop() bool {
	if len(a.observations) == 0 {
		return false
	}
	a.observations = a.observations[:len(a.observations)-1]
	a.candidates = Universe()
	for _, obs := range a.observations {
		a.candidates = Filter(a.candidates, obs)
	}
	return true
}

// Candidates returns the remaining candidates in ascending order. The
// universe is generated ascending and Filter preserves order, so no sort
// is needed. Callers must not mutate the returned slice.
func (a *Analysis) Candidates() []game.Number {
	return a.candidates
}
