package game

import (
	"github.com/google/uuid"
)

// State is the phase of one interactive game session.
type State string

const (
	StateAwaitingGuess State = "awaiting_guess"
	StateReporting     State = "reporting"
	StateWon           State = "won"
	StateAborted       State = "aborted"
)

// Session owns one game: a secret, a tries counter, the hint table and the
// current state. The secret never leaves the session; it is only observable
// through scoring. Sessions are single-player and single-goroutine.
type Session struct {
	id     string
	secret Number
	state  State
	tries  int
	hints  HintTable
}

// NewSession draws a fresh secret from gen and starts in AwaitingGuess.
func NewSession(gen *Generator) *Session {
	return &Session{
		id:     uuid.NewString(),
		secret: gen.Generate(),
		state:  StateAwaitingGuess,
	}
}

// newFixedSession pins the secret; used by tests.
func newFixedSession(secret Number) *Session {
	return &Session{
		id:     uuid.NewString(),
		secret: secret,
		state:  StateAwaitingGuess,
	}
}

func (s *Session) ID() string    { return s.id }
func (s *Session) State() State  { return s.state }
func (s *Session) Tries() int    { return s.tries }
func (s *Session) Hints() string { return s.hints.Render() }

// Offer feeds one line of player input into the state machine.
//
// A malformed line returns a validation error and leaves the session in
// AwaitingGuess without consuming a turn. A well-formed guess consumes a
// turn, updates the hint table and either wins the game or returns the
// feedback and re-arms AwaitingGuess.
func (s *Session) Offer(line string) (Feedback, error) {
	guess, err := ParseNumber(line)
	if err != nil {
		return Feedback{}, err
	}

	s.state = StateReporting
	s.tries++

	fb := Score(s.secret, guess)
	s.hints.Observe(guess, fb)

	if fb.Won() {
		s.state = StateWon
	} else {
		s.state = StateAwaitingGuess
	}
	return fb, nil
}

// Abort ends the session from any state. Terminal.
func (s *Session) Abort() {
	s.state = StateAborted
}
