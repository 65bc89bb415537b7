package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/bnc-cli/internal/game"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// seededSecret reproduces the first secret a generator with the given seed
// will hand out, so scripted sessions know what to guess.
func seededSecret(seed uint64) game.Number {
	return game.NewSeededGenerator(seed).Generate()
}

func TestGameREPL_WinFirstTry(t *testing.T) {
	secret := seededSecret(42)
	in := strings.NewReader(secret.String() + "\n")
	var out bytes.Buffer

	repl := NewGameREPL(game.NewSeededGenerator(42), testLogger(), in, &out)
	require.NoError(t, repl.Run(context.Background()))

	assert.Contains(t, out.String(), "You won in 1 try!")
}

func TestGameREPL_InvalidGuessDoesNotConsumeTurn(t *testing.T) {
	secret := seededSecret(7)
	in := strings.NewReader("12a3\n1123\n" + secret.String() + "\n")
	var out bytes.Buffer

	repl := NewGameREPL(game.NewSeededGenerator(7), testLogger(), in, &out)
	require.NoError(t, repl.Run(context.Background()))

	assert.Contains(t, out.String(), "only digits 0-9 are allowed")
	assert.Contains(t, out.String(), "digits must be unique")
	assert.Contains(t, out.String(), "You won in 1 try!")
}

func TestGameREPL_FeedbackLine(t *testing.T) {
	// Seed 42's secret is known via seededSecret; guess something else and
	// make sure a feedback phrase (not a win) comes back before quitting.
	secret := seededSecret(42)
	wrong := "0123"
	if secret.String() == wrong {
		wrong = "4567"
	}
	in := strings.NewReader(wrong + "\nq\n")
	var out bytes.Buffer

	repl := NewGameREPL(game.NewSeededGenerator(42), testLogger(), in, &out)
	require.NoError(t, repl.Run(context.Background()))

	s := out.String()
	assert.True(t,
		strings.Contains(s, "Nothing found") || strings.Contains(s, "Found "),
		"no feedback line in output:\n%s", s)
	assert.Contains(t, s, "Bye.")
}

func TestGameREPL_Commands(t *testing.T) {
	in := strings.NewReader("h\ns\nhello\n\nq\n")
	var out bytes.Buffer

	repl := NewGameREPL(game.NewSeededGenerator(1), testLogger(), in, &out)
	require.NoError(t, repl.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "q, quit, exit - Quit game")
	assert.Contains(t, s, "   1 2 3 4") // hint table header
	assert.Contains(t, s, `Unknown command: "hello"`)
	assert.Contains(t, s, "Bye.")
}

func TestGameREPL_RestartStartsFreshSession(t *testing.T) {
	secret := seededSecret(9)
	// The generator hands out secret #1, restart draws secret #2; guessing
	// secret #1 after the restart must not win unless they collide.
	gen := game.NewSeededGenerator(9)
	probe := game.NewSeededGenerator(9)
	_ = probe.Generate()
	second := probe.Generate()

	script := "r\n" + secret.String() + "\nq\n"
	if second == secret {
		t.Skip("seed draws identical secrets back to back")
	}

	in := strings.NewReader(script)
	var out bytes.Buffer
	repl := NewGameREPL(gen, testLogger(), in, &out)
	require.NoError(t, repl.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "New game started.")
	assert.NotContains(t, s, "You won")
}

func TestGameREPL_InputClosedAborts(t *testing.T) {
	var out bytes.Buffer
	repl := NewGameREPL(game.NewSeededGenerator(1), testLogger(), strings.NewReader(""), &out)
	require.NoError(t, repl.Run(context.Background()))
	assert.Contains(t, out.String(), "Input closed, aborting.")
}

func TestGameREPL_ContextCancelAborts(t *testing.T) {
	pr, pw := io.Pipe() // never written: the read blocks until cancel
	defer pw.Close()

	var out bytes.Buffer
	repl := NewGameREPL(game.NewSeededGenerator(1), testLogger(), pr, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- repl.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("REPL did not abort on context cancellation")
	}
	assert.Contains(t, out.String(), "Aborted.")
}

func TestLooksLikeGuess(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"1234", true},
		{"12a3", true}, // four chars route to the parser for a real message
		{"12345", true},
		{"123", true},
		{"hello", false},
		{"stat", true}, // four chars, parser explains the rejection
		{"restart!", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, looksLikeGuess(tc.in), "input %q", tc.in)
	}
}
