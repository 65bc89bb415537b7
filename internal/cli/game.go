package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"example.com/bnc-cli/internal/game"
)

// GameREPL runs interactive cows-and-bulls sessions over a line stream.
type GameREPL struct {
	gen *game.Generator
	log *slog.Logger
	in  io.Reader
	out io.Writer
}

func NewGameREPL(gen *game.Generator, log *slog.Logger, in io.Reader, out io.Writer) *GameREPL {
	return &GameREPL{gen: gen, log: log, in: in, out: out}
}

// Run plays sessions until the player wins, quits, the input stream closes
// or ctx is canceled. One session at a time; `r` swaps in a fresh one.
func (g *GameREPL) Run(ctx context.Context) error {
	lines := readLines(g.in)

	session := game.NewSession(g.gen)
	g.log.Info("game session started", "session", session.ID())

	fmt.Fprintln(g.out, "Guess the number! (Enter 'q' to quit, 'h' for help)")

	for {
		fmt.Fprintf(g.out, "%d > ", session.Tries())

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			session.Abort()
			fmt.Fprintln(g.out, "\nAborted.")
			g.log.Info("game session aborted", "session", session.ID(), "tries", session.Tries())
			return nil
		case line, ok = <-lines:
			if !ok {
				session.Abort()
				fmt.Fprintln(g.out, "\nInput closed, aborting.")
				g.log.Info("input stream closed", "session", session.ID())
				return nil
			}
		}

		switch line {
		case "":
			continue

		case "q", "quit", "exit":
			session.Abort()
			fmt.Fprintln(g.out, "Bye.")
			g.log.Info("game session aborted", "session", session.ID(), "tries", session.Tries())
			return nil

		case "h", "help", "?":
			g.printHelp()
			continue

		case "s", "stats":
			fmt.Fprint(g.out, session.Hints())
			continue

		case "r", "restart":
			session.Abort()
			session = game.NewSession(g.gen)
			g.log.Info("game session restarted", "session", session.ID())
			fmt.Fprintln(g.out, "New game started.")
			continue
		}

		if !looksLikeGuess(line) {
			fmt.Fprintf(g.out, "Unknown command: %q. Enter 'h' for help\n", line)
			continue
		}

		fb, err := session.Offer(line)
		if err != nil {
			// Recoverable: the turn was not consumed.
			fmt.Fprintln(g.out, err)
			continue
		}

		if fb.Won() {
			fmt.Fprintf(g.out, "You won in %d %s!\n",
				session.Tries(), tries(session.Tries()))
			g.log.Info("game session won", "session", session.ID(), "tries", session.Tries())
			return nil
		}
		fmt.Fprintln(g.out, fb)
	}
}

func (g *GameREPL) printHelp() {
	fmt.Fprintln(g.out, "r, restart    - Restart game")
	fmt.Fprintln(g.out, "q, quit, exit - Quit game")
	fmt.Fprintln(g.out, "h, help, ?    - This text")
	fmt.Fprintln(g.out, "s, stats      - Check out some hints on potential digit positions")
	fmt.Fprintln(g.out, "<NNNN>        - Enter four unique digits to guess the number and win")
}

func tries(n int) string {
	if n == 1 {
		return "try"
	}
	return "tries"
}
