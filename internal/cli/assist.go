package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"example.com/bnc-cli/internal/game"
	"example.com/bnc-cli/internal/solver"
)

// AssistREPL narrows down candidate secrets from observations the player
// types in. The prompt shows how many candidates are still alive.
type AssistREPL struct {
	log *slog.Logger
	in  io.Reader
	out io.Writer
}

func NewAssistREPL(log *slog.Logger, in io.Reader, out io.Writer) *AssistREPL {
	return &AssistREPL{log: log, in: in, out: out}
}

func (a *AssistREPL) Run(ctx context.Context) error {
	lines := readLines(a.in)

	analysis := solver.NewAnalysis()
	a.log.Info("analysis started", "analysis", analysis.ID(),
		"candidates", len(analysis.Candidates()))

	fmt.Fprintln(a.out, "Enter observations as GUESS BULLS COWS (e.g. '1234 1 1'), 'h' for help")

	for {
		fmt.Fprintf(a.out, "%d > ", len(analysis.Candidates()))

		var line string
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.out, "\nAborted.")
			return nil
		case line, ok = <-lines:
			if !ok {
				fmt.Fprintln(a.out, "\nInput closed, aborting.")
				return nil
			}
		}

		switch line {
		case "":
			continue

		case "q", "quit", "exit":
			fmt.Fprintln(a.out, "Bye.")
			return nil

		case "h", "help", "?":
			a.printHelp()
			continue

		case "p", "print":
			a.printCandidates(analysis)
			continue

		case "u", "undo":
			if !analysis.Drop() {
				fmt.Fprintln(a.out, "Nothing to undo")
				continue
			}
			fmt.Fprintf(a.out, "Dropped last observation, %d candidates remain\n",
				len(analysis.Candidates()))
			continue
		}

		obs, err := parseObservation(line)
		if err != nil {
			fmt.Fprintln(a.out, err)
			continue
		}

		if err := analysis.Add(obs); err != nil {
			if errors.Is(err, solver.ErrInconsistentHistory) {
				fmt.Fprintln(a.out, "Inconsistent history: no candidate matches this observation, check the entry (it was not recorded)")
				continue
			}
			return err
		}
		a.log.Info("observation recorded", "analysis", analysis.ID(),
			"guess", obs.Guess, "bulls", obs.Feedback.Bulls, "cows", obs.Feedback.Cows,
			"candidates", len(analysis.Candidates()))
		fmt.Fprintf(a.out, "%d candidates remain\n", len(analysis.Candidates()))
	}
}

func (a *AssistREPL) printCandidates(analysis *solver.Analysis) {
	for _, c := range analysis.Candidates() {
		fmt.Fprintln(a.out, c)
	}
	fmt.Fprintf(a.out, "%d candidates\n", len(analysis.Candidates()))
}

func (a *AssistREPL) printHelp() {
	fmt.Fprintln(a.out, "GUESS BULLS COWS - Record an observation, e.g. '1234 1 1'")
	fmt.Fprintln(a.out, "p, print         - Print remaining candidates, ascending")
	fmt.Fprintln(a.out, "u, undo          - Drop the last observation")
	fmt.Fprintln(a.out, "q, quit, exit    - Quit")
	fmt.Fprintln(a.out, "h, help, ?       - This text")
}

// parseObservation reads a "GUESS BULLS COWS" line.
func parseObservation(line string) (solver.Observation, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return solver.Observation{}, fmt.Errorf("want GUESS BULLS COWS, got %d fields", len(fields))
	}

	guess, err := game.ParseNumber(fields[0])
	if err != nil {
		return solver.Observation{}, err
	}

	bulls, err := parseCount(fields[1], "bulls")
	if err != nil {
		return solver.Observation{}, err
	}
	cows, err := parseCount(fields[2], "cows")
	if err != nil {
		return solver.Observation{}, err
	}
	if bulls+cows > 4 {
		return solver.Observation{}, fmt.Errorf("bulls+cows must not exceed 4, got %d", bulls+cows)
	}

	return solver.Observation{
		Guess:    guess,
		Feedback: game.Feedback{Bulls: bulls, Cows: cows},
	}, nil
}

func parseCount(s, what string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 4 {
		return 0, fmt.Errorf("%s must be a number between 0 and 4, got %q", what, s)
	}
	return n, nil
}
