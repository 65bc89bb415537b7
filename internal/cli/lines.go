// Package cli holds the line-oriented front ends: the interactive game and
// the assistant. All parsing of user input happens here; the game and
// solver packages only ever see validated values.
package cli

import (
	"bufio"
	"io"
	"strings"
)

// readLines pumps trimmed input lines into a channel and closes it when the
// stream ends. The goroutine stays blocked in Scan between lines; it is
// deliberately left to die with the process, since there is no way to
// interrupt a blocking read on stdin.
func readLines(r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			ch <- strings.TrimSpace(sc.Text())
		}
	}()
	return ch
}

// looksLikeGuess decides whether a non-command line should be routed to the
// number parser (and get a validation message) or rejected as an unknown
// command. Anything all-digits or exactly four characters long is treated
// as an attempted guess.
func looksLikeGuess(line string) bool {
	if len(line) == 4 {
		return true
	}
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			return false
		}
	}
	return len(line) > 0
}
