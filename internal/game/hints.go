package game

import "strings"

// Hint is what the player can deduce about one digit in one position
// without ever seeing the secret.
type Hint uint8

const (
	HintUnknown Hint = iota // nothing known yet
	HintMaybe               // digit could be at this position
	HintHere                // digit is definitely at this position
	HintNotHere             // digit is definitely not at this position
)

func (h Hint) glyph() byte {
	switch h {
	case HintMaybe:
		return '?'
	case HintHere:
		return '+'
	case HintNotHere:
		return '-'
	default:
		return ' '
	}
}

// HintTable accumulates positional deductions, one row per digit 0-9 and
// one column per position. Every deduction uses only the guess and its
// feedback, so the table mirrors what a player could keep on paper.
type HintTable [10][4]Hint

// Observe folds one scored guess into the table.
func (t *HintTable) Observe(guess Number, fb Feedback) {
	// No matches at all: none of the guessed digits is in the secret.
	if fb.Bulls == 0 && fb.Cows == 0 {
		for _, d := range guess {
			for pos := 0; pos < 4; pos++ {
				t[d][pos] = HintNotHere
			}
		}
	}

	// Every secret digit is covered by the guess, so every digit the
	// guess lacks is out entirely.
	if fb.Bulls+fb.Cows == 4 {
		for d := uint8(0); d < 10; d++ {
			if !guess.Contains(d) {
				for pos := 0; pos < 4; pos++ {
					t[d][pos] = HintNotHere
				}
			}
		}
	}

	// Some positional matches: any guessed digit might sit where it was
	// guessed, unless something stronger is already known.
	if fb.Bulls > 0 {
		for pos, d := range guess {
			if t[d][pos] == HintUnknown {
				t[d][pos] = HintMaybe
			}
		}
	}

	switch {
	case fb.Cows == 0 && fb.Bulls > 0:
		// Bulls only. If the digits already ruled out at their guessed
		// positions account for everything except the bulls, the rest
		// must be sitting exactly where they were guessed.
		ruledOut := 0
		for pos, d := range guess {
			if t[d][pos] == HintNotHere {
				ruledOut++
			}
		}
		if ruledOut+fb.Bulls == 4 {
			for pos, d := range guess {
				if t[d][pos] == HintUnknown || t[d][pos] == HintMaybe {
					t[d][pos] = HintHere
				}
			}
		}
	case fb.Cows > 0 && fb.Bulls == 0:
		// Cows only: no guessed digit is at its guessed position.
		for pos, d := range guess {
			if t[d][pos] == HintMaybe || t[d][pos] == HintUnknown {
				t[d][pos] = HintNotHere
			}
		}
	}
}

// Render draws the table as a grid, digits down and positions across.
func (t *HintTable) Render() string {
	var b strings.Builder
	b.WriteString("   1 2 3 4\n")
	for d := 0; d < 10; d++ {
		b.WriteByte(byte('0' + d))
		b.WriteString(": ")
		for pos := 0; pos < 4; pos++ {
			b.WriteByte(t[d][pos].glyph())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
