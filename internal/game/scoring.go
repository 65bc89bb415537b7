package game

import "fmt"

// Feedback is the answer the secret holder gives for one guess.
// Invariant: 0 <= Bulls, 0 <= Cows, Bulls+Cows <= 4.
type Feedback struct {
	Bulls int
	Cows  int
}

// Won reports whether the feedback means the guess equals the secret.
func (f Feedback) Won() bool { return f.Bulls == 4 }

// String renders the feedback the way the secret holder would say it.
func (f Feedback) String() string {
	if f.Bulls == 0 && f.Cows == 0 {
		return "Nothing found"
	}
	return fmt.Sprintf("Found %d %s and %d %s",
		f.Cows, plural(f.Cows, "cow", "cows"),
		f.Bulls, plural(f.Bulls, "bull", "bulls"))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// Score counts bulls and cows for a guess against a secret.
//
// A bull is a positional match. Since both Numbers carry pairwise-distinct
// digits, cows are exactly the size of the digit-set intersection minus the
// bulls; no multiset bookkeeping is needed.
func Score(secret, guess Number) Feedback {
	var f Feedback
	for i := 0; i < 4; i++ {
		if secret[i] == guess[i] {
			f.Bulls++
		}
	}

	common := 0
	inSecret := secret.digitSet()
	for _, d := range guess {
		if inSecret[d] {
			common++
		}
	}
	f.Cows = common - f.Bulls
	return f
}
