package game

import (
	"errors"
	"fmt"
)

// Validation errors for user-entered numbers. The CLI matches on these to
// produce its one-line messages; nothing past the parse boundary ever sees
// a malformed Number.
var (
	ErrInvalidFormat  = errors.New("need exactly four digits")
	ErrNonDigit       = errors.New("only digits 0-9 are allowed")
	ErrDuplicateDigit = errors.New("digits must be unique")
)

// Number is a sequence of four pairwise-distinct decimal digits.
// A leading zero is allowed, so Number is not an int in disguise.
type Number [4]uint8

// ParseNumber validates and parses user input into a Number.
func ParseNumber(s string) (Number, error) {
	var n Number
	if len(s) != 4 {
		return Number{}, fmt.Errorf("%q: %w", s, ErrInvalidFormat)
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Number{}, fmt.Errorf("%q: %w", s, ErrNonDigit)
		}
		n[i] = c - '0'
	}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if n[i] == n[j] {
				return Number{}, fmt.Errorf("%q: %w", s, ErrDuplicateDigit)
			}
		}
	}
	return n, nil
}

func (n Number) String() string {
	b := [4]byte{n[0] + '0', n[1] + '0', n[2] + '0', n[3] + '0'}
	return string(b[:])
}

// Less orders Numbers by their four-digit string value, so "0123" < "1023".
func (n Number) Less(other Number) bool {
	for i := 0; i < 4; i++ {
		if n[i] != other[i] {
			return n[i] < other[i]
		}
	}
	return false
}

// digitSet reports which of the ten digits occur in n.
func (n Number) digitSet() (set [10]bool) {
	for _, d := range n {
		set[d] = true
	}
	return set
}

// Contains reports whether digit d occurs anywhere in n.
func (n Number) Contains(d uint8) bool {
	return n[0] == d || n[1] == d || n[2] == d || n[3] == d
}
