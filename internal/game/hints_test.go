package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHintTable_NoMatchesRulesDigitsOut(t *testing.T) {
	var tab HintTable
	tab.Observe(mustNumber(t, "1290"), Feedback{Bulls: 0, Cows: 0})

	for _, d := range []uint8{1, 2, 9, 0} {
		for pos := 0; pos < 4; pos++ {
			assert.Equal(t, HintNotHere, tab[d][pos], "digit %d pos %d", d, pos)
		}
	}
	for _, d := range []uint8{3, 4, 5, 6, 7, 8} {
		for pos := 0; pos < 4; pos++ {
			assert.Equal(t, HintUnknown, tab[d][pos], "digit %d pos %d", d, pos)
		}
	}
}

func TestHintTable_FullCoverageRulesOthersOut(t *testing.T) {
	var tab HintTable
	// All four secret digits are in the guess (0 bulls + 4 cows), so every
	// other digit is out entirely.
	tab.Observe(mustNumber(t, "7364"), Feedback{Bulls: 0, Cows: 4})

	for _, d := range []uint8{0, 1, 2, 5, 8, 9} {
		for pos := 0; pos < 4; pos++ {
			assert.Equal(t, HintNotHere, tab[d][pos], "digit %d pos %d", d, pos)
		}
	}
}

func TestHintTable_BullsMarkMaybe(t *testing.T) {
	var tab HintTable
	tab.Observe(mustNumber(t, "1234"), Feedback{Bulls: 1, Cows: 1})

	assert.Equal(t, HintMaybe, tab[1][0])
	assert.Equal(t, HintMaybe, tab[2][1])
	assert.Equal(t, HintMaybe, tab[3][2])
	assert.Equal(t, HintMaybe, tab[4][3])
}

func TestHintTable_CowsOnlyRulesGuessedPositionsOut(t *testing.T) {
	var tab HintTable
	tab.Observe(mustNumber(t, "7364"), Feedback{Bulls: 0, Cows: 4})

	assert.Equal(t, HintNotHere, tab[7][0])
	assert.Equal(t, HintNotHere, tab[3][1])
	assert.Equal(t, HintNotHere, tab[6][2])
	assert.Equal(t, HintNotHere, tab[4][3])
}

func TestHintTable_BullsOnlyDeducesExactPositions(t *testing.T) {
	var tab HintTable

	// Rule out three of the four guessed positions first.
	tab.Observe(mustNumber(t, "1234"), Feedback{Bulls: 0, Cows: 0}) // 1,2,3,4 out everywhere

	// Now a bulls-only observation where 1, 2 and 3 are already NotHere at
	// their guessed positions: the remaining digit must sit where guessed.
	tab.Observe(mustNumber(t, "1235"), Feedback{Bulls: 1, Cows: 0})

	assert.Equal(t, HintHere, tab[5][3])
	// The ruled-out digits stay ruled out.
	assert.Equal(t, HintNotHere, tab[1][0])
	assert.Equal(t, HintNotHere, tab[2][1])
	assert.Equal(t, HintNotHere, tab[3][2])
}

func TestHintTable_Render(t *testing.T) {
	var tab HintTable
	tab.Observe(mustNumber(t, "1290"), Feedback{Bulls: 0, Cows: 0})

	out := tab.Render()
	assert.Contains(t, out, "   1 2 3 4\n")
	assert.Contains(t, out, "0: - - - -")
	assert.Contains(t, out, "3:        ")
}
