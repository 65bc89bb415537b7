package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Generator draws secret Numbers from an injected random source, so tests
// can pin the sequence and the game can replay a seed from config.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator builds a Generator on top of src.
func NewGenerator(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// NewSeededGenerator builds a Generator for the given seed; seed 0 means
// "fresh entropy", everything else is a deterministic replay.
func NewSeededGenerator(seed uint64) *Generator {
	if seed == 0 {
		var b [16]byte
		_, _ = crand.Read(b[:])
		return NewGenerator(rand.NewPCG(
			binary.LittleEndian.Uint64(b[:8]),
			binary.LittleEndian.Uint64(b[8:]),
		))
	}
	return NewGenerator(rand.NewPCG(seed, seed))
}

// Generate draws a secret uniformly from the 5040 valid Numbers: a partial
// Fisher-Yates over the ten digits, keeping the first four.
func (g *Generator) Generate() Number {
	digits := [10]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	for i := 0; i < 4; i++ {
		j := i + g.rng.IntN(10-i)
		digits[i], digits[j] = digits[j], digits[i]
	}
	return Number{digits[0], digits[1], digits[2], digits[3]}
}
