// Package symbol defines the research alphabet and the random string
// generation primitive.
//
// A generated string is the four-symbol alphabet repeated n times and
// shuffled, so every symbol occurs exactly n times and the string has
// length 4n. The internal form (W K C N) is what patterns match against;
// the display form (わ く ち ん) is what results are reported in.
package symbol

import "math/rand/v2"

// Internal symbol runes.
const (
	W = 'W'
	K = 'K'
	C = 'C'
	N = 'N'
)

// Display symbol runes.
const (
	DisplayW = 'わ'
	DisplayK = 'く'
	DisplayC = 'ち'
	DisplayN = 'ん'
)

// Alphabet is the internal alphabet in canonical order.
var Alphabet = [4]rune{W, K, C, N}

// DisplayAlphabet is the display alphabet in canonical order.
var DisplayAlphabet = [4]rune{DisplayW, DisplayK, DisplayC, DisplayN}

// Symbols is one generated string over the internal alphabet.
type Symbols string

// Generate returns one random symbol string of shape n: the alphabet
// repeated n times and shuffled.
//
// rng must not be shared across goroutines; independent workers must use
// independent rand states.
func Generate(n int, rng *rand.Rand) Symbols {
	buf := make([]rune, 0, len(Alphabet)*n)
	for range n {
		buf = append(buf, Alphabet[:]...)
	}
	rng.Shuffle(len(buf), func(i, j int) {
		buf[i], buf[j] = buf[j], buf[i]
	})

	return Symbols(buf)
}

// Valid reports whether every rune of s belongs to the internal alphabet.
func (s Symbols) Valid() bool {
	for _, r := range s {
		switch r {
		case W, K, C, N:
		default:
			return false
		}
	}

	return true
}

// ValidDisplay reports whether every rune of s belongs to the display
// alphabet.
func ValidDisplay(s string) bool {
	for _, r := range s {
		switch r {
		case DisplayW, DisplayK, DisplayC, DisplayN:
		default:
			return false
		}
	}

	return true
}
