package symbol

import "strings"

func runeToDisplay(r rune) rune {
	switch r {
	case W:
		return DisplayW
	case K:
		return DisplayK
	case C:
		return DisplayC
	case N:
		return DisplayN
	default:
		return 0
	}
}

func runeFromDisplay(r rune) rune {
	switch r {
	case DisplayW:
		return W
	case DisplayK:
		return K
	case DisplayC:
		return C
	case DisplayN:
		return N
	default:
		return 0
	}
}

// Display converts s to its display form. Runes outside the internal
// alphabet map to U+0000.
func (s Symbols) Display() string {
	var b strings.Builder
	b.Grow(len(s) * 3) // display runes are 3 bytes in UTF-8
	for _, r := range s {
		b.WriteRune(runeToDisplay(r))
	}

	return b.String()
}

// FromDisplay is the inverse of Display. Runes outside the display
// alphabet map to U+0000.
func FromDisplay(s string) Symbols {
	var b strings.Builder
	b.Grow(len(s) / 3)
	for _, r := range s {
		b.WriteRune(runeFromDisplay(r))
	}

	return Symbols(b.String())
}
