package mask

import (
	"sort"
	"strconv"
	"strings"
)

// Notation defines a custom character class usable inside a valuable
// segment. Notation is an immutable value type.
type Notation struct {
	// Symbol is the character that names the class inside [ ] segments.
	Symbol rune
	// Characters is the set of runes the class accepts. The first rune
	// doubles as the class's placeholder character.
	Characters string
	// Optional marks occurrences of the symbol as optional positions.
	Optional bool
}

// Contains reports whether r belongs to the notation's character set.
func (n Notation) Contains(r rune) bool {
	return strings.ContainsRune(n.Characters, r)
}

// Built-in valuable-segment symbols. A notation may not redefine these.
const (
	symDigit          = '0'
	symDigitOptional  = '9'
	symLetter         = 'A'
	symLetterOptional = 'a'
	symAny            = '_'
	symAnyOptional    = '-'
)

func isBuiltinSymbol(r rune) bool {
	switch r {
	case symDigit, symDigitOptional, symLetter, symLetterOptional, symAny, symAnyOptional:
		return true
	}
	return false
}

func findNotation(notations []Notation, symbol rune) (Notation, bool) {
	for _, n := range notations {
		if n.Symbol == symbol {
			return n, true
		}
	}
	return Notation{}, false
}

// checkNotations rejects symbols that collide with built-ins or with
// each other. Order of declaration does not matter.
func checkNotations(format string, notations []Notation) error {
	seen := make(map[rune]bool, len(notations))
	for _, n := range notations {
		if isBuiltinSymbol(n.Symbol) || seen[n.Symbol] {
			return &FormatError{
				Kind:   KindDuplicateNotation,
				Format: format,
				Pos:    -1,
				Symbol: n.Symbol,
			}
		}
		seen[n.Symbol] = true
	}
	return nil
}

// notationKey renders a canonical representation of a notation set so
// that declaration order does not split the mask cache.
func notationKey(notations []Notation) string {
	if len(notations) == 0 {
		return ""
	}
	sorted := make([]Notation, len(notations))
	copy(sorted, notations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Symbol < sorted[j].Symbol })

	var b strings.Builder
	for _, n := range sorted {
		b.WriteRune(n.Symbol)
		b.WriteByte(0x1f)
		b.WriteString(n.Characters)
		b.WriteByte(0x1f)
		b.WriteString(strconv.FormatBool(n.Optional))
		b.WriteByte(0x1e)
	}
	return b.String()
}
