package mask

import "unicode/utf8"

// Strategy scores how well a compiled mask explains edited text; higher
// is better. Strategies are deterministic, pure functions of their
// inputs and safe for concurrent use. A strategy is selected once per
// masking session, not per call.
type Strategy interface {
	Score(m *Mask, input CaretString) int
}

// WholeString scores a mask over the entire input: runes the mask
// accepts minus runes it has to drop or truncate. A mask that consumes
// every rune strictly outscores any mask that discards some. This is
// the default strategy.
type WholeString struct{}

// Score implements Strategy.
func (WholeString) Score(m *Mask, input CaretString) int {
	_, stats := m.run(input, false)
	total := utf8.RuneCountInString(input.Text)
	return stats.consumed - (total - stats.consumed)
}

// Prefix scores a mask by the length of the longest common rune prefix
// between the formatted output and the raw input, favoring masks whose
// leading literals mirror what the user actually typed.
type Prefix struct{}

// Score implements Strategy.
func (Prefix) Score(m *Mask, input CaretString) int {
	res := m.Apply(input, false)
	return commonPrefixLen(res.Formatted.Text, input.Text)
}

func commonPrefixLen(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n := 0
	for n < len(ar) && n < len(br) && ar[n] == br[n] {
		n++
	}
	return n
}
