package mask

// Mask is a compiled format: an immutable automaton plus lengths derived
// at compile time. Every caller that compiles the same (format,
// notations) pair shares one Mask instance; it is safe for concurrent use.
type Mask struct {
	head        *state
	placeholder string

	acceptableTextLength  int
	totalTextLength       int
	acceptableValueLength int
	totalValueLength      int
}

// Placeholder returns the full formatted template: literal characters
// verbatim and one representative character per valuable position
// (digit '0', letter 'a', any '_', custom classes their first character).
func (m *Mask) Placeholder() string {
	return m.placeholder
}

// TotalTextLength returns the number of formatted-output positions.
func (m *Mask) TotalTextLength() int {
	return m.totalTextLength
}

// AcceptableTextLength returns the number of formatted-output positions
// up to and including the last mandatory one.
func (m *Mask) AcceptableTextLength() int {
	return m.acceptableTextLength
}

// TotalValueLength returns the number of valuable positions.
func (m *Mask) TotalValueLength() int {
	return m.totalValueLength
}

// AcceptableValueLength returns the number of mandatory valuable
// positions; an extracted value at least this long is complete.
func (m *Mask) AcceptableValueLength() int {
	return m.acceptableValueLength
}

// Result is the outcome of applying a mask to edited text. Result is a
// pure value, created fresh per Apply call and never mutated.
type Result struct {
	// Formatted is the masked text with the relocated caret.
	Formatted CaretString
	// Value is the extracted value: the consumed valuable characters in order.
	Value string
	// Complete reports whether every mandatory position has been filled.
	Complete bool
}
