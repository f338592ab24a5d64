package mask

import "unicode/utf8"

// CaretString is a snapshot of a text widget's content plus the caret
// position after an edit. CaretIndex is a rune offset into Text.
// CaretString is an immutable value type.
type CaretString struct {
	Text       string
	CaretIndex int
}

// NewCaretString creates a CaretString with the caret clamped to the
// valid range [0, rune length of text].
func NewCaretString(text string, caret int) CaretString {
	if caret < 0 {
		caret = 0
	}
	if n := utf8.RuneCountInString(text); caret > n {
		caret = n
	}
	return CaretString{Text: text, CaretIndex: caret}
}

// EndCaretString creates a CaretString with the caret after the last rune.
func EndCaretString(text string) CaretString {
	return CaretString{Text: text, CaretIndex: utf8.RuneCountInString(text)}
}
