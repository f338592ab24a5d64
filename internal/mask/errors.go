package mask

import (
	"errors"
	"fmt"
)

// Errors returned by format compilation.
var (
	// ErrUnbalancedDelimiters indicates an unterminated or stray segment delimiter.
	ErrUnbalancedDelimiters = errors.New("unbalanced segment delimiters")

	// ErrUnknownSymbol indicates a valuable-segment symbol with no built-in
	// class and no matching notation.
	ErrUnknownSymbol = errors.New("unknown character class symbol")

	// ErrDuplicateNotation indicates a notation symbol that collides with a
	// built-in symbol or another notation.
	ErrDuplicateNotation = errors.New("duplicate notation symbol")
)

// FormatErrorKind categorizes format compilation failures.
type FormatErrorKind uint8

const (
	// KindUnbalancedDelimiters indicates mismatched [ ] or { } delimiters.
	KindUnbalancedDelimiters FormatErrorKind = iota
	// KindUnknownSymbol indicates an unresolvable character class symbol.
	KindUnknownSymbol
	// KindDuplicateNotation indicates a notation symbol collision.
	KindDuplicateNotation
)

// String returns a human-readable name for the error kind.
func (k FormatErrorKind) String() string {
	switch k {
	case KindUnbalancedDelimiters:
		return "unbalanced_delimiters"
	case KindUnknownSymbol:
		return "unknown_symbol"
	case KindDuplicateNotation:
		return "duplicate_notation"
	default:
		return "unknown"
	}
}

// FormatError reports a malformed format string or notation set. It is
// raised only at compile time; a mask is never partially constructed.
type FormatError struct {
	// Kind categorizes the failure.
	Kind FormatErrorKind
	// Format is the format string being compiled.
	Format string
	// Pos is the rune offset into Format where the problem was found,
	// or -1 when the error is not positional.
	Pos int
	// Symbol is the offending symbol, or 0 when not applicable.
	Symbol rune
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	switch e.Kind {
	case KindUnknownSymbol:
		return fmt.Sprintf("format %q: unknown symbol %q at %d", e.Format, e.Symbol, e.Pos)
	case KindDuplicateNotation:
		return fmt.Sprintf("format %q: duplicate notation symbol %q", e.Format, e.Symbol)
	default:
		if e.Pos >= 0 {
			return fmt.Sprintf("format %q: unbalanced delimiters at %d", e.Format, e.Pos)
		}
		return fmt.Sprintf("format %q: unbalanced delimiters", e.Format)
	}
}

// Is implements error matching against the package sentinels.
func (e *FormatError) Is(target error) bool {
	switch e.Kind {
	case KindUnbalancedDelimiters:
		return target == ErrUnbalancedDelimiters
	case KindUnknownSymbol:
		return target == ErrUnknownSymbol
	case KindDuplicateNotation:
		return target == ErrDuplicateNotation
	default:
		return false
	}
}
