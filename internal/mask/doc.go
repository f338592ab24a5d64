// Package mask implements the masked text input engine: format
// compilation, mask application over edited text, and affinity-based
// selection among candidate masks.
//
// A format string describes the shape of the input:
//
//   - [ ... ] delimits a valuable segment. Characters matched here are
//     included in the extracted value. Inside a valuable segment each
//     symbol describes one position: '0' mandatory digit, '9' optional
//     digit, 'A' mandatory letter, 'a' optional letter, '_' mandatory
//     any character, '-' optional any character. Custom symbols are
//     resolved against the Notations supplied at compile time.
//   - { ... } delimits a literal segment. Characters appear verbatim in
//     the formatted output and are excluded from the extracted value.
//   - Characters outside any segment are literal as well.
//   - '\' escapes the next character inside literal segments and
//     outside segments, allowing delimiter characters to appear
//     literally.
//
// A US phone format looks like:
//
//	+1 ([000]) [000]-[0000]
//
// Compiling a format yields a Mask, an immutable chain of states walked
// by Apply:
//
//	m, err := mask.Compile("+1 ([000]) [000]-[0000]")
//	if err != nil {
//	    // malformed format: a configuration bug, fail fast
//	}
//	res := m.Apply(mask.EndCaretString("2025551234"), false)
//	// res.Formatted.Text == "+1 (202) 555-1234"
//	// res.Value == "2025551234"
//	// res.Complete == true
//
// Apply never fails: characters that do not conform to the format are
// dropped and input beyond the mask's capacity is truncated. Masking is
// a live-formatting aid, not a validator.
//
// When several layouts are plausible (e.g. domestic and international
// phone numbers), Pick scores each candidate with a Strategy and
// returns the best fit; the primary mask wins all ties.
//
// # Thread Safety
//
// A Mask is immutable after compilation and safe for concurrent use.
// Compiled masks are cached process-wide keyed by (format, notations);
// repeated compilation of the same format is a map lookup. CaretString
// and Result are immutable value types.
package mask
