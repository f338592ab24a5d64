package mask

// applyStats records what one application pass consumed. The affinity
// strategies read it to rank candidate masks.
type applyStats struct {
	consumed int // input runes matched into the output
	dropped  int // input runes discarded as non-conforming
	valuable int // consumed runes that entered the extracted value
}

// Apply runs the mask over edited text and returns the formatted text
// with a relocated caret, the extracted value, and completeness.
//
// Literal states are always synthesized at their position whether or not
// the input supplies them. Input runes that do not conform to the
// current valuable state are dropped, and input beyond the mask's
// capacity is truncated; Apply never fails. When autocomplete is true,
// any literal run remaining after the input is exhausted is appended to
// the output, so an empty input yields the mask's leading literals.
func (m *Mask) Apply(input CaretString, autocomplete bool) Result {
	res, _ := m.run(input, autocomplete)
	return res
}

// run is the single-pass core: an input cursor i and a state cursor s
// advance together while output, value and caret are accumulated.
func (m *Mask) run(input CaretString, autocomplete bool) (Result, applyStats) {
	in := []rune(input.Text)
	caret := input.CaretIndex
	if caret < 0 {
		caret = 0
	}
	if caret > len(in) {
		caret = len(in)
	}

	var (
		out      = make([]rune, 0, m.totalTextLength)
		value    = make([]rune, 0, m.totalValueLength)
		stats    applyStats
		newCaret = -1
	)

	s := m.head
	i := 0
	for s.kind != stateEnd && i < len(in) {
		// The caret lands where the scan first reaches its input index.
		if newCaret < 0 && i == caret {
			newCaret = len(out)
		}

		r := in[i]
		switch s.kind {
		case stateLiteral:
			if r == s.char {
				out = append(out, r)
				stats.consumed++
				i++
				s = s.next
			} else {
				// Synthesize the literal; the input rune stays pending.
				out = append(out, s.char)
				s = s.next
			}
		default:
			if s.class.accepts(r) {
				out = append(out, r)
				value = append(value, r)
				stats.consumed++
				stats.valuable++
				i++
				s = s.next
			} else {
				stats.dropped++
				i++
			}
		}
	}

	if autocomplete {
		for s.kind == stateLiteral {
			out = append(out, s.char)
			s = s.next
		}
	}

	if newCaret < 0 {
		newCaret = len(out)
	}

	res := Result{
		Formatted: CaretString{Text: string(out), CaretIndex: newCaret},
		Value:     string(value),
		Complete:  stats.valuable >= m.acceptableValueLength,
	}
	return res, stats
}
