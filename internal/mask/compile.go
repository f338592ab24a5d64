package mask

import "strings"

// Compile parses a format string plus custom notations into a Mask,
// consulting the process-wide cache first. A malformed format returns a
// *FormatError and never a partially constructed mask.
func Compile(format string, notations ...Notation) (*Mask, error) {
	key := format + "\x00" + notationKey(notations)
	if m := cache.get(key); m != nil {
		return m, nil
	}
	m, err := compile(format, notations)
	if err != nil {
		return nil, err
	}
	return cache.publish(key, m), nil
}

// MustCompile compiles a format and panics on error. Use only for
// known-valid formats in initialization code.
func MustCompile(format string, notations ...Notation) *Mask {
	m, err := Compile(format, notations...)
	if err != nil {
		panic("invalid mask format: " + format + ": " + err.Error())
	}
	return m
}

// compiler scan modes.
const (
	modeOutside = iota
	modeLiteral
	modeValuable
)

// compile performs the single left-to-right scan, building the state
// chain and accumulating the length counters and placeholder as it goes.
func compile(format string, notations []Notation) (*Mask, error) {
	if err := checkNotations(format, notations); err != nil {
		return nil, err
	}

	var (
		head        *state
		tail        = &head
		placeholder strings.Builder
		m           = &Mask{}
	)

	appendState := func(s *state) {
		*tail = s
		tail = &s.next

		m.totalTextLength++
		switch s.kind {
		case stateLiteral:
			placeholder.WriteRune(s.char)
		case stateMandatory:
			m.totalValueLength++
			m.acceptableValueLength++
			m.acceptableTextLength = m.totalTextLength
			placeholder.WriteRune(s.class.hint)
		case stateOptional:
			m.totalValueLength++
			placeholder.WriteRune(s.class.hint)
		}
	}

	appendLiteral := func(r rune) {
		appendState(&state{kind: stateLiteral, char: r})
	}

	appendSymbol := func(pos int, r rune) error {
		switch r {
		case symDigit:
			appendState(&state{kind: stateMandatory, class: digitClass})
		case symDigitOptional:
			appendState(&state{kind: stateOptional, class: digitClass})
		case symLetter:
			appendState(&state{kind: stateMandatory, class: letterClass})
		case symLetterOptional:
			appendState(&state{kind: stateOptional, class: letterClass})
		case symAny:
			appendState(&state{kind: stateMandatory, class: anyClass})
		case symAnyOptional:
			appendState(&state{kind: stateOptional, class: anyClass})
		default:
			n, ok := findNotation(notations, r)
			if !ok {
				return &FormatError{Kind: KindUnknownSymbol, Format: format, Pos: pos, Symbol: r}
			}
			kind := stateMandatory
			if n.Optional {
				kind = stateOptional
			}
			appendState(&state{kind: kind, class: customClass(n)})
		}
		return nil
	}

	unbalanced := func(pos int) error {
		return &FormatError{Kind: KindUnbalancedDelimiters, Format: format, Pos: pos}
	}

	mode := modeOutside
	escaped := false
	for pos, r := range []rune(format) {
		if escaped {
			appendLiteral(r)
			escaped = false
			continue
		}

		switch mode {
		case modeOutside:
			switch r {
			case '\\':
				escaped = true
			case '[':
				mode = modeValuable
			case '{':
				mode = modeLiteral
			case ']', '}':
				return nil, unbalanced(pos)
			default:
				appendLiteral(r)
			}
		case modeLiteral:
			switch r {
			case '\\':
				escaped = true
			case '}':
				mode = modeOutside
			case '{':
				return nil, unbalanced(pos)
			default:
				appendLiteral(r)
			}
		case modeValuable:
			switch r {
			case ']':
				mode = modeOutside
			case '[', '{', '}', '\\':
				return nil, unbalanced(pos)
			default:
				if err := appendSymbol(pos, r); err != nil {
					return nil, err
				}
			}
		}
	}
	if escaped || mode != modeOutside {
		return nil, unbalanced(len([]rune(format)))
	}

	*tail = &state{kind: stateEnd}
	m.head = head
	m.placeholder = placeholder.String()
	return m, nil
}
