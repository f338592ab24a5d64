package mask

import "unicode"

// stateKind identifies the role of one node in a compiled chain.
type stateKind uint8

const (
	// stateLiteral emits a fixed character, excluded from the value.
	stateLiteral stateKind = iota
	// stateMandatory matches a character class; required for completeness.
	stateMandatory
	// stateOptional matches a character class; may be left unfilled.
	stateOptional
	// stateEnd terminates the chain.
	stateEnd
)

// String returns a human-readable name for the state kind.
func (k stateKind) String() string {
	switch k {
	case stateLiteral:
		return "literal"
	case stateMandatory:
		return "mandatory"
	case stateOptional:
		return "optional"
	case stateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// classKind identifies a character class.
type classKind uint8

const (
	classDigit classKind = iota
	classLetter
	classAny
	classCustom
)

// charClass is the set of runes a valuable state accepts, plus the
// representative rune used when rendering the placeholder.
type charClass struct {
	kind classKind
	set  string // classCustom only
	hint rune
}

func (c charClass) accepts(r rune) bool {
	switch c.kind {
	case classDigit:
		return unicode.IsDigit(r)
	case classLetter:
		return unicode.IsLetter(r)
	case classAny:
		return true
	default:
		for _, s := range c.set {
			if s == r {
				return true
			}
		}
		return false
	}
}

var (
	digitClass  = charClass{kind: classDigit, hint: '0'}
	letterClass = charClass{kind: classLetter, hint: 'a'}
	anyClass    = charClass{kind: classAny, hint: '_'}
)

func customClass(n Notation) charClass {
	hint := '_'
	for _, r := range n.Characters {
		hint = r
		break
	}
	return charClass{kind: classCustom, set: n.Characters, hint: hint}
}

// state is one node of the compiled automaton. The chain is a straight
// line: every non-end state owns exactly one successor, and states are
// never shared across masks.
type state struct {
	kind  stateKind
	char  rune      // stateLiteral only
	class charClass // stateMandatory and stateOptional only
	next  *state
}
