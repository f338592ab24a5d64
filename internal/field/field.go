// Package field provides a single-line masked text input widget for
// tcell screens. It is the glue between raw key events and the masking
// engine: it owns the widget's text and caret, translates edits into
// engine input, chooses the autocomplete flag per edit kind, and pushes
// each Result back into its visible state.
package field

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/textmask/internal/mask"
	"github.com/dshills/textmask/internal/session"
)

// Listener receives extraction events after every edit.
type Listener func(complete bool, value string)

// Field is a masked input bound to one masking session.
// Field is not safe for concurrent use; drive it from the event loop
// goroutine that owns the screen.
type Field struct {
	session *session.Session
	label   string

	text  []rune
	caret int // rune offset into text

	value    string
	complete bool
	focused  bool

	listeners []Listener
}

// New creates an empty field bound to the given session.
func New(label string, s *session.Session) *Field {
	return &Field{session: s, label: label}
}

// Label returns the field's label.
func (f *Field) Label() string {
	return f.label
}

// Text returns the current formatted text.
func (f *Field) Text() string {
	return string(f.text)
}

// Value returns the extracted value after the last edit.
func (f *Field) Value() string {
	return f.value
}

// Complete reports whether every mandatory position is filled.
func (f *Field) Complete() bool {
	return f.complete
}

// Focused reports whether the field currently has focus.
func (f *Field) Focused() bool {
	return f.focused
}

// Subscribe registers a listener notified with (complete, value) after
// every edit.
func (f *Field) Subscribe(l Listener) {
	f.listeners = append(f.listeners, l)
}

// Focus gives the field focus. An empty field is prefilled with the
// mask's leading literals so the user types straight into the first
// valuable position.
func (f *Field) Focus() {
	f.focused = true
	if len(f.text) == 0 {
		f.applyEdit("", 0, true)
	}
}

// Blur removes focus.
func (f *Field) Blur() {
	f.focused = false
}

// HandleKey translates a key event into an edit. It returns false for
// keys the field does not consume.
func (f *Field) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		f.insert(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.backspace()
	case tcell.KeyDelete:
		f.deleteForward()
	case tcell.KeyLeft:
		f.moveCaret(f.caret - 1)
	case tcell.KeyRight:
		f.moveCaret(f.caret + 1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		f.moveCaret(0)
	case tcell.KeyEnd, tcell.KeyCtrlE:
		f.moveCaret(len(f.text))
	case tcell.KeyCtrlU:
		f.Clear()
	default:
		return false
	}
	return true
}

// Clear empties the field without autocompletion.
func (f *Field) Clear() {
	f.applyEdit("", 0, false)
}

func (f *Field) insert(r rune) {
	edited := make([]rune, 0, len(f.text)+1)
	edited = append(edited, f.text[:f.caret]...)
	edited = append(edited, r)
	edited = append(edited, f.text[f.caret:]...)
	// Forward typing autocompletes trailing literals.
	f.applyEdit(string(edited), f.caret+1, true)
}

func (f *Field) backspace() {
	if f.caret == 0 {
		return
	}
	edited := make([]rune, 0, len(f.text)-1)
	edited = append(edited, f.text[:f.caret-1]...)
	edited = append(edited, f.text[f.caret:]...)
	// Deletion never autocompletes, or the deleted literal would snap back.
	f.applyEdit(string(edited), f.caret-1, false)
}

func (f *Field) deleteForward() {
	if f.caret >= len(f.text) {
		return
	}
	edited := make([]rune, 0, len(f.text)-1)
	edited = append(edited, f.text[:f.caret]...)
	edited = append(edited, f.text[f.caret+1:]...)
	f.applyEdit(string(edited), f.caret, false)
}

func (f *Field) moveCaret(to int) {
	if to < 0 {
		to = 0
	}
	if to > len(f.text) {
		to = len(f.text)
	}
	f.caret = to
}

func (f *Field) applyEdit(text string, caret int, autocomplete bool) {
	res := f.session.Apply(mask.NewCaretString(text, caret), autocomplete)

	f.text = []rune(res.Formatted.Text)
	f.caret = res.Formatted.CaretIndex
	f.value = res.Value
	f.complete = res.Complete

	for _, l := range f.listeners {
		l(res.Complete, res.Value)
	}
}

// CaretCell returns the caret's screen column relative to the field
// origin, accounting for grapheme cluster widths.
func (f *Field) CaretCell() int {
	return uniseg.StringWidth(string(f.text[:f.caret]))
}

// Draw renders the field at (x, y): the typed text in style, then the
// untyped remainder of the placeholder as ghost text.
func (f *Field) Draw(screen tcell.Screen, x, y int, style, ghost tcell.Style) {
	col := x
	gr := uniseg.NewGraphemes(string(f.text))
	for gr.Next() {
		runes := gr.Runes()
		screen.SetContent(col, y, runes[0], runes[1:], style)
		col += gr.Width()
	}

	placeholder := []rune(f.session.Placeholder())
	if len(f.text) < len(placeholder) {
		for _, r := range placeholder[len(f.text):] {
			screen.SetContent(col, y, r, nil, ghost)
			col++
		}
	}

	if f.focused {
		screen.ShowCursor(x+f.CaretCell(), y)
	}
}
