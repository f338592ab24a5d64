package plugin

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/textmask/internal/mask"
	"github.com/dshills/textmask/internal/session"
)

const hexScript = `
return {
  { symbol = "h", characters = "0123456789abcdef", optional = false },
  { symbol = "s", characters = " -", optional = true },
}
`

func TestParseNotations(t *testing.T) {
	notations, err := ParseNotations(hexScript)
	if err != nil {
		t.Fatalf("ParseNotations failed: %v", err)
	}
	if len(notations) != 2 {
		t.Fatalf("expected 2 notations, got %d", len(notations))
	}

	hex := notations[0]
	if hex.Symbol != 'h' {
		t.Errorf("expected symbol 'h', got %q", hex.Symbol)
	}
	if hex.Characters != "0123456789abcdef" {
		t.Errorf("unexpected characters %q", hex.Characters)
	}
	if hex.Optional {
		t.Error("hex notation should be mandatory")
	}

	sep := notations[1]
	if sep.Symbol != 's' || !sep.Optional {
		t.Errorf("unexpected separator notation %+v", sep)
	}
}

func TestParseNotationsComputedCharacters(t *testing.T) {
	// Scripts can build character sets with the string library.
	script := `
local digits = ""
for i = 0, 9 do digits = digits .. tostring(i) end
return { { symbol = "d", characters = digits } }
`
	notations, err := ParseNotations(script)
	if err != nil {
		t.Fatalf("ParseNotations failed: %v", err)
	}
	if len(notations) != 1 || notations[0].Characters != "0123456789" {
		t.Errorf("unexpected notations %+v", notations)
	}
}

func TestParseNotationsNoReturn(t *testing.T) {
	_, err := ParseNotations(`local x = 1`)
	if !errors.Is(err, ErrNoResult) {
		t.Errorf("expected ErrNoResult, got %v", err)
	}
}

func TestParseNotationsBadEntry(t *testing.T) {
	_, err := ParseNotations(`return { "not a table" }`)
	if !errors.Is(err, ErrBadNotationTable) {
		t.Errorf("expected ErrBadNotationTable, got %v", err)
	}
}

func TestParseNotationsBadSymbol(t *testing.T) {
	_, err := ParseNotations(`return { { symbol = "hh", characters = "abc" } }`)
	if !errors.Is(err, ErrBadNotationTable) {
		t.Errorf("expected ErrBadNotationTable for multi-rune symbol, got %v", err)
	}

	_, err = ParseNotations(`return { { characters = "abc" } }`)
	if !errors.Is(err, ErrBadNotationTable) {
		t.Errorf("expected ErrBadNotationTable for missing symbol, got %v", err)
	}
}

func TestParseNotationsEmptyCharacters(t *testing.T) {
	_, err := ParseNotations(`return { { symbol = "h", characters = "" } }`)
	if !errors.Is(err, ErrBadNotationTable) {
		t.Errorf("expected ErrBadNotationTable for empty characters, got %v", err)
	}
}

func TestParseNotationsSyntaxError(t *testing.T) {
	if _, err := ParseNotations(`return {{{`); err == nil {
		t.Error("syntax errors should surface")
	}
}

func TestParseNotationsSandbox(t *testing.T) {
	// io and os are never opened; touching them must fail.
	if _, err := ParseNotations(`return { { symbol = io.read(), characters = "x" } }`); err == nil {
		t.Error("io should not be available to notation scripts")
	}
	if _, err := ParseNotations(`os.exit(1)`); err == nil {
		t.Error("os should not be available to notation scripts")
	}
}

func TestLoadNotationsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notations.lua")
	if err := os.WriteFile(path, []byte(hexScript), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	notations, err := LoadNotations(path)
	if err != nil {
		t.Fatalf("LoadNotations failed: %v", err)
	}
	if len(notations) != 2 {
		t.Fatalf("expected 2 notations, got %d", len(notations))
	}

	// Scripted notations drive a session end to end.
	s, err := session.New("[hh]:[hh]", session.WithNotations(notations...))
	if err != nil {
		t.Fatalf("session.New failed: %v", err)
	}
	res := s.Apply(mask.EndCaretString("cafe"), false)
	if res.Formatted.Text != "ca:fe" {
		t.Errorf("expected %q, got %q", "ca:fe", res.Formatted.Text)
	}
}

func TestLoadNotationsMissingFile(t *testing.T) {
	if _, err := LoadNotations(filepath.Join(t.TempDir(), "absent.lua")); err == nil {
		t.Error("LoadNotations should fail for a missing file")
	}
}
