package session

import (
	"errors"
	"testing"

	"github.com/dshills/textmask/internal/mask"
)

func TestNewSession(t *testing.T) {
	s, err := New("+1 ([000]) [000]-[0000]")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if s.Placeholder() != "+1 (000) 000-0000" {
		t.Errorf("expected placeholder %q, got %q", "+1 (000) 000-0000", s.Placeholder())
	}
	if s.TotalTextLength() != 17 {
		t.Errorf("expected total text length 17, got %d", s.TotalTextLength())
	}
	if s.AcceptableValueLength() != 10 {
		t.Errorf("expected acceptable value length 10, got %d", s.AcceptableValueLength())
	}
}

func TestNewSessionFailsFast(t *testing.T) {
	s, err := New("[00")
	if err == nil {
		t.Fatal("New should fail on a malformed primary format")
	}
	if s != nil {
		t.Error("a failed New must not return a session")
	}
	if !errors.Is(err, mask.ErrUnbalancedDelimiters) {
		t.Errorf("expected ErrUnbalancedDelimiters, got %v", err)
	}
}

func TestNewSessionFailsOnBadAlternative(t *testing.T) {
	_, err := New("[000]", WithAlternatives("[000]", "[zz]"))
	if err == nil {
		t.Fatal("New should fail when any alternative is malformed")
	}
	if !errors.Is(err, mask.ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestSessionApply(t *testing.T) {
	s, err := New("[000]-[00]")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res := s.Apply(mask.EndCaretString("12345"), false)
	if res.Formatted.Text != "123-45" {
		t.Errorf("expected %q, got %q", "123-45", res.Formatted.Text)
	}
	if !res.Complete {
		t.Error("five digits should complete the mask")
	}
}

func TestSessionSwitchesToAlternative(t *testing.T) {
	s, err := New("8 ([000]) [000]-[0000]",
		WithAlternatives(`\+7 ([000]) [000]-[0000]`))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res := s.Apply(mask.EndCaretString("+79261234567"), false)
	if res.Formatted.Text != "+7 (926) 123-4567" {
		t.Errorf("expected the international layout, got %q", res.Formatted.Text)
	}
}

func TestSessionPrimaryWinsTies(t *testing.T) {
	s, err := New("[000]", WithAlternatives("[999]"))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res := s.Apply(mask.EndCaretString("12"), false)
	// Both masks consume both digits; the primary's mandatory positions
	// decide completeness, proving the primary ran.
	if res.Complete {
		t.Error("primary mask with three mandatory digits should not be complete at two")
	}
}

func TestSessionWithNotations(t *testing.T) {
	s, err := New("0x[hhhh]",
		WithNotations(mask.Notation{Symbol: 'h', Characters: "0123456789abcdef"}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res := s.Apply(mask.EndCaretString("beef"), false)
	if res.Formatted.Text != "0xbeef" {
		t.Errorf("expected %q, got %q", "0xbeef", res.Formatted.Text)
	}
	if res.Value != "beef" {
		t.Errorf("expected value %q, got %q", "beef", res.Value)
	}
}

func TestSessionWithStrategy(t *testing.T) {
	s, err := New("+7 [000]",
		WithAlternatives("8 [000]"),
		WithStrategy(mask.Prefix{}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res := s.Apply(mask.EndCaretString("+7 12"), false)
	if res.Formatted.Text != "+7 12" {
		t.Errorf("prefix strategy should keep the matching layout, got %q", res.Formatted.Text)
	}
}
