package mask

import "testing"

func TestWholeStringFullAcceptance(t *testing.T) {
	m := MustCompile("[0000000000]")
	score := WholeString{}.Score(m, EndCaretString("1234567890"))

	if score != 10 {
		t.Errorf("expected score 10 for full acceptance, got %d", score)
	}
}

func TestWholeStringPenalizesDrops(t *testing.T) {
	digits := MustCompile("[0000000000]")
	letters := MustCompile("[AAAAAAAAAA]")
	input := EndCaretString("123")

	accepting := WholeString{}.Score(digits, input)
	dropping := WholeString{}.Score(letters, input)

	if accepting <= dropping {
		t.Errorf("a mask accepting every rune must strictly outscore one that drops: %d vs %d",
			accepting, dropping)
	}
}

func TestWholeStringCountsLiteralMatches(t *testing.T) {
	m := MustCompile("+7 [000]")

	withPrefix := WholeString{}.Score(m, EndCaretString("+7 123"))
	bare := WholeString{}.Score(m, EndCaretString("123"))

	// "+7 123" is fully consumed (6); "123" is fully consumed too (3).
	if withPrefix != 6 {
		t.Errorf("expected score 6, got %d", withPrefix)
	}
	if bare != 3 {
		t.Errorf("expected score 3, got %d", bare)
	}
}

func TestWholeStringPenalizesTruncation(t *testing.T) {
	short := MustCompile("[00]")
	long := MustCompile("[00000]")
	input := EndCaretString("12345")

	longScore := WholeString{}.Score(long, input)
	shortScore := WholeString{}.Score(short, input)
	if longScore <= shortScore {
		t.Error("input overflowing a short mask should score below a mask with capacity")
	}
}

func TestPrefixScoresCommonPrefix(t *testing.T) {
	ru := MustCompile("+7 [000]")
	us := MustCompile("8 [000]")
	input := EndCaretString("+7 123")

	ruScore := Prefix{}.Score(ru, input)
	usScore := Prefix{}.Score(us, input)

	if ruScore != 6 {
		t.Errorf("expected full-prefix score 6, got %d", ruScore)
	}
	if usScore != 0 {
		t.Errorf("expected no common prefix, got %d", usScore)
	}
}

func TestStrategiesDeterministic(t *testing.T) {
	m := MustCompile(phoneFormat)
	input := NewCaretString("202x555", 4)

	strategies := []Strategy{WholeString{}, Prefix{}}
	for _, s := range strategies {
		first := s.Score(m, input)
		second := s.Score(m, input)
		if first != second {
			t.Errorf("%T: scoring the same pair twice diverged: %d vs %d", s, first, second)
		}
	}
}
