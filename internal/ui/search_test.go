package ui

import "testing"

func TestSearchQueryEditing(t *testing.T) {
	s := NewSearchState()

	for _, ch := range "hello" {
		s.InsertChar(ch)
	}
	if s.Query() != "hello" {
		t.Errorf("query = %q, want %q", s.Query(), "hello")
	}

	s.DeleteChar()
	if s.Query() != "hell" {
		t.Errorf("after backspace query = %q, want %q", s.Query(), "hell")
	}

	s.MoveCursorStart()
	s.InsertChar('s')
	if s.Query() != "shell" {
		t.Errorf("after insert at start query = %q, want %q", s.Query(), "shell")
	}

	s.MoveCursorEnd()
	if s.CursorPos() != len("shell") {
		t.Errorf("cursor = %d, want %d", s.CursorPos(), len("shell"))
	}

	s.Clear()
	if s.Query() != "" || s.CursorPos() != 0 {
		t.Errorf("clear left state %q at %d", s.Query(), s.CursorPos())
	}
}

func TestSearchDeleteWord(t *testing.T) {
	s := NewSearchState()
	for _, ch := range "two words" {
		s.InsertChar(ch)
	}
	s.DeleteWord()
	if s.Query() != "two " {
		t.Errorf("after Ctrl+W query = %q, want %q", s.Query(), "two ")
	}
}

func TestSearchDeleteToEnd(t *testing.T) {
	s := NewSearchState()
	for _, ch := range "abcdef" {
		s.InsertChar(ch)
	}
	s.MoveCursorStart()
	s.MoveCursorRight()
	s.MoveCursorRight()
	s.MoveCursorRight()
	s.DeleteToEnd()
	if s.Query() != "abc" {
		t.Errorf("after Ctrl+K query = %q, want %q", s.Query(), "abc")
	}
}

func TestMatchLine(t *testing.T) {
	s := NewSearchState()
	s.SetMinScore(ScoreThresholdNone)
	for _, ch := range "conv" {
		s.InsertChar(ch)
	}

	ok, result := s.MatchLine("the converter walks each line")
	if !ok {
		t.Fatal("expected a match")
	}
	if result.Score <= 0 {
		t.Errorf("score = %d, want > 0", result.Score)
	}
	if len(result.Positions) == 0 {
		t.Error("expected highlight positions")
	}

	if ok, _ := s.MatchLine("zzz"); ok {
		t.Error("matched a line with none of the query characters")
	}
}

func TestMatchLineEmptyQueryMatchesAll(t *testing.T) {
	s := NewSearchState()
	if ok, _ := s.MatchLine("anything"); !ok {
		t.Error("empty query should match every line")
	}
}

func TestMatchLineThreshold(t *testing.T) {
	s := NewSearchState()
	for _, ch := range "xq" {
		s.InsertChar(ch)
	}

	// A scattered low-quality match passes with no threshold and is
	// rejected by a strict one.
	line := "x lorem ipsum dolor sit q"
	s.SetMinScore(ScoreThresholdNone)
	okLoose, _ := s.MatchLine(line)
	s.SetMinScore(ScoreThresholdStrict)
	okStrict, _ := s.MatchLine(line)

	if !okLoose {
		t.Error("threshold-free search should accept any positive match")
	}
	if okStrict {
		t.Error("strict threshold should reject a scattered match")
	}
}

func TestMatchLineCaseSensitivity(t *testing.T) {
	s := NewSearchState()
	s.SetMinScore(ScoreThresholdNone)
	for _, ch := range "TITLE" {
		s.InsertChar(ch)
	}

	if ok, _ := s.MatchLine("title"); !ok {
		t.Error("case-insensitive search should match across case")
	}

	s.SetCaseSensitive(true)
	if ok, _ := s.MatchLine("title"); ok {
		t.Error("case-sensitive search should not match across case")
	}
}
