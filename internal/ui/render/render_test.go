package render

import (
	"strings"
	"testing"

	"lexiquiz/internal/lesson"
	"lexiquiz/internal/match"
	"lexiquiz/internal/quiz"
)

func TestQuestionPlain(t *testing.T) {
	q := quiz.Question{Index: 1, Total: 2, Key: "hond", Label: "English"}
	if got := Question(q, true); got != "[1/2] What is 'hond' in English? " {
		t.Fatalf("unexpected prompt %q", got)
	}
}

func TestVerdictPlain(t *testing.T) {
	q := quiz.Question{Key: "kat", Candidates: []string{"cat", "puss (informal)"}}
	cases := []struct {
		result match.Result
		want   string
	}{
		{match.Result{Verdict: match.Exact, Matched: "cat"}, " ✓ Correct"},
		{match.Result{Verdict: match.Close, Matched: "cat"}, " ~ Correct (cat)"},
		{match.Result{Verdict: match.Incorrect}, " ✗ Incorrect! Correct answers: cat, puss (informal)"},
	}
	for _, tc := range cases {
		if got := Verdict(q, tc.result, true); got != tc.want {
			t.Fatalf("verdict %s: expected %q, got %q", tc.result.Verdict, tc.want, got)
		}
	}
}

func TestPassReportPlain(t *testing.T) {
	got := PassReport(quiz.PassReport{Asked: 2, Good: 1, Close: 1}, true)
	if !strings.Contains(got, "Your result: 2 / 2 (100%)") {
		t.Fatalf("expected score line, got %q", got)
	}
	if !strings.Contains(got, "Close calls: 1") {
		t.Fatalf("expected close calls line, got %q", got)
	}
}

// TestPassReportEmpty verifies no percentage is rendered for an empty pass.
func TestPassReportEmpty(t *testing.T) {
	got := PassReport(quiz.PassReport{}, true)
	if strings.Contains(got, "%") {
		t.Fatalf("expected no percentage, got %q", got)
	}
	if !strings.Contains(got, "No questions") {
		t.Fatalf("expected no questions message, got %q", got)
	}
}

func TestLessonMenuPlain(t *testing.T) {
	lessons := []*lesson.Lesson{
		{ID: "a", Meta: lesson.Meta{Name: "Animals", Left: "Dutch", Right: "English"}},
		{ID: "colors", Meta: lesson.Meta{Left: "Dutch", Right: "English"}},
	}
	got := LessonMenu(lessons, true)
	want := "Lessons:\n  1: Animals\n  2: colors"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	details := LessonDetails(lessons, true)
	if !strings.Contains(details, "1: Animals (a, Dutch -> English, 0 pairs)") {
		t.Fatalf("unexpected details %q", details)
	}
}
