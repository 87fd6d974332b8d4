package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"lexiquiz/internal/lesson"
	"lexiquiz/internal/match"
	"lexiquiz/internal/quiz"
)

var (
	colorKey       = lipgloss.Color("220")
	colorCorrect   = lipgloss.Color("42")
	colorClose     = lipgloss.Color("214")
	colorIncorrect = lipgloss.Color("196")
	colorMuted     = lipgloss.Color("242")
)

// Question renders the prompt for a single question.
func Question(q quiz.Question, noColor bool) string {
	key := stylize("'"+q.Key+"'", noColor, lipgloss.NewStyle().Bold(true).Foreground(colorKey))
	return fmt.Sprintf("[%d/%d] What is %s in %s? ", q.Index, q.Total, key, q.Label)
}

// Verdict renders the feedback line for a checked answer.
func Verdict(q quiz.Question, result match.Result, noColor bool) string {
	switch result.Verdict {
	case match.Exact:
		return stylize(" ✓ Correct", noColor, lipgloss.NewStyle().Foreground(colorCorrect))
	case match.Close:
		line := fmt.Sprintf(" ~ Correct (%s)", result.Matched)
		return stylize(line, noColor, lipgloss.NewStyle().Foreground(colorClose))
	default:
		line := " ✗ Incorrect! Correct answers: " + strings.Join(q.Candidates, ", ")
		return stylize(line, noColor, lipgloss.NewStyle().Foreground(colorIncorrect))
	}
}

// PassReport renders the score block printed after each pass.
func PassReport(report quiz.PassReport, noColor bool) string {
	pct, ok := report.Percent()
	if !ok {
		return NoQuestions("this pass", noColor)
	}
	score := fmt.Sprintf("%d / %d", report.Correct(), report.Asked)
	result := "Your result: " + stylize(score, noColor, lipgloss.NewStyle().Bold(true)) + fmt.Sprintf(" (%.0f%%)", pct)
	closeCalls := stylize(fmt.Sprintf(" Close calls: %d", report.Close), noColor, lipgloss.NewStyle().Foreground(colorClose))
	return strings.Join([]string{"", result, closeCalls}, "\n")
}

// NoQuestions renders the message shown when there is nothing to ask.
func NoQuestions(name string, noColor bool) string {
	return stylize("No questions to ask in "+name+".", noColor, lipgloss.NewStyle().Foreground(colorMuted))
}

// LessonMenu renders the numbered lesson list.
func LessonMenu(lessons []*lesson.Lesson, noColor bool) string {
	lines := make([]string, 0, len(lessons)+1)
	lines = append(lines, stylize("Lessons:", noColor, lipgloss.NewStyle().Bold(true)))
	for i, l := range lessons {
		lines = append(lines, fmt.Sprintf("  %d: %s", i+1, l.DisplayName()))
	}
	return strings.Join(lines, "\n")
}

// LessonDetails renders one line per lesson with its labels and size.
func LessonDetails(lessons []*lesson.Lesson, noColor bool) string {
	lines := make([]string, 0, len(lessons))
	for i, l := range lessons {
		detail := fmt.Sprintf("(%s, %s -> %s, %d pairs)", l.ID, l.Meta.Left, l.Meta.Right, l.Questions())
		lines = append(lines, fmt.Sprintf("  %d: %s %s", i+1, l.DisplayName(), stylize(detail, noColor, lipgloss.NewStyle().Foreground(colorMuted))))
	}
	return strings.Join(lines, "\n")
}

// stylize applies optional styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
