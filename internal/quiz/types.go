package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexiquiz/internal/lesson"
	"lexiquiz/internal/match"
)

// ErrInputClosed indicates the user's input ended while an answer was required.
var ErrInputClosed = errors.New("input closed")

// Question is one prompt shown to the user.
type Question struct {
	Index int
	Total int
	Key   string
	// Label names the language or side the answer is expected in.
	Label      string
	Candidates []string
}

// Prompter collects answers from the user.
type Prompter interface {
	Answer(ctx context.Context, question Question) (string, error)
	ConfirmRetry(ctx context.Context, remaining int) (bool, error)
}

// Observer receives quiz progress.
type Observer interface {
	AnswerChecked(question Question, result match.Result)
	PassFinished(report PassReport)
}

// PassReport summarizes one pass over the working set.
type PassReport struct {
	Pass      int
	Asked     int
	Good      int
	Close     int
	Incorrect int
	Remaining int
}

// Correct returns good answers plus close calls.
func (r PassReport) Correct() int {
	return r.Good + r.Close
}

// Percent returns the share of correct answers. ok is false when nothing was asked.
func (r PassReport) Percent() (value float64, ok bool) {
	if r.Asked == 0 {
		return 0, false
	}
	return float64(r.Correct()) / float64(r.Asked) * 100, true
}

// Summary describes a finished session.
type Summary struct {
	SessionID string
	Direction lesson.Direction
	Passes    []PassReport
	// Completed is true when every key was eventually answered correctly.
	Completed bool
	// Empty is true when the lesson had nothing to ask.
	Empty bool
}

// DirectionMode selects how the quiz direction is chosen.
type DirectionMode string

const (
	DirectionRandom  DirectionMode = "random"
	DirectionForward DirectionMode = "forward"
	DirectionReverse DirectionMode = "reverse"
)

// ParseDirectionMode parses forward, reverse, or random. Empty means random.
func ParseDirectionMode(value string) (DirectionMode, error) {
	switch mode := DirectionMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return DirectionRandom, nil
	case DirectionRandom, DirectionForward, DirectionReverse:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid direction %q (expected forward|reverse|random)", value)
	}
}
