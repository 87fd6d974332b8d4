package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"lexiquiz/internal/lesson"
	"lexiquiz/internal/match"
)

// Options configures a quiz session.
type Options struct {
	// Threshold is the minimum similarity for a close call.
	Threshold int
	Direction DirectionMode
	// Rand picks the direction in random mode. Nil uses a randomly seeded source.
	Rand   *rand.Rand
	Logger *zap.Logger
}

// Run quizzes the user on one direction of l until every key is answered
// correctly or the user declines to retry. l is never modified.
func Run(ctx context.Context, l *lesson.Lesson, prompter Prompter, observer Observer, opts Options) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Threshold <= 0 {
		opts.Threshold = match.DefaultThreshold
	}
	direction, err := resolveDirection(opts)
	if err != nil {
		return Summary{}, err
	}
	view := l.View(direction)
	summary := Summary{
		SessionID: uuid.NewString(),
		Direction: direction,
	}
	logger = logger.With(
		zap.String("session", summary.SessionID),
		zap.String("lesson", l.ID),
		zap.Stringer("direction", direction),
	)

	set := newWorkingSet(view.Mapping)
	if set.len() == 0 {
		logger.Info("lesson has no questions")
		summary.Empty = true
		return summary, nil
	}
	logger.Info("quiz started", zap.Int("keys", set.len()), zap.Int("threshold", opts.Threshold))

	for pass := 1; ; pass++ {
		report, err := runPass(ctx, pass, set, view.AnswerLabel, prompter, observer, opts.Threshold, logger)
		if err != nil {
			return summary, err
		}
		summary.Passes = append(summary.Passes, report)
		observer.PassFinished(report)
		logger.Info("pass finished",
			zap.Int("pass", report.Pass),
			zap.Int("asked", report.Asked),
			zap.Int("good", report.Good),
			zap.Int("close", report.Close),
			zap.Int("remaining", report.Remaining),
		)

		if set.len() == 0 {
			summary.Completed = true
			return summary, nil
		}
		retry, err := prompter.ConfirmRetry(ctx, set.len())
		if err != nil {
			return summary, fmt.Errorf("confirm retry: %w", err)
		}
		if !retry {
			logger.Info("retry declined", zap.Int("remaining", set.len()))
			return summary, nil
		}
	}
}

// runPass asks every key in the set once and removes the solved keys afterwards.
func runPass(ctx context.Context, pass int, set *workingSet, label string, prompter Prompter, observer Observer, threshold int, logger *zap.Logger) (PassReport, error) {
	keys := set.snapshot()
	report := PassReport{Pass: pass, Asked: len(keys)}
	solved := make([]string, 0, len(keys))
	for i, key := range keys {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		question := Question{
			Index:      i + 1,
			Total:      len(keys),
			Key:        key,
			Label:      label,
			Candidates: slices.Clone(set.answers[key]),
		}
		answer, err := prompter.Answer(ctx, question)
		if err != nil {
			return report, fmt.Errorf("answer %q: %w", key, err)
		}
		result := match.Classify(answer, set.answers[key], threshold)
		switch result.Verdict {
		case match.Exact:
			report.Good++
		case match.Close:
			report.Close++
		default:
			report.Incorrect++
		}
		if result.Verdict.Correct() {
			solved = append(solved, key)
		}
		logger.Debug("answer checked",
			zap.String("key", key),
			zap.Stringer("verdict", result.Verdict),
			zap.Int("score", result.Score),
		)
		observer.AnswerChecked(question, result)
	}
	set.remove(solved)
	report.Remaining = set.len()
	return report, nil
}

func resolveDirection(opts Options) (lesson.Direction, error) {
	mode := opts.Direction
	if mode == "" {
		mode = DirectionRandom
	}
	if mode != DirectionRandom {
		return lesson.ParseDirection(string(mode))
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if rng.IntN(2) == 0 {
		return lesson.Forward, nil
	}
	return lesson.Reverse, nil
}
