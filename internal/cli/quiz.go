package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"go.uber.org/zap"

	"lexiquiz/internal/config"
	"lexiquiz/internal/lesson"
	"lexiquiz/internal/logging"
	"lexiquiz/internal/match"
	"lexiquiz/internal/quiz"
	"lexiquiz/internal/ui/picker"
	"lexiquiz/internal/ui/render"
)

// quizInput allows tests to override stdin for quiz prompts.
var quizInput io.Reader = os.Stdin

// pickLesson shows the live lesson picker.
var pickLesson = picker.Run

// runQuiz builds the handler for the quiz command.
func runQuiz(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newCommandFlags(cmd.Name, stderr)
		flags.addLessonsDir()
		flags.set.String("lesson", "", "Lesson id to practice without showing the menu")
		flags.set.String("direction", config.DefaultDirection, "Quiz direction: forward|reverse|random")
		flags.set.Int("threshold", match.DefaultThreshold, "Minimum similarity (1-100) accepted as a close call")
		flags.set.Uint64("seed", 0, "Seed for shuffling and direction (0 = random)")
		flags.set.Bool("no-shuffle", false, "Ask words in table order")
		flags.set.String("ui", config.DefaultUIMode, "Lesson menu: auto|live|plain")
		flags.set.Bool("no-color", false, "Disable colored output")
		flags.set.String("log", "", "Write debug logs to a file")
		if code, ok := flags.parse(cmd, args, stdout, stderr); !ok {
			return code
		}

		cfg, err := flags.load()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
			return ExitError
		}

		logger, flush, err := logging.New(cfg.LogPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to open log: %v\n", err)
			return ExitError
		}
		defer flush()

		decision, err := resolveUIMode(cfg.UI, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		noColor := !useColor(cfg.NoColor, stdout)

		rng := newRand(cfg.Seed)
		lessons, err := lesson.LoadAll(cfg.LessonsDir, lesson.LoadOptions{Rand: rng, KeepOrder: cfg.NoShuffle})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load lessons: %v\n", err)
			return ExitError
		}
		logger.Info("lessons loaded", zap.String("root", cfg.LessonsDir), zap.Int("count", len(lessons)))

		chosen, reader, err := chooseLesson(cfg, decision, lessons, stdout, noColor)
		if err != nil {
			fmt.Fprintf(stderr, "Lesson selection failed: %v\n", err)
			return ExitError
		}

		mode, err := quiz.ParseDirectionMode(cfg.Direction)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		summary, err := quiz.Run(context.Background(), chosen,
			&linePrompter{reader: reader, out: stdout, noColor: noColor},
			&consoleObserver{out: stdout, noColor: noColor},
			quiz.Options{
				Threshold: cfg.Threshold,
				Direction: mode,
				Rand:      rng,
				Logger:    logger,
			},
		)
		if err != nil {
			if errors.Is(err, quiz.ErrInputClosed) {
				fmt.Fprintln(stderr, "Quiz aborted: input closed")
			} else {
				fmt.Fprintf(stderr, "Quiz failed: %v\n", err)
			}
			return ExitError
		}
		if summary.Empty {
			fmt.Fprintln(stdout, render.NoQuestions(chosen.DisplayName(), noColor))
		}
		return ExitOK
	}
}

// chooseLesson resolves the lesson from --lesson, the live picker, or the
// numbered menu, and returns the reader the quiz should continue with.
func chooseLesson(cfg config.Config, decision uiModeDecision, lessons []*lesson.Lesson, stdout io.Writer, noColor bool) (*lesson.Lesson, *bufio.Reader, error) {
	if cfg.Lesson != "" {
		for _, l := range lessons {
			if l.ID == cfg.Lesson {
				return l, bufio.NewReader(quizInput), nil
			}
		}
		return nil, nil, fmt.Errorf("unknown lesson %q", cfg.Lesson)
	}

	if decision.useLive {
		index, err := pickLesson(lessons, picker.Options{NoColor: noColor, Input: quizInput, Output: stdout})
		if err != nil {
			return nil, nil, err
		}
		return lessons[index], bufio.NewReader(quizInput), nil
	}

	reader := bufio.NewReader(quizInput)
	fmt.Fprintln(stdout, render.LessonMenu(lessons, noColor))
	choice, err := promptChoice(reader, stdout, "Which lesson do you want to practice?", len(lessons))
	if err != nil {
		return nil, nil, err
	}
	return lessons[choice-1], reader, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
