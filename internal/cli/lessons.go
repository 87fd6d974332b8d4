package cli

import (
	"fmt"
	"io"

	"lexiquiz/internal/lesson"
	"lexiquiz/internal/ui/render"
)

// runLessons builds the handler for the lessons command.
func runLessons(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		flags := newCommandFlags(cmd.Name, stderr)
		flags.addLessonsDir()
		if code, ok := flags.parse(cmd, args, stdout, stderr); !ok {
			return code
		}
		cfg, err := flags.load()
		if err != nil {
			fmt.Fprintf(stderr, "Invalid configuration:\n%v\n", err)
			return ExitError
		}

		lessons, err := lesson.LoadAll(cfg.LessonsDir, lesson.LoadOptions{KeepOrder: true})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load lessons: %v\n", err)
			return ExitError
		}
		fmt.Fprintln(stdout, "Lessons:")
		fmt.Fprintln(stdout, render.LessonDetails(lessons, !useColor(cfg.NoColor, stdout)))
		return ExitOK
	}
}
