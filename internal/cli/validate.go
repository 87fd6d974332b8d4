package cli

import (
	"fmt"
	"io"

	"lexiquiz/internal/lesson"
)

// runValidate builds the handler for the validate command. Unlike the quiz,
// it loads every lesson and reports all failures.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
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

		ids, err := lesson.Discover(cfg.LessonsDir)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if len(ids) == 0 {
			fmt.Fprintf(stderr, "Validation failed:\n%v in %s\n", lesson.ErrNoLessons, cfg.LessonsDir)
			return ExitError
		}

		var failures []error
		pairs := 0
		for _, id := range ids {
			loaded, err := lesson.Load(cfg.LessonsDir, id, lesson.LoadOptions{KeepOrder: true})
			if err != nil {
				failures = append(failures, err)
				continue
			}
			pairs += loaded.Questions()
			if loaded.Questions() == 0 {
				fmt.Fprintf(stderr, "Warning: lesson %q has no word pairs\n", id)
			}
		}
		if len(failures) > 0 {
			fmt.Fprintln(stderr, "Validation failed:")
			for _, failure := range failures {
				fmt.Fprintf(stderr, "  %v\n", failure)
			}
			return ExitError
		}

		fmt.Fprintf(stdout, "Lessons OK: %d lessons, %d pairs\n", len(ids), pairs)
		return ExitOK
	}
}
