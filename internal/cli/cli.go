package cli

import (
	"fmt"
	"io"
	"strings"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches to a command. With no arguments, or with only flags, it
// starts a quiz.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return findCommand("quiz").Run(nil, stdout, stderr)
	}
	if isHelpArg(args[0]) {
		printUsage(stdout)
		return ExitOK
	}
	if strings.HasPrefix(args[0], "-") {
		return findCommand("quiz").Run(args, stdout, stderr)
	}

	cmd := findCommand(args[0])
	if cmd == nil {
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return ExitUsage
	}

	return cmd.Run(args[1:], stdout, stderr)
}

func findCommand(name string) *Command {
	for _, cmd := range commands {
		if cmd.Name == name {
			return cmd
		}
	}
	return nil
}

func isHelpArg(arg string) bool {
	switch arg {
	case "-h", "--help", "help":
		return true
	default:
		return false
	}
}

func wantsHelp(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  lexiquiz [command] [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nWithout a command, lexiquiz starts a quiz.")
	fmt.Fprintln(w, "Use \"lexiquiz <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

func command(name, summary string, usage []string, runner func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{
		Name:    name,
		Summary: summary,
		Usage:   usage,
	}
	cmd.Run = runner(cmd)
	return cmd
}

var commands = []*Command{
	command("quiz", "Pick a lesson and practice it", []string{
		"lexiquiz quiz [--lessons <dir>] [--lesson <id>] [--direction forward|reverse|random]",
		"              [--threshold <1-100>] [--seed <n>] [--no-shuffle] [--ui auto|live|plain]",
		"              [--no-color] [--log <path>] [--config <path>]",
	}, runQuiz),
	command("lessons", "List available lessons", []string{
		"lexiquiz lessons [--lessons <dir>] [--config <path>]",
	}, runLessons),
	command("validate", "Check that every lesson loads", []string{
		"lexiquiz validate [--lessons <dir>] [--config <path>]",
	}, runValidate),
}
