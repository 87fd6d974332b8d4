package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"lexiquiz/internal/config"
)

// configKeys maps flag names to config keys.
var configKeys = map[string]string{
	"lessons":    "lessons_dir",
	"lesson":     "lesson",
	"direction":  "direction",
	"threshold":  "threshold",
	"seed":       "seed",
	"no-shuffle": "no_shuffle",
	"ui":         "ui",
	"no-color":   "no_color",
	"log":        "log",
}

// commandFlags holds the flag set shared by every command.
type commandFlags struct {
	set        *flag.FlagSet
	configPath *string
}

func newCommandFlags(name string, stderr io.Writer) *commandFlags {
	set := flag.NewFlagSet(name, flag.ContinueOnError)
	set.SetOutput(stderr)
	return &commandFlags{
		set:        set,
		configPath: set.String("config", "", "Path to lexiquiz.yml (default: search ./ and the user config dir)"),
	}
}

func (f *commandFlags) addLessonsDir() {
	f.set.String("lessons", config.DefaultLessonsDir, "Lessons root directory")
}

// parse parses args and rejects positional arguments. It returns an exit
// code and false when the command should stop.
func (f *commandFlags) parse(cmd *Command, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := f.set.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if f.set.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(f.set.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// load resolves the config, letting only explicitly set flags override it.
func (f *commandFlags) load() (config.Config, error) {
	overrides := map[string]any{}
	f.set.Visit(func(fl *flag.Flag) {
		key, ok := configKeys[fl.Name]
		if !ok {
			return
		}
		if getter, ok := fl.Value.(flag.Getter); ok {
			overrides[key] = getter.Get()
		}
	})
	return config.Load(*f.configPath, overrides)
}
