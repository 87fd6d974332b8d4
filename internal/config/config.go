package config

import "lexiquiz/internal/match"

const (
	// FileName is the config file name searched for when no path is given.
	FileName = "lexiquiz"
	// EnvPrefix prefixes environment variable overrides, e.g. LEXIQUIZ_THRESHOLD.
	EnvPrefix = "LEXIQUIZ"

	DefaultLessonsDir = "./lessons"
	DefaultDirection  = "random"
	DefaultUIMode     = "auto"
)

// Config holds settings for a quiz run.
type Config struct {
	LessonsDir string `mapstructure:"lessons_dir"` // root containing one directory per lesson
	Lesson     string `mapstructure:"lesson"`      // lesson id to start without the menu
	Direction  string `mapstructure:"direction"`   // forward, reverse, or random
	Threshold  int    `mapstructure:"threshold"`   // minimum similarity for a close call
	Seed       uint64 `mapstructure:"seed"`        // 0 picks a random seed
	NoShuffle  bool   `mapstructure:"no_shuffle"`  // keep table order
	UI         string `mapstructure:"ui"`          // auto, live, or plain
	NoColor    bool   `mapstructure:"no_color"`    // disable styling
	LogPath    string `mapstructure:"log"`         // debug log file
}

var defaults = map[string]any{
	"lessons_dir": DefaultLessonsDir,
	"lesson":      "",
	"direction":   DefaultDirection,
	"threshold":   match.DefaultThreshold,
	"seed":        0,
	"no_shuffle":  false,
	"ui":          DefaultUIMode,
	"no_color":    false,
	"log":         "",
}
