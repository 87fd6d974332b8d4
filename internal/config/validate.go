package config

import (
	"fmt"
	"strings"

	"lexiquiz/internal/quiz"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Normalize trims string settings and lowercases enumerations.
func Normalize(cfg *Config) {
	cfg.LessonsDir = strings.TrimSpace(cfg.LessonsDir)
	cfg.Lesson = strings.TrimSpace(cfg.Lesson)
	cfg.Direction = strings.ToLower(strings.TrimSpace(cfg.Direction))
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	cfg.LogPath = strings.TrimSpace(cfg.LogPath)
	if cfg.Direction == "" {
		cfg.Direction = DefaultDirection
	}
	if cfg.UI == "" {
		cfg.UI = DefaultUIMode
	}
}

// Validate checks settings for correctness.
func Validate(cfg *Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.LessonsDir == "" {
		add("lessons_dir", "is required")
	}
	if cfg.Threshold < 1 || cfg.Threshold > 100 {
		add("threshold", fmt.Sprintf("must be between 1 and 100, got %d", cfg.Threshold))
	}
	if _, err := quiz.ParseDirectionMode(cfg.Direction); err != nil {
		add("direction", fmt.Sprintf("unsupported value %q (expected forward|reverse|random)", cfg.Direction))
	}
	switch cfg.UI {
	case "auto", "live", "plain":
	default:
		add("ui", fmt.Sprintf("unsupported value %q (expected auto|live|plain)", cfg.UI))
	}
	if strings.ContainsAny(cfg.Lesson, `/\`) {
		add("lesson", "must be a directory name, not a path")
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
