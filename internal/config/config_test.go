package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func validConfig() Config {
	return Config{
		LessonsDir: "./lessons",
		Direction:  "random",
		Threshold:  67,
		UI:         "auto",
	}
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexiquiz.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfigFile(t, "{}\n")
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LessonsDir != DefaultLessonsDir || cfg.Threshold != 67 || cfg.Direction != "random" || cfg.UI != "auto" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.NoShuffle || cfg.NoColor || cfg.Seed != 0 {
		t.Fatalf("unexpected boolean defaults: %+v", cfg)
	}
}

// TestLoadPrecedence verifies flag overrides beat env, which beats the file.
func TestLoadPrecedence(t *testing.T) {
	path := writeConfigFile(t, "lessons_dir: from-file\nthreshold: 70\ndirection: reverse\nui: plain\n")
	t.Setenv("LEXIQUIZ_THRESHOLD", "80")
	t.Setenv("LEXIQUIZ_DIRECTION", "forward")

	cfg, err := Load(path, map[string]any{"direction": "random"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LessonsDir != "from-file" {
		t.Fatalf("expected file lessons dir, got %q", cfg.LessonsDir)
	}
	if cfg.Threshold != 80 {
		t.Fatalf("expected env threshold 80, got %d", cfg.Threshold)
	}
	if cfg.Direction != "random" {
		t.Fatalf("expected override direction, got %q", cfg.Direction)
	}
	if cfg.UI != "plain" {
		t.Fatalf("expected file ui, got %q", cfg.UI)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), nil)
	if err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := writeConfigFile(t, "threshold: 150\nui: fancy\n")
	_, err := Load(path, map[string]any{"direction": "sideways"})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(validationErr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", validationErr.Issues)
	}
	for _, field := range []string{"threshold", "ui", "direction"} {
		if !strings.Contains(err.Error(), field) {
			t.Fatalf("expected %s in error, got %q", field, err.Error())
		}
	}
}

func TestNormalize(t *testing.T) {
	cfg := Config{LessonsDir: " lessons ", Direction: " Forward ", UI: "", Lesson: " animals "}
	Normalize(&cfg)
	if cfg.LessonsDir != "lessons" || cfg.Direction != "forward" || cfg.UI != DefaultUIMode || cfg.Lesson != "animals" {
		t.Fatalf("unexpected normalized config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing lessons dir", mutate: func(c *Config) { c.LessonsDir = "" }, wantErr: "lessons_dir"},
		{name: "zero threshold", mutate: func(c *Config) { c.Threshold = 0 }, wantErr: "threshold"},
		{name: "lesson path", mutate: func(c *Config) { c.Lesson = "../etc" }, wantErr: "lesson"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := Validate(&cfg)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected %s error, got %v", tc.wantErr, err)
			}
		})
	}
}
