package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// New returns a logger writing to path, or a no-op logger when path is empty.
// The returned function flushes buffered entries.
func New(path string) (*zap.Logger, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logger, func() { _ = logger.Sync() }, nil
}
