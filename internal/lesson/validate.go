package lesson

import (
	"fmt"
	"strings"
)

// Issue captures a single problem found in a lesson file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more problems in a lesson file.
type ValidationError struct {
	File   string
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("%s validation failed: %s", err.File, strings.Join(parts, "; "))
}

type issueCollector struct {
	file   string
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{File: collector.file, Issues: collector.issues}
}
