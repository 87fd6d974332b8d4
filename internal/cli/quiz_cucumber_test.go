//go:build cucumber

package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestQuizScenarios runs the quiz feature scenarios.
func TestQuizScenarios(t *testing.T) {
	featurePath := filepath.Join("testdata", "features", "quiz.feature")
	suite := godog.TestSuite{
		Name:                "quiz",
		ScenarioInitializer: InitializeQuizScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{featurePath},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeQuizScenario wires steps for quiz scenarios.
func InitializeQuizScenario(ctx *godog.ScenarioContext) {
	state := &quizScenarioState{}
	origTerminal := isTerminal
	origInput := quizInput
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		if err := state.reset(); err != nil {
			return ctx, err
		}
		isTerminal = func(io.Writer) bool { return false }
		return ctx, nil
	})
	ctx.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		isTerminal = origTerminal
		quizInput = origInput
		return ctx, os.RemoveAll(state.root)
	})

	ctx.Step(`^a lesson "([^"]+)" named "([^"]+)" with pairs:$`, state.givenLesson)
	ctx.Step(`^I practice lesson (\d+) answering:$`, state.whenIPracticeByNumber)
	ctx.Step(`^I practice lesson "([^"]+)" answering nothing$`, state.whenIPracticeByID)
	ctx.Step(`^the quiz exits with code (\d+)$`, state.thenExitCode)
	ctx.Step(`^the output contains "([^"]+)"$`, state.thenOutputContains)
	ctx.Step(`^the output does not contain "([^"]+)"$`, state.thenOutputLacks)
}

type quizScenarioState struct {
	root   string
	code   int
	stdout string
	stderr string
}

// reset creates a fresh lessons root.
func (s *quizScenarioState) reset() error {
	root, err := os.MkdirTemp("", "lexiquiz-feature-")
	if err != nil {
		return err
	}
	*s = quizScenarioState{root: root}
	return nil
}

// givenLesson writes a lesson from a table whose first row is the header.
func (s *quizScenarioState) givenLesson(id, name string, table *godog.Table) error {
	dir := filepath.Join(s.root, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	meta := fmt.Sprintf("name: %s\nleft: Dutch\nright: English\n", name)
	if err := os.WriteFile(filepath.Join(dir, "meta.yml"), []byte(meta), 0o644); err != nil {
		return err
	}
	var b strings.Builder
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.Value)
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return os.WriteFile(filepath.Join(dir, "dict.csv"), []byte(b.String()), 0o644)
}

// whenIPracticeByNumber picks a lesson from the menu and feeds answers.
func (s *quizScenarioState) whenIPracticeByNumber(number int, answers *godog.Table) error {
	lines := []string{strconv.Itoa(number)}
	for _, row := range answers.Rows {
		lines = append(lines, row.Cells[0].Value)
	}
	s.run(strings.Join(lines, "\n") + "\n")
	return nil
}

// whenIPracticeByID starts a lesson by id with no input.
func (s *quizScenarioState) whenIPracticeByID(id string) error {
	s.run("", "--lesson", id)
	return nil
}

func (s *quizScenarioState) run(input string, extra ...string) {
	quizInput = strings.NewReader(input)
	args := append([]string{"quiz", "--lessons", s.root, "--direction", "forward", "--no-shuffle", "--ui", "plain", "--no-color"}, extra...)
	var out, errOut bytes.Buffer
	s.code = Run(args, &out, &errOut)
	s.stdout = out.String()
	s.stderr = errOut.String()
}

// thenExitCode asserts the command exit code.
func (s *quizScenarioState) thenExitCode(code int) error {
	if s.code != code {
		return fmt.Errorf("expected exit %d, got %d (stderr %q)", code, s.code, s.stderr)
	}
	return nil
}

// thenOutputContains asserts stdout contains text.
func (s *quizScenarioState) thenOutputContains(text string) error {
	if !strings.Contains(s.stdout, text) {
		return fmt.Errorf("expected %q in output:\n%s", text, s.stdout)
	}
	return nil
}

// thenOutputLacks asserts stdout does not contain text.
func (s *quizScenarioState) thenOutputLacks(text string) error {
	if strings.Contains(s.stdout, text) {
		return fmt.Errorf("did not expect %q in output:\n%s", text, s.stdout)
	}
	return nil
}
