package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lexiquiz/internal/match"
	"lexiquiz/internal/quiz"
	"lexiquiz/internal/ui/render"
)

// readLine reads a line from the reader, trimming line endings.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return strings.TrimRight(line, "\r\n"), io.EOF
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptChoice asks for a number between 1 and count, re-prompting on
// anything else.
func promptChoice(reader *bufio.Reader, out io.Writer, label string, count int) (int, error) {
	for {
		fmt.Fprintf(out, "%s [1-%d]: ", label, count)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return 0, err
		}
		line = strings.TrimSpace(line)
		if choice, convErr := strconv.Atoi(line); convErr == nil && choice >= 1 && choice <= count {
			return choice, nil
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return 0, quiz.ErrInputClosed
		}
		fmt.Fprintln(out, "Please select one of the available options.")
	}
}

// promptYesNo prompts for a yes/no response with a default.
func promptYesNo(reader *bufio.Reader, out io.Writer, label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(out, "%s [%s]: ", label, suffix)
		line, err := readLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		line = strings.TrimSpace(strings.ToLower(line))
		if line == "" {
			if err == io.EOF {
				fmt.Fprintln(out)
			}
			return defaultYes, nil
		}
		switch line {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			if err == io.EOF {
				return false, fmt.Errorf("invalid response %q", line)
			}
			fmt.Fprintln(out, "Please answer yes or no.")
		}
	}
}

// linePrompter asks quiz questions over a line-oriented reader.
type linePrompter struct {
	reader  *bufio.Reader
	out     io.Writer
	noColor bool
}

// Answer prints the question and reads one line. EOF with nothing typed ends
// the quiz.
func (p *linePrompter) Answer(ctx context.Context, question quiz.Question) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprint(p.out, render.Question(question, p.noColor))
	line, err := readLine(p.reader)
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		fmt.Fprintln(p.out)
		return "", quiz.ErrInputClosed
	}
	return strings.TrimSpace(line), nil
}

// ConfirmRetry asks whether to retry the remaining keys. Declining is the default.
func (p *linePrompter) ConfirmRetry(ctx context.Context, remaining int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	fmt.Fprintln(p.out)
	return promptYesNo(p.reader, p.out, "Do you want to retry your imperfect answers?", false)
}

// consoleObserver prints feedback for each answer and pass.
type consoleObserver struct {
	out     io.Writer
	noColor bool
}

func (o *consoleObserver) AnswerChecked(question quiz.Question, result match.Result) {
	fmt.Fprintln(o.out, render.Verdict(question, result, o.noColor))
}

func (o *consoleObserver) PassFinished(report quiz.PassReport) {
	fmt.Fprintln(o.out, render.PassReport(report, o.noColor))
}
