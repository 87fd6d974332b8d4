package lesson

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrUnknownDelimiter indicates no supported column delimiter was found.
var ErrUnknownDelimiter = errors.New("could not determine column delimiter")

// ErrMissingHeader indicates the word table has no rows at all.
var ErrMissingHeader = errors.New("word table has no header row")

// sniffSampleSize bounds how much of the table is inspected for the delimiter.
const sniffSampleSize = 1024

// delimiterCandidates lists supported delimiters in order of preference.
var delimiterCandidates = []rune{',', ';', '\t', '|', ':'}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadTable reads a word table file and returns its rows without the header.
func LoadTable(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word table: %w", err)
	}
	return ParseTable(data)
}

// ParseTable parses a delimited two-column table, discarding the header row.
func ParseTable(data []byte) ([]Pair, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrMissingHeader
	}
	delimiter, err := SniffDelimiter(data)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	// csv trims leading tabs even when tab is the delimiter; cells are trimmed below.
	reader.TrimLeadingSpace = delimiter != '\t'
	reader.LazyQuotes = true
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	collector := &issueCollector{file: TableFileName}
	var pairs []Pair
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse word table: %w", err)
		}
		line, _ := reader.FieldPos(0)
		field := fmt.Sprintf("line %d", line)
		if len(record) < 2 {
			collector.add(field, fmt.Sprintf("expected 2 columns, got %d", len(record)))
			continue
		}
		left := strings.TrimSpace(record[0])
		right := strings.TrimSpace(record[1])
		if left == "" || right == "" {
			collector.add(field, "both columns must be non-empty")
			continue
		}
		pairs = append(pairs, Pair{Left: left, Right: right})
	}
	if err := collector.result(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// SniffDelimiter guesses the column delimiter from the start of a table.
// A candidate occurring equally often on every sampled line wins; otherwise
// the candidate most frequent on the header line is used.
func SniffDelimiter(data []byte) (rune, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	sample := data
	if len(sample) > sniffSampleSize {
		sample = sample[:sniffSampleSize]
		if idx := bytes.LastIndexByte(sample, '\n'); idx > 0 {
			sample = sample[:idx]
		}
	}
	lines := sampleLines(string(sample))
	if len(lines) == 0 {
		return 0, ErrMissingHeader
	}

	for _, candidate := range delimiterCandidates {
		if consistentDelimiter(lines, candidate) {
			return candidate, nil
		}
	}

	var best rune
	bestCount := 0
	for _, candidate := range delimiterCandidates {
		if count := countOutsideQuotes(lines[0], candidate); count > bestCount {
			best, bestCount = candidate, count
		}
	}
	if bestCount == 0 {
		return 0, ErrUnknownDelimiter
	}
	return best, nil
}

func sampleLines(sample string) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func consistentDelimiter(lines []string, delimiter rune) bool {
	expected := countOutsideQuotes(lines[0], delimiter)
	if expected == 0 {
		return false
	}
	for _, line := range lines[1:] {
		if countOutsideQuotes(line, delimiter) != expected {
			return false
		}
	}
	return true
}

func countOutsideQuotes(line string, delimiter rune) int {
	count := 0
	quoted := false
	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
		case r == delimiter && !quoted:
			count++
		}
	}
	return count
}
