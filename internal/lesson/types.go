package lesson

import (
	"fmt"
	"strings"
)

const (
	// MetaFileName is the metadata file expected in every lesson directory.
	MetaFileName = "meta.yml"
	// TableFileName is the word table expected in every lesson directory.
	TableFileName = "dict.csv"
)

// Meta holds the labels read from a lesson's metadata file.
type Meta struct {
	Name  string `yaml:"name"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Pair is a single row of the word table.
type Pair struct {
	Left  string
	Right string
}

// Lesson is a loaded lesson. It is not modified after Load returns.
type Lesson struct {
	ID      string
	Dir     string
	Meta    Meta
	Pairs   []Pair
	Forward Mapping
	Reverse Mapping
}

// Questions reports how many rows the word table contained.
func (l *Lesson) Questions() int {
	return len(l.Pairs)
}

// DisplayName returns the metadata name, or the directory name when unset.
func (l *Lesson) DisplayName() string {
	if l.Meta.Name != "" {
		return l.Meta.Name
	}
	return l.ID
}

// Direction selects which side of a pair is asked.
type Direction int

const (
	// Forward asks left values and expects right values.
	Forward Direction = iota
	// Reverse asks right values and expects left values.
	Reverse
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection parses "forward" or "reverse".
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "forward":
		return Forward, nil
	case "reverse":
		return Reverse, nil
	default:
		return 0, fmt.Errorf("invalid direction %q (expected forward|reverse)", value)
	}
}

// View is a lesson seen from one direction.
type View struct {
	Direction Direction
	Mapping   Mapping
	// QuestionLabel names the side the keys come from.
	QuestionLabel string
	// AnswerLabel names the side the user must answer in.
	AnswerLabel string
}

// View returns the lesson seen from the given direction.
func (l *Lesson) View(direction Direction) View {
	if direction == Reverse {
		return View{
			Direction:     Reverse,
			Mapping:       l.Reverse,
			QuestionLabel: l.Meta.Right,
			AnswerLabel:   l.Meta.Left,
		}
	}
	return View{
		Direction:     Forward,
		Mapping:       l.Forward,
		QuestionLabel: l.Meta.Left,
		AnswerLabel:   l.Meta.Right,
	}
}
