package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var parenthetical = regexp.MustCompile(`\([^()]+\)`)

// Display strips parenthetical annotations and collapses whitespace, keeping
// the original case. It is the form shown back to the user.
func Display(value string) string {
	value = parenthetical.ReplaceAllString(value, "")
	return strings.Join(strings.Fields(value), " ")
}

// Normalize case-folds the display form of an answer for matching.
func Normalize(value string) string {
	return cases.Fold().String(Display(value))
}
