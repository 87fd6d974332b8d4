package match

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// DefaultThreshold is the minimum Ratio for a close call.
const DefaultThreshold = 67

// Verdict classifies a typed answer.
type Verdict int

const (
	// Incorrect means no candidate was close enough.
	Incorrect Verdict = iota
	// Close means a candidate scored at or above the threshold.
	Close
	// Exact means the normalized answer equals a normalized candidate.
	Exact
)

// String returns the verdict name.
func (v Verdict) String() string {
	switch v {
	case Incorrect:
		return "incorrect"
	case Close:
		return "close"
	case Exact:
		return "exact"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Correct reports whether the verdict accepts the answer.
func (v Verdict) Correct() bool {
	return v == Exact || v == Close
}

// Result is the outcome of checking one answer.
type Result struct {
	Verdict Verdict
	// Matched is the accepted answer that was hit, in its display form.
	// Empty when incorrect.
	Matched string
	// Score is the best Ratio seen against any candidate.
	Score int
}

// Ratio returns the similarity of a and b on a 0..100 scale:
// 2*LCS / (len(a)+len(b)), counted in runes and rounded half to even.
func Ratio(a, b string) int {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	common := edlib.LCS(a, b)
	return int(math.RoundToEven(float64(200*common) / float64(total)))
}

// Classify checks answer against the accepted candidates. Exact matches on any
// candidate win over close calls; otherwise the best candidate scoring at
// least threshold is a close call. An answer that normalizes to nothing is
// always incorrect.
func Classify(answer string, candidates []string, threshold int) Result {
	given := Normalize(answer)
	if given == "" {
		return Result{Verdict: Incorrect}
	}
	normalized := make([]string, len(candidates))
	for i, candidate := range candidates {
		normalized[i] = Normalize(candidate)
		if normalized[i] == given {
			return Result{Verdict: Exact, Matched: Display(candidate), Score: 100}
		}
	}

	result := Result{Verdict: Incorrect}
	best := -1
	for i, candidate := range normalized {
		score := Ratio(given, candidate)
		if score > result.Score {
			result.Score = score
		}
		if score >= threshold && score > best {
			best = score
			result.Verdict = Close
			result.Matched = Display(candidates[i])
		}
	}
	return result
}
