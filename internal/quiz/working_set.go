package quiz

import "lexiquiz/internal/lesson"

// workingSet is a session's private copy of one direction's mapping.
type workingSet struct {
	keys    []string
	answers map[string][]string
}

func newWorkingSet(mapping lesson.Mapping) *workingSet {
	keys, answers := mapping.Entries()
	return &workingSet{keys: keys, answers: answers}
}

func (ws *workingSet) len() int {
	return len(ws.keys)
}

// snapshot returns the keys as they stand at the start of a pass.
func (ws *workingSet) snapshot() []string {
	return append([]string(nil), ws.keys...)
}

// remove drops solved keys, keeping the remaining keys in order.
func (ws *workingSet) remove(solved []string) {
	if len(solved) == 0 {
		return
	}
	drop := make(map[string]struct{}, len(solved))
	for _, key := range solved {
		drop[key] = struct{}{}
		delete(ws.answers, key)
	}
	kept := ws.keys[:0]
	for _, key := range ws.keys {
		if _, ok := drop[key]; !ok {
			kept = append(kept, key)
		}
	}
	ws.keys = kept
}
