package lesson

// Mapping is an insertion-ordered map from a key to its accepted answers.
// The zero value is empty and ready to use.
type Mapping struct {
	keys    []string
	answers map[string][]string
}

func (m *Mapping) add(key, answer string) {
	if m.answers == nil {
		m.answers = map[string][]string{}
	}
	if _, exists := m.answers[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.answers[key] = append(m.answers[key], answer)
}

// Len returns the number of distinct keys.
func (m Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Answers returns the accepted answers for key.
func (m Mapping) Answers(key string) ([]string, bool) {
	answers, ok := m.answers[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), answers...), true
}

// Entries returns a deep copy of the mapping as parallel key order and answers.
func (m Mapping) Entries() ([]string, map[string][]string) {
	answers := make(map[string][]string, len(m.answers))
	for key, values := range m.answers {
		answers[key] = append([]string(nil), values...)
	}
	return m.Keys(), answers
}
