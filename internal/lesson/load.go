package lesson

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
)

// ErrNoLessons indicates the lessons root has no lesson directories.
var ErrNoLessons = errors.New("no lessons found")

// LoadOptions controls how a lesson's rows are ordered.
type LoadOptions struct {
	// Rand shuffles rows. A nil Rand uses a randomly seeded source.
	Rand *rand.Rand
	// KeepOrder disables shuffling so rows keep table order.
	KeepOrder bool
}

// Discover returns the lesson directory names under root in the order the
// filesystem lists them.
func Discover(root string) ([]string, error) {
	dir, err := os.Open(root)
	if err != nil {
		return nil, fmt.Errorf("open lessons root: %w", err)
	}
	defer dir.Close()
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("list lessons root: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids, nil
}

// Load reads a single lesson from root/id.
func Load(root, id string, opts LoadOptions) (*Lesson, error) {
	dir := filepath.Join(root, id)
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("lesson %q: %w", id, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("lesson %q: %s is not a directory", id, dir)
	}

	meta, err := LoadMeta(filepath.Join(dir, MetaFileName))
	if err != nil {
		return nil, fmt.Errorf("lesson %q: %w", id, err)
	}
	pairs, err := LoadTable(filepath.Join(dir, TableFileName))
	if err != nil {
		return nil, fmt.Errorf("lesson %q: %w", id, err)
	}
	if !opts.KeepOrder {
		rng := opts.Rand
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
		rng.Shuffle(len(pairs), func(i, j int) {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		})
	}
	return build(id, dir, meta, pairs), nil
}

// LoadAll discovers and loads every lesson under root, stopping at the first
// lesson that fails to load.
func LoadAll(root string, opts LoadOptions) ([]*Lesson, error) {
	ids, err := Discover(root)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLessons, root)
	}
	lessons := make([]*Lesson, 0, len(ids))
	for _, id := range ids {
		loaded, err := Load(root, id, opts)
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, loaded)
	}
	return lessons, nil
}

func build(id, dir string, meta Meta, pairs []Pair) *Lesson {
	result := &Lesson{
		ID:    id,
		Dir:   dir,
		Meta:  meta,
		Pairs: pairs,
	}
	for _, pair := range pairs {
		result.Forward.add(pair.Left, pair.Right)
		result.Reverse.add(pair.Right, pair.Left)
	}
	return result
}
