package pattern

import (
	"fmt"
	"sort"
	"strings"
)

// Store abstracts how the pattern library is persisted.
type Store interface {
	// Load returns all persisted patterns by name.
	Load() (map[string]Pattern, error)
	// Append durably adds one named pattern without disturbing existing
	// entries.
	Append(name string, p Pattern) error
}

// Library is the in-memory set of named patterns. Names are unique; the
// library grows only through Add.
type Library struct {
	patterns map[string]Pattern
	names    []string
	store    Store
}

// Load builds a library from the built-in patterns plus whatever the store
// holds. Stored patterns win name collisions with built-ins.
func Load(store Store) (*Library, error) {
	patterns := make(map[string]Pattern, len(builtins))
	for name, p := range builtins {
		patterns[name] = Normalize(p)
	}
	if store != nil {
		saved, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("load pattern library: %w", err)
		}
		for name, p := range saved {
			patterns[name] = Normalize(p)
		}
	}
	lib := &Library{patterns: patterns, store: store}
	lib.names = make([]string, 0, len(patterns))
	for name := range patterns {
		lib.names = append(lib.names, name)
	}
	sort.Strings(lib.names)
	return lib, nil
}

// Len returns the number of patterns.
func (l *Library) Len() int { return len(l.patterns) }

// Names returns all pattern names in sorted order.
func (l *Library) Names() []string { return l.names }

// Get returns the named pattern.
func (l *Library) Get(name string) (Pattern, bool) {
	p, ok := l.patterns[name]
	return p, ok
}

// Filter returns the sorted names containing query as a case-insensitive
// substring. An empty query matches everything.
func (l *Library) Filter(query string) []string {
	if query == "" {
		return l.names
	}
	q := strings.ToLower(query)
	var out []string
	for _, name := range l.names {
		if strings.Contains(strings.ToLower(name), q) {
			out = append(out, name)
		}
	}
	return out
}

// Add persists the pattern and inserts it into the library. A name that is
// already taken is rejected, and a store failure leaves the library
// unchanged.
func (l *Library) Add(name string, p Pattern) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("pattern name is empty")
	}
	if len(p) == 0 {
		return fmt.Errorf("pattern %q is empty", name)
	}
	if _, exists := l.patterns[name]; exists {
		return fmt.Errorf("pattern %q already exists", name)
	}
	p = Normalize(p)
	if l.store != nil {
		if err := l.store.Append(name, p); err != nil {
			return fmt.Errorf("save pattern %q: %w", name, err)
		}
	}
	l.patterns[name] = p
	i := sort.SearchStrings(l.names, name)
	l.names = append(l.names, "")
	copy(l.names[i+1:], l.names[i:])
	l.names[i] = name
	return nil
}

// builtins are the seed patterns available before the user saves any.
var builtins = map[string]Pattern{
	"block": {
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
	},
	"blinker": {
		{0, 0}, {0, 1}, {0, 2},
	},
	"toad": {
		{0, 1}, {0, 2}, {0, 3},
		{1, 0}, {1, 1}, {1, 2},
	},
	"beacon": {
		{0, 0}, {0, 1},
		{1, 0}, {1, 1},
		{2, 2}, {2, 3},
		{3, 2}, {3, 3},
	},
	"glider": {
		{0, 1},
		{1, 2},
		{2, 0}, {2, 1}, {2, 2},
	},
	"lwss": {
		{0, 1}, {0, 4},
		{1, 0},
		{2, 0}, {2, 4},
		{3, 0}, {3, 1}, {3, 2}, {3, 3},
	},
	"r-pentomino": {
		{0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 1},
	},
	"pulsar": {
		{0, 2}, {0, 3}, {0, 4}, {0, 8}, {0, 9}, {0, 10},
		{2, 0}, {2, 5}, {2, 7}, {2, 12},
		{3, 0}, {3, 5}, {3, 7}, {3, 12},
		{4, 0}, {4, 5}, {4, 7}, {4, 12},
		{5, 2}, {5, 3}, {5, 4}, {5, 8}, {5, 9}, {5, 10},
		{7, 2}, {7, 3}, {7, 4}, {7, 8}, {7, 9}, {7, 10},
		{8, 0}, {8, 5}, {8, 7}, {8, 12},
		{9, 0}, {9, 5}, {9, 7}, {9, 12},
		{10, 0}, {10, 5}, {10, 7}, {10, 12},
		{12, 2}, {12, 3}, {12, 4}, {12, 8}, {12, 9}, {12, 10},
	},
}
