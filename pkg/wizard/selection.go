package wizard

import (
	"errors"
	"sort"
	"strings"
)

var ErrEmptySelection = errors.New("select at least one data source")

// Selection is the immutable set of provider names chosen in the first step.
// The zero value is empty and cannot start the configuring step.
type Selection struct {
	names []string
}

// NewSelection trims and de-duplicates names. It fails when nothing is left.
func NewSelection(names ...string) (Selection, error) {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	if len(out) == 0 {
		return Selection{}, ErrEmptySelection
	}
	sort.Strings(out)
	return Selection{names: out}, nil
}

// Names returns the selected providers sorted by name.
func (s Selection) Names() []string {
	return append([]string(nil), s.names...)
}

func (s Selection) Len() int {
	return len(s.names)
}

func (s Selection) IsEmpty() bool {
	return len(s.names) == 0
}

func (s Selection) Contains(name string) bool {
	i := sort.SearchStrings(s.names, name)
	return i < len(s.names) && s.names[i] == name
}
