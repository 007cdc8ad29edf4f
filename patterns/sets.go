package patterns

import (
	"maps"
	"slices"
	"strings"
)

// Set is an ordered group of related patterns tested as a batch.
type Set struct {
	Name     string
	Patterns []Pattern
}

var sets = map[string]Set{}

func init() {
	// no eleven-step set: none of its fingerprints are known
	for _, set := range []Set{
		{"touissant", []Pattern{Son, Rumba, Shiko, Soukous, Bossa, Gahu}},
		{"claves", []Pattern{Son, Rumba}},
		{"sixteens", []Pattern{Son, Rumba, Shiko, Soukous, Bossa, Gahu}},
		{"twelves", []Pattern{Soli, Tambu, Sorsonet}},
	} {
		sets[set.Name] = set
	}
}

func LookupSet(name string) (Set, bool) {
	set, ok := sets[strings.ToLower(name)]
	return set, ok
}

func SetNames() []string {
	return slices.Sorted(maps.Keys(sets))
}

func Names() []string {
	return slices.Sorted(maps.Keys(named))
}
