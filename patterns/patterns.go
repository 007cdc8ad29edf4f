package patterns

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named rhythmic fingerprint, one character per step.
type Pattern struct {
	Name string
	Bits string
}

func (p Pattern) Len() int {
	return len(p.Bits)
}

func (p Pattern) String() string {
	return p.Name + "(" + p.Bits + ")"
}

var (
	Son     = Pattern{"son", "1001001000101000"}
	Rumba   = Pattern{"rumba", "1001000100101000"}
	Shiko   = Pattern{"shiko", "1000101000101000"}
	Soukous = Pattern{"soukous", "1001001000110000"}
	Bossa   = Pattern{"bossa", "1001001000100100"}
	Gahu    = Pattern{"gahu", "1001001000100010"}

	Soli     = Pattern{"soli", "101010101101"}
	Tambu    = Pattern{"tambu", "101010110101"}
	Sorsonet = Pattern{"sorsonet", "111010101010"}
)

var named = map[string]Pattern{}

var aliases = map[string]string{
	"sonclave":   "son",
	"rumbaclave": "rumba",
	"bossanova":  "bossa",
	"tonada":     "soli",
	"bembe":      "tambu",
}

func init() {
	for _, p := range []Pattern{
		Son, Rumba, Shiko, Soukous, Bossa, Gahu,
		Soli, Tambu, Sorsonet,
	} {
		named[p.Name] = p
	}
}

func Lookup(name string) (Pattern, bool) {
	name = strings.ToLower(name)
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	p, ok := named[name]
	return p, ok
}

func isBits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '0' && r != '1' {
			return false
		}
	}
	return true
}

// Resolve accepts a test-set name, a pattern name or a literal bit string.
func Resolve(target string) ([]Pattern, error) {
	if set, ok := LookupSet(target); ok {
		return set.Patterns, nil
	}
	if p, ok := Lookup(target); ok {
		return []Pattern{p}, nil
	}
	if isBits(target) {
		return []Pattern{{Name: target, Bits: target}}, nil
	}
	return nil, fmt.Errorf("%s: %w", target, ErrUnknownPattern)
}
