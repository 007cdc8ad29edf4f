package patterns

import (
	"errors"
	"fmt"
	"testing"
)

func TestCanonicalBits(t *testing.T) {
	for _, c := range []struct {
		name string
		bits string
	}{
		{"son", "1001001000101000"},
		{"rumba", "1001000100101000"},
		{"shiko", "1000101000101000"},
		{"soukous", "1001001000110000"},
		{"bossa", "1001001000100100"},
		{"gahu", "1001001000100010"},
		{"soli", "101010101101"},
		{"tonada", "101010101101"},
		{"tambu", "101010110101"},
		{"bembe", "101010110101"},
		{"sorsonet", "111010101010"},
	} {
		p, ok := Lookup(c.name)
		if !ok {
			t.Fatalf("not found: %s", c.name)
		}
		if p.Bits != c.bits {
			t.Fatalf("%s: got %s", c.name, p.Bits)
		}
	}
}

func TestResolve(t *testing.T) {
	ps, err := Resolve("twelves")
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 3 || ps[0] != Soli {
		t.Fatalf("got %v", ps)
	}

	ps, err = Resolve("Son")
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 1 || ps[0] != Son {
		t.Fatalf("got %v", ps)
	}

	ps, err = Resolve("10101")
	if err != nil {
		t.Fatal(err)
	}
	if len(ps) != 1 || ps[0].Bits != "10101" {
		t.Fatalf("got %v", ps)
	}

	_, err = Resolve("10201")
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("got %v", err)
	}
	_, err = Resolve("")
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("got %v", err)
	}
}

func TestSets(t *testing.T) {
	set, ok := LookupSet("touissant")
	if !ok {
		t.Fatal()
	}
	if len(set.Patterns) != 6 {
		t.Fatalf("got %v", set.Patterns)
	}
	for _, p := range set.Patterns {
		if p.Len() != 16 {
			t.Fatalf("got %v", p)
		}
	}
	if len(SetNames()) != 4 {
		t.Fatalf("got %v", SetNames())
	}
}

func TestSetNames(t *testing.T) {
	if str := fmt.Sprint(SetNames()); str != "[claves sixteens touissant twelves]" {
		t.Fatalf("got %s", str)
	}
	if _, ok := LookupSet("elevens"); ok {
		t.Fatal("no eleven-step fingerprints are defined")
	}
}
