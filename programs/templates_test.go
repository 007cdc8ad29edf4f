package programs

import (
	"errors"
	"testing"

	"github.com/reusee/nibblers/fuzz"
	"github.com/reusee/nibblers/simulate"
	"github.com/reusee/nibblers/transformers"
)

func TestTemplatesBuild(t *testing.T) {
	for _, name := range TemplateNames() {
		t.Run(name, func(t *testing.T) {
			template, err := Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			if template.Manifest.Size() == 0 {
				t.Fatal("empty manifest")
			}
			n := 0
			for _, vars := range fuzz.Distribute(template.Manifest) {
				program, err := template.Build(vars)
				if err != nil {
					t.Fatal(err)
				}
				if program.Vars == nil {
					t.Fatal("no vars")
				}
				if state := simulate.Run(program, nil); len(state.History) == 0 {
					t.Fatal("no history")
				}
				n++
				if n > 200 {
					break
				}
			}
		})
	}
}

func TestChoiceAndSource(t *testing.T) {
	template, err := Lookup("choice-and")
	if err != nil {
		t.Fatal(err)
	}
	if template.Manifest.Size() != 16*16*16*4*4 {
		t.Fatalf("got %v", template.Manifest.Size())
	}
	source := template.Source(transformers.Vars{
		"a": 3, "b": 0, "c": -2, "bitA": 1, "bitB": 8,
	})
	if source != "A: CHOICE AND[x1,x8] +3 +0\nB: CONSTANT -2" {
		t.Fatalf("got %s", source)
	}
}

func TestMapSource(t *testing.T) {
	template, err := Lookup("mapbits")
	if err != nil {
		t.Fatal(err)
	}
	program, err := template.Build(transformers.Vars{
		"map":  transformers.BitMap{1: 1, 2: 0, 4: 3, 8: 2},
		"base": 1,
		"c":    4,
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := transformers.MapBits(transformers.BitMap{1: 1, 2: 0, 4: 3, 8: 2}, 1, transformers.SourceOwn)
	if program.A.Describe() != "CONSTANT "+expected.Describe() {
		t.Fatalf("got %s", program.A.Describe())
	}
}

func TestBitMaps(t *testing.T) {
	maps := BitMaps([]int{0, 1, 2, 3})
	if len(maps) != 256 {
		t.Fatalf("got %v", len(maps))
	}
	first := maps[0].(transformers.BitMap)
	last := maps[255].(transformers.BitMap)
	if first[1] != 0 || last[8] != 3 || len(last) != 4 {
		t.Fatalf("got %v %v", first, last)
	}
}

func TestUnknownTemplate(t *testing.T) {
	_, err := Lookup("foo")
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("got %v", err)
	}
}
