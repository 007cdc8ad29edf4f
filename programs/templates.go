package programs

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/nibblers/fuzz"
	"github.com/reusee/nibblers/transformers"
)

// Template is a family of programs spanned by a parameter manifest.
type Template struct {
	Name     string
	Doc      string
	Manifest fuzz.Manifest
	Source   func(vars transformers.Vars) string
}

func (t Template) Build(vars transformers.Vars) (transformers.Program, error) {
	program, err := Parse(t.Source(vars))
	if err != nil {
		return program, fmt.Errorf("template %s: %w", t.Name, err)
	}
	program.Vars = vars
	return program, nil
}

func (t Template) Job() fuzz.Job {
	return fuzz.Job{
		Manifest: t.Manifest,
		Build:    t.Build,
	}
}

func signed(v any) string {
	return fmt.Sprintf("%+d", v)
}

func bitMap(m transformers.BitMap, base any) string {
	parts := make([]string, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		parts = append(parts, fmt.Sprintf("%d=%d", k, m[k]))
	}
	return fmt.Sprintf("[%s;%d]", strings.Join(parts, ","), base)
}

// BitMaps enumerates maps assigning each set bit an amount from values.
func BitMaps(values []int) []any {
	var ret []any
	var rec func(i int, m transformers.BitMap)
	rec = func(i int, m transformers.BitMap) {
		if i == len(fuzzWeights) {
			ret = append(ret, maps.Clone(m))
			return
		}
		for _, v := range values {
			m[fuzzWeights[i]] = v
			rec(i+1, m)
		}
	}
	rec(0, make(transformers.BitMap))
	return ret
}

var fuzzWeights = []int{1, 2, 4, 8}

var templates = map[string]Template{}

func register(t Template) {
	templates[t.Name] = t
}

func init() {
	register(Template{
		Name: "choice-and",
		Doc:  "A adds a when both chosen bits of B are set, b otherwise; B adds c",
		Manifest: fuzz.Manifest{
			fuzz.Dim("a", fuzz.Range(0, 15)),
			fuzz.Dim("b", fuzz.Range(0, 15)),
			fuzz.Dim("c", fuzz.Range(0, 15)),
			fuzz.Dim("bitA", fuzz.Bits),
			fuzz.Dim("bitB", fuzz.Bits),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CHOICE AND[x%d,x%d] %s %s\nB: CONSTANT %s",
				vars["bitA"], vars["bitB"], signed(vars["a"]), signed(vars["b"]), signed(vars["c"]))
		},
	})

	register(Template{
		Name: "choice-outside",
		Doc:  "A adds a while outside low..high, b otherwise",
		Manifest: fuzz.Manifest{
			fuzz.Dim("a", fuzz.Range(1, 15)),
			fuzz.Dim("b", fuzz.Range(1, 15)),
			fuzz.Dim("low", fuzz.Range(1, 7)),
			fuzz.Dim("high", fuzz.Range(8, 14)),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CHOICE OUTSIDE[%d,%d] %s %s\nB: CONSTANT +1",
				vars["low"], vars["high"], signed(vars["a"]), signed(vars["b"]))
		},
	})

	register(Template{
		Name: "choice-bit",
		Doc:  "A adds a when its own bit is set, b otherwise; B adds c",
		Manifest: fuzz.Manifest{
			fuzz.Dim("a", fuzz.Range(-15, 15)),
			fuzz.Dim("b", fuzz.Range(-15, 15)),
			fuzz.Dim("bit", fuzz.Bits),
			fuzz.Dim("c", fuzz.Range(0, 15)),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CHOICE *%d %s %s\nB: CONSTANT %s",
				vars["bit"], signed(vars["a"]), signed(vars["b"]), signed(vars["c"]))
		},
	})

	register(Template{
		Name: "choice-gte",
		Doc:  "A adds a from threshold up, b below it",
		Manifest: fuzz.Manifest{
			fuzz.Dim("a", fuzz.Range(-15, 15)),
			fuzz.Dim("b", fuzz.Range(-15, 15)),
			fuzz.Dim("threshold", fuzz.Range(0, 15)),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CHOICE GTE[%d] %s %s\nB: CONSTANT 0",
				vars["threshold"], signed(vars["a"]), signed(vars["b"]))
		},
	})

	register(Template{
		Name: "shift-xor",
		Doc:  "A shifts in a bit of B while it is set, adds a otherwise; B adds b",
		Manifest: fuzz.Manifest{
			fuzz.Dim("a", fuzz.Range(-15, 15)),
			fuzz.Dim("b", fuzz.Range(-15, 15)),
			fuzz.Dim("bit", fuzz.Bits),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CHOICE XOR[x%d] SHIFT[x%d] %s\nB: CONSTANT %s",
				vars["bit"], vars["bit"], signed(vars["a"]), signed(vars["b"]))
		},
	})

	register(Template{
		Name: "mapbits",
		Doc:  "A adds base plus an amount per set bit of itself; B adds c",
		Manifest: fuzz.Manifest{
			fuzz.Dim("map", BitMaps([]int{0, 1, 2, 3})),
			fuzz.Dim("base", fuzz.Range(0, 3)),
			fuzz.Dim("c", fuzz.Range(0, 15)),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CONSTANT MAP%s\nB: CONSTANT %s",
				bitMap(vars["map"].(transformers.BitMap), vars["base"]), signed(vars["c"]))
		},
	})

	register(Template{
		Name: "mapbits-aux",
		Doc:  "A adds base plus an amount per set bit of B; aux is the xor of both carries",
		Manifest: fuzz.Manifest{
			fuzz.Dim("map", BitMaps([]int{0, 1, 2, 3})),
			fuzz.Dim("base", fuzz.Range(0, 3)),
			fuzz.Dim("c", fuzz.Range(1, 15)),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CONSTANT XMAP%s\nB: CONSTANT %s\nAUX: XOR[CA,CB]",
				bitMap(vars["map"].(transformers.BitMap), vars["base"]), signed(vars["c"]))
		},
	})

	register(Template{
		Name: "polyrhythm",
		Doc:  "choice-bit with A and B advancing at ratio ra:rb",
		Manifest: fuzz.Manifest{
			fuzz.Dim("a", fuzz.Range(1, 8)),
			fuzz.Dim("b", fuzz.Range(1, 8)),
			fuzz.Dim("bit", fuzz.Bits),
			fuzz.Dim("c", fuzz.Range(1, 8)),
			fuzz.Dim("ra", fuzz.Range(2, 4)),
			fuzz.Dim("rb", fuzz.Range(2, 4)),
		},
		Source: func(vars transformers.Vars) string {
			return fmt.Sprintf("A: CHOICE *%d %s %s\nB: CONSTANT %s\nAUX: OR[CA,CB]\nGATE: %d:%d",
				vars["bit"], signed(vars["a"]), signed(vars["b"]), signed(vars["c"]), vars["ra"], vars["rb"])
		},
	})
}

func Lookup(name string) (Template, error) {
	t, ok := templates[name]
	if !ok {
		return Template{}, fmt.Errorf("%s: %w", name, ErrUnknownTemplate)
	}
	return t, nil
}

func TemplateNames() []string {
	return slices.Sorted(maps.Keys(templates))
}
