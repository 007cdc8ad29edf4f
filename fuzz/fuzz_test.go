package fuzz

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/modes"
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/simulate"
	"github.com/reusee/nibblers/transformers"
)

func TestRange(t *testing.T) {
	r := Range(-2, 2)
	if len(r) != 5 || r[0] != -2 || r[4] != 2 {
		t.Fatalf("got %v", r)
	}
	if len(Range(3, 2)) != 0 {
		t.Fatal()
	}
}

func TestDistributeOrder(t *testing.T) {
	manifest := Manifest{
		Dim("a", []any{1}),
		Dim("b", []any{2, 3}),
		Dim("c", []any{8, 9}),
	}
	var got []string
	for i, vars := range Distribute(manifest) {
		got = append(got, fmt.Sprintf("%d:%v%v%v", i, vars["a"], vars["b"], vars["c"]))
	}
	expected := []string{"0:128", "1:138", "2:129", "3:139"}
	if fmt.Sprint(got) != fmt.Sprint(expected) {
		t.Fatalf("got %v", got)
	}
}

func TestDistributeSize(t *testing.T) {
	manifest := Manifest{
		Dim("a", Range(0, 15)),
		Dim("b", Range(0, 15)),
		Dim("bitA", Bits),
		Dim("bitB", Bits),
	}
	if manifest.Size() != 4096 {
		t.Fatalf("got %v", manifest.Size())
	}
	seen := make(map[string]bool)
	n := 0
	for _, vars := range Distribute(manifest) {
		seen[fmt.Sprint(vars)] = true
		n++
	}
	if n != 4096 || len(seen) != 4096 {
		t.Fatalf("got %v %v", n, len(seen))
	}

	for range Distribute(Manifest{}) {
		t.Fatal("empty manifest yields nothing")
	}
	for range Distribute(Manifest{Dim("a", nil)}) {
		t.Fatal("empty dimension yields nothing")
	}
}

func adders(vars transformers.Vars) (transformers.Program, error) {
	return transformers.MakeProgram(
		transformers.Constant(transformers.Add(vars["a"].(int))),
		transformers.Constant(transformers.Add(vars["b"].(int))),
		transformers.WithVars(vars),
	), nil
}

func carryAOnly(state *simulate.State, program transformers.Program, target patterns.Pattern) *analyze.Analysis {
	return analyze.Run(state, program, target, &analyze.Options{
		Restriction: analyze.RestrictCarryA,
	})
}

func carriesOnly(state *simulate.State, program transformers.Program, target patterns.Pattern) *analyze.Analysis {
	return analyze.Run(state, program, target, &analyze.Options{
		Restriction: analyze.RestrictCarries,
	})
}

func TestRun(t *testing.T) {
	// adding 4 wraps every fourth step; 8 every second; 0 never
	target := patterns.Pattern{Name: "fours", Bits: "10001000"}
	var matches atomic.Int64
	results, err := Run(context.Background(), Job{
		Manifest: Manifest{
			Dim("a", []any{0, 4, 8}),
			Dim("b", []any{0, 4}),
		},
		Build:   adders,
		Targets: []patterns.Pattern{target},
	}, Options{
		Workers: 4,
		Analyze: carriesOnly,
		OnMatch: func(*analyze.Analysis) {
			matches.Add(1)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if results.Runs() != 6 {
		t.Fatalf("got %v", results.Runs())
	}
	list := results.Analyses()["fours"]
	var got []string
	for _, analysis := range list {
		got = append(got, fmt.Sprintf("%v,%v:%v", analysis.Vars["a"], analysis.Vars["b"], analysis.Matched))
	}
	if str := fmt.Sprint(got); str != "[4,0:[carries-a] 0,4:[carries-b] 4,4:[carries-a carries-b] 8,4:[carries-b]]" {
		t.Fatalf("got %s", str)
	}
	if matches.Load() != 4 {
		t.Fatalf("got %v", matches.Load())
	}
}

func TestRunSingleCarryFamily(t *testing.T) {
	// adding 12 wraps on three steps of four, which never isolates a single carry
	target := patterns.Pattern{Name: "fours", Bits: "10001000"}
	results, err := Run(context.Background(), Job{
		Manifest: Manifest{
			Dim("a", Range(0, 15)),
			Dim("b", []any{0}),
		},
		Build:   adders,
		Targets: []patterns.Pattern{target},
	}, Options{
		Analyze: carryAOnly,
	})
	if err != nil {
		t.Fatal(err)
	}
	list := results.Analyses()["fours"]
	if len(list) != 1 || list[0].Vars["a"] != 4 {
		t.Fatalf("got %v", len(list))
	}
}

func TestRunStrictLength(t *testing.T) {
	// loop of 4 cannot phase align with a 6 step target
	target := patterns.Pattern{Name: "six", Bits: "100010"}
	results, err := Run(context.Background(), Job{
		Manifest: Manifest{
			Dim("a", []any{4}),
			Dim("b", []any{0}),
		},
		Build:   adders,
		Targets: []patterns.Pattern{target},
	}, Options{
		Analyze: carryAOnly,
	})
	if err != nil {
		t.Fatal(err)
	}
	if results.Count("six") != 1 {
		t.Fatalf("got %v", results.Count("six"))
	}

	results, err = Run(context.Background(), Job{
		Manifest: Manifest{
			Dim("a", []any{4}),
			Dim("b", []any{0}),
		},
		Build:   adders,
		Targets: []patterns.Pattern{target},
	}, Options{
		Analyze:      carryAOnly,
		StrictLength: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if results.Count("six") != 0 {
		t.Fatalf("got %v", results.Count("six"))
	}
}

func TestRunBuildError(t *testing.T) {
	errBad := errors.New("bad")
	_, err := Run(context.Background(), Job{
		Manifest: Manifest{
			Dim("a", Range(0, 7)),
		},
		Build: func(vars transformers.Vars) (transformers.Program, error) {
			if vars["a"] == 3 {
				return transformers.Program{}, errBad
			}
			return adders(transformers.Vars{"a": vars["a"], "b": 0})
		},
		Targets: []patterns.Pattern{patterns.Son},
	}, Options{
		Workers: 2,
	})
	if !errors.Is(err, errBad) {
		t.Fatalf("got %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Job{
		Manifest: Manifest{
			Dim("a", Range(0, 15)),
			Dim("b", Range(0, 15)),
		},
		Build:   adders,
		Targets: []patterns.Pattern{patterns.Son},
	}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v", err)
	}
}

func TestSweepProvider(t *testing.T) {
	var matches atomic.Int64
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() OnMatch {
			return func(*analyze.Analysis) {
				matches.Add(1)
			}
		},
	).Call(func(
		sweep Sweep,
	) {
		results, err := sweep(context.Background(), Job{
			Manifest: Manifest{
				Dim("a", []any{0, 4, 12}),
				Dim("b", []any{0, 4}),
			},
			Build: adders,
			Targets: []patterns.Pattern{
				{Name: "fours", Bits: "10001000"},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		n := results.Count("fours")
		if n < 2 {
			t.Fatalf("got %v", n)
		}
		for _, analysis := range results.Analyses()["fours"] {
			if analysis.Vars["a"] != 4 && analysis.Vars["b"] != 4 {
				t.Fatalf("got %v", analysis.Vars)
			}
		}
		if int(matches.Load()) != n {
			t.Fatalf("got %v", matches.Load())
		}
	})
}
