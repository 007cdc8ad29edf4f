package reports

import (
	"bytes"
	"strings"
	"testing"

	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/clusters"
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/simulate"
	"github.com/reusee/nibblers/transformers"
)

func matchFours(t *testing.T) *analyze.Analysis {
	program := transformers.MakeProgram(
		transformers.Constant(transformers.Add(4)),
		transformers.Constant(transformers.Add(0)),
		transformers.WithVars(transformers.Vars{
			"a":   4,
			"map": transformers.BitMap{1: 2, -8: 1},
		}),
	)
	analysis := analyze.Run(simulate.Run(program, nil), program, patterns.Pattern{
		Name: "fours",
		Bits: "10001000",
	}, nil)
	if !analysis.InAny {
		t.Fatal()
	}
	return analysis
}

func TestMatch(t *testing.T) {
	analysis := matchFours(t)

	buf := new(bytes.Buffer)
	if err := NewOutput(buf).Match(analysis); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "\033[") {
		t.Fatal("colors on a buffer")
	}
	if strings.Contains(out, "A UPDATE") {
		t.Fatal("tables on a buffer")
	}
	for _, expected := range []string{
		"== fours(10001000)",
		"a: 4",
		"-8: 1",
		"loop length: 4",
		"*carries-a",
		"0001",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("no %q in %s", expected, out)
		}
	}

	buf.Reset()
	if err := NewOutput(buf).WithTables(true).Match(analysis); err != nil {
		t.Fatal(err)
	}
	out = buf.String()
	if !strings.Contains(out, "A UPDATE") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, "Add 4") {
		t.Fatalf("got %s", out)
	}
}

func TestSummaryAndCounts(t *testing.T) {
	analysis := matchFours(t)
	buf := new(bytes.Buffer)
	output := NewOutput(buf)
	if err := output.Summary([]string{"fours", "son"}, map[string][]*analyze.Analysis{
		"fours": {analysis},
	}); err != nil {
		t.Fatal(err)
	}
	if err := output.Counts([]clusters.Count{
		{
			Target: "fours",
			Vars:   transformers.Vars{"a": 4},
			OneOffs: clusters.Matches{
				"son": {{"a": 5}},
			},
		},
	}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, expected := range []string{
		"target: fours",
		"matches: 1",
		"target: son",
		"matches: 0",
		"== clusters: 1",
		"one_offs:",
		"a: 5",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("no %q in %s", expected, out)
		}
	}
}
