package debugs

import (
	"testing"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

type testProgram struct{}

func (testProgram) Describe() string {
	return "CONSTANT Add 3"
}

func TestGlobals(t *testing.T) {
	globals := Globals(map[string]any{
		"nibble":  [4]uint8{1, 0, 1, 0},
		"program": testProgram{},
		"vars": map[string]any{
			"a": 3,
		},
		"rerun": func(n int) int {
			return n * 2
		},
	})

	thread := &starlark.Thread{Name: "test"}
	for _, c := range []struct {
		expr     string
		expected starlark.Value
	}{
		{"nibble[2]", starlark.MakeInt(1)},
		{"len(nibble)", starlark.MakeInt(4)},
		{"program", starlark.String("CONSTANT Add 3")},
		{`vars["a"]`, starlark.MakeInt(3)},
	} {
		got, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "test", c.expr, globals)
		if err != nil {
			t.Fatalf("%s: %v", c.expr, err)
		}
		equal, err := starlark.Equal(got, c.expected)
		if err != nil {
			t.Fatal(err)
		}
		if !equal {
			t.Fatalf("%s: got %v", c.expr, got)
		}
	}
	if _, ok := globals["rerun"].(starlark.Callable); !ok {
		t.Fatalf("got %T", globals["rerun"])
	}
}
