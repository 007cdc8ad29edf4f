package debugs

import (
	"errors"
	"testing"

	"go.starlark.net/starlark"
)

type traceEntry struct {
	Step    int
	CarryA  bool
	History []int
	note    string
}

func dict(pairs ...any) *starlark.Dict {
	d := starlark.NewDict(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		d.SetKey(pairs[i].(starlark.Value), pairs[i+1].(starlark.Value))
	}
	return d
}

func ints(ns ...int) *starlark.List {
	values := make([]starlark.Value, 0, len(ns))
	for _, n := range ns {
		values = append(values, starlark.MakeInt(n))
	}
	return starlark.NewList(values)
}

func TestToStarlarkValue(t *testing.T) {
	entry := &traceEntry{
		Step:    3,
		CarryA:  true,
		History: []int{1, 0, 1, 1},
		note:    "skipped",
	}
	entryDict := dict(
		starlark.String("Step"), starlark.MakeInt(3),
		starlark.String("CarryA"), starlark.True,
		starlark.String("History"), ints(1, 0, 1, 1),
	)

	for _, c := range []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bit", true, starlark.True},
		{"bytes", []byte("1000"), starlark.Bytes("1000")},
		{"pattern", "1000100010001000", starlark.String("1000100010001000")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-7), starlark.MakeInt64(-7)},
		{"uint8", uint8(15), starlark.MakeUint(15)},
		{"uint64", uint64(1 << 40), starlark.MakeUint64(1 << 40)},
		{"float", 0.5, starlark.Float(0.5)},
		{"nibble", [4]uint8{1, 0, 1, 0}, ints(1, 0, 1, 0)},
		{"offsets", []int{-3, 1, 4}, ints(-3, 1, 4)},
		{"sequence names", []string{"carries-a", "aux"}, starlark.NewList([]starlark.Value{
			starlark.String("carries-a"), starlark.String("aux"),
		})},
		{"vars", map[string]any{"a": 4, "op": "AND"}, dict(
			starlark.String("a"), starlark.MakeInt(4),
			starlark.String("op"), starlark.String("AND"),
		)},
		{"bit map", map[int]bool{0: true, 5: false}, dict(
			starlark.MakeInt(0), starlark.True,
			starlark.MakeInt(5), starlark.False,
		)},
		{"struct", *entry, entryDict},
		{"pointer", entry, entryDict},
		{"pointer to pointer", &entry, entryDict},
		{"nested", map[string]any{
			"trace": []any{entry, traceEntry{Step: 0, History: []int{}}},
		}, dict(
			starlark.String("trace"), starlark.NewList([]starlark.Value{
				entryDict,
				dict(
					starlark.String("Step"), starlark.MakeInt(0),
					starlark.String("CarryA"), starlark.False,
					starlark.String("History"), ints(),
				),
			}),
		)},
		{"error", errors.New("unknown pattern"), starlark.String("unknown pattern")},
		{"describer", testProgram{}, starlark.String("CONSTANT Add 3")},
		{"starlark value", starlark.MakeInt(9), starlark.MakeInt(9)},
		{"nil pointer", (*traceEntry)(nil), starlark.None},
	} {
		t.Run(c.name, func(t *testing.T) {
			got := toStarlarkValue(c.input)
			equal, err := starlark.Equal(got, c.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Fatalf("got %v, expected %v", got, c.expected)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
