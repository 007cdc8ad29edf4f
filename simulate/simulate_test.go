package simulate

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/modes"
	"github.com/reusee/nibblers/nibbles"
	"github.com/reusee/nibblers/transformers"
)

func TestCarry(t *testing.T) {
	for step := 1; step < 16; step++ {
		state := Run(transformers.MakeProgram(
			transformers.Constant(transformers.Add(step)),
			transformers.Constant(transformers.Add(0)),
		), nil)
		for i, entry := range state.History {
			expected := nibbles.ToBit(entry.NA+step > 15)
			if entry.CarryA != expected {
				t.Fatalf("add %d, step %d: got %v", step, i, entry.CarryA)
			}
			if entry.CarryB != 0 {
				t.Fatalf("add %d, step %d: got carry on B", step, i)
			}
		}
	}
}

func TestLoop(t *testing.T) {
	state := Run(transformers.MakeProgram(
		transformers.Constant(transformers.Add(3)),
		transformers.Constant(transformers.Add(0)),
	), nil)
	if !state.IsLooping {
		t.Fatal("should loop")
	}
	// 16 distinct states, the repeat, then one more
	if len(state.History) != 18 {
		t.Fatalf("got %v", len(state.History))
	}
	last := state.History[len(state.History)-1]
	if last.NA != 3 {
		t.Fatalf("got %v", last.NA)
	}
	if !last.Equal(state.History[1]) {
		t.Fatal()
	}
}

func TestIterationCap(t *testing.T) {
	state := Run(transformers.MakeProgram(
		transformers.Constant(transformers.Add(1)),
		transformers.Constant(transformers.Add(1)),
	), &Options{
		Iterations: 5,
	})
	if state.IsLooping {
		t.Fatal()
	}
	if len(state.History) != 5 {
		t.Fatalf("got %v", len(state.History))
	}
	if state.Steps != 5 {
		t.Fatalf("got %v", state.Steps)
	}
}

func TestMinimalLoop(t *testing.T) {
	var programs []transformers.Program
	for _, a := range []int{1, 3, 5, -2} {
		for _, b := range []int{0, 2, 7} {
			for _, bit := range nibbles.Weights {
				programs = append(programs,
					transformers.MakeProgram(
						transformers.Choice(transformers.OtherBit(bit), transformers.Add(a), transformers.Add(b)),
						transformers.Constant(transformers.Add(b+1)),
					),
					transformers.MakeProgram(
						transformers.Choice(transformers.And(transformers.OwnBit(bit), transformers.OtherBit(1)), transformers.Add(a), transformers.Shift(transformers.OtherBit(bit))),
						transformers.Choice(transformers.Xor(transformers.OwnBit(1), transformers.OtherBit(bit), transformers.OwnBit(8)), transformers.Add(b), transformers.Add(transformers.Other())),
						transformers.WithAux(transformers.AuxXor(transformers.CarryA(), transformers.CarryB())),
					),
					transformers.MakeProgram(
						transformers.Constant(transformers.MapBits(transformers.BitMap{int(bit): a, -int(bit): b}, 1, transformers.SourceOther)),
						transformers.Constant(transformers.Add(a)),
						transformers.WithGate(transformers.Polyrhythm(3, 2)),
					),
				)
			}
		}
	}

	for _, program := range programs {
		state := Run(program, &Options{
			Iterations: 16*16*2*4 + 2,
		})
		if !state.IsLooping {
			t.Fatalf("should loop: %s", program.Description())
		}
		history := state.History
		closing := len(history) - 2
		start := -1
		for i, entry := range history[:closing] {
			if entry.Equal(history[closing]) {
				start = i
				break
			}
		}
		if start < 0 {
			t.Fatalf("closing entry not repeated: %s", program.Description())
		}
		body := history[start:closing]
		for i := range body {
			for j := i + 1; j < len(body); j++ {
				if body[i].Equal(body[j]) {
					t.Fatalf("loop not minimal: %s", program.Description())
				}
			}
		}
	}
}

func TestGateHolds(t *testing.T) {
	state := Run(transformers.MakeProgram(
		transformers.Constant(transformers.Add(1)),
		transformers.Constant(transformers.Add(1)),
		transformers.WithGate(transformers.Polyrhythm(3, 2)),
	), &Options{
		Iterations: 5,
	})
	var na, nb []int
	for _, entry := range state.History {
		na = append(na, entry.NA)
		nb = append(nb, entry.NB)
	}
	// A advances on phases 0, 1, 3; B on 0, 2
	expectA := []int{0, 1, 2, 2, 3}
	expectB := []int{0, 1, 1, 2, 2}
	for i := range expectA {
		if na[i] != expectA[i] || nb[i] != expectB[i] {
			t.Fatalf("got %v %v", na, nb)
		}
	}
	if state.History[2].DescriptionA != holdDescription {
		t.Fatalf("got %s", state.History[2].DescriptionA)
	}
	if state.History[3].Phase != 3 || state.History[4].Phase != 0 {
		t.Fatal()
	}
}

func TestEntryEqualIgnoresDescriptions(t *testing.T) {
	a := Entry{NA: 1, NB: 2, DescriptionA: "foo"}
	b := Entry{NA: 1, NB: 2, DescriptionA: "bar", DescriptionAux: "baz"}
	if !a.Equal(b) {
		t.Fatal()
	}
	b.Aux = 1
	if a.Equal(b) {
		t.Fatal()
	}
	b.Aux = 0
	b.Phase = 1
	if a.Equal(b) {
		t.Fatal()
	}
}

func TestSimulateProvider(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		simulate Simulate,
	) {
		state := simulate(transformers.MakeProgram(
			transformers.Constant(transformers.Add(1)),
			transformers.Constant(transformers.Add(0)),
		))
		if !state.IsLooping {
			t.Fatal()
		}
		if len(state.History) != 18 {
			t.Fatalf("got %v", len(state.History))
		}
	})
}
