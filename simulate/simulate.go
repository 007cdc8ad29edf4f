package simulate

import (
	"slices"

	"github.com/reusee/nibblers/nibbles"
	"github.com/reusee/nibblers/transformers"
)

type State struct {
	History          History
	IsLooping        bool
	WillStartLooping bool

	NibbleA nibbles.Nibble
	NibbleB nibbles.Nibble
	NA      int
	NB      int
	Steps   int
}

type Options struct {
	Iterations int
}

const DefaultIterations = 32

const holdDescription = "hold"

// Run drives both sides of program in lock-step from zero until the joint state
// repeats or the iteration cap is reached. The step that follows the first repeated
// entry is still recorded, so a looping history ends one entry past the loop.
func Run(program transformers.Program, options *Options) *State {
	iterations := DefaultIterations
	if options != nil && options.Iterations > 0 {
		iterations = options.Iterations
	}

	state := &State{
		History: make(History, 0, min(iterations, 64)),
	}

	for step := range iterations {
		if state.IsLooping {
			break
		}
		advance(state, program, step)
	}

	return state
}

func advance(state *State, program transformers.Program, step int) {
	updates := program.Apply(state.NibbleA, state.NibbleB)
	gate := program.Gate.At(step)

	nextA, descriptionA := state.NibbleA, holdDescription
	if gate.A {
		nextA, descriptionA = updates.A.Value, updates.A.Description
	}
	nextB, descriptionB := state.NibbleB, holdDescription
	if gate.B {
		nextB, descriptionB = updates.B.Value, updates.B.Description
	}
	nextNA := nextA.Int()
	nextNB := nextB.Int()

	carryA := nibbles.ToBit(nextNA < state.NA)
	carryB := nibbles.ToBit(nextNB < state.NB)

	aux := program.Aux.Eval(transformers.AuxInput{
		A:      state.NibbleA,
		B:      state.NibbleB,
		CarryA: carryA,
		CarryB: carryB,
	})

	entry := Entry{
		NibbleA:        state.NibbleA,
		NibbleB:        state.NibbleB,
		NA:             state.NA,
		NB:             state.NB,
		CarryA:         carryA,
		CarryB:         carryB,
		Aux:            aux.Value,
		Phase:          program.Gate.Phase(step),
		DescriptionA:   descriptionA,
		DescriptionB:   descriptionB,
		DescriptionAux: aux.Description,
	}

	nextIsLooping := state.WillStartLooping
	nextWillStartLooping := state.WillStartLooping ||
		slices.ContainsFunc(state.History, entry.Equal)

	state.History = append(state.History, entry)
	state.NibbleA = nextA
	state.NibbleB = nextB
	state.NA = nextNA
	state.NB = nextNB
	state.WillStartLooping = nextWillStartLooping
	state.IsLooping = nextIsLooping
	state.Steps = step + 1
}
