package analyze

import (
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/simulate"
	"github.com/reusee/nibblers/transformers"
)

type Analysis struct {
	Target      patterns.Pattern
	Vars        transformers.Vars
	Description string

	PreHistory  simulate.History
	MainHistory simulate.History
	LoopLength  int
	IsLooping   bool

	Sequences []Sequence
	Matched   []SequenceName
	InAny     bool

	LoopMatchesStrictLength bool
}

// Split separates the transient lead-in from the loop body. A looping history ends
// with the entry that repeats an earlier one plus the step recorded after it; both
// are left out of the body. A trace that never loops is all lead-in.
func Split(state *simulate.State) (pre, main simulate.History) {
	history := state.History
	if !state.IsLooping || len(history) < 2 {
		return history, nil
	}
	closing := len(history) - 2
	for i, entry := range history[:closing] {
		if entry.Equal(history[closing]) {
			return history[:i], history[i:closing]
		}
	}
	return history, nil
}

func Run(
	state *simulate.State,
	program transformers.Program,
	target patterns.Pattern,
	options *Options,
) *Analysis {
	pre, main := Split(state)
	analysis := &Analysis{
		Target:      target,
		Vars:        program.Vars,
		Description: program.Description(),
		PreHistory:  pre,
		MainHistory: main,
		LoopLength:  len(main),
		IsLooping:   state.IsLooping,
	}

	var auxMode AuxMode
	var restriction Restriction
	if options != nil {
		auxMode = options.AuxMode
		restriction = options.Restriction
	}
	repeat := options.repeat()

	analysis.Sequences = Derive(main, auxMode)
	for _, seq := range analysis.Sequences {
		if seq.Name == SeqAux && !program.HasAux() {
			continue
		}
		if !restriction.allows(seq.Name) {
			continue
		}
		if Contains(seq.Bits, target.Bits, repeat) {
			analysis.Matched = append(analysis.Matched, seq.Name)
		}
	}
	analysis.InAny = len(analysis.Matched) > 0

	analysis.LoopMatchesStrictLength = analysis.LoopLength > 0 &&
		target.Len()%analysis.LoopLength == 0

	return analysis
}
