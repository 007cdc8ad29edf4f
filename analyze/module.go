package analyze

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/rhythmconfigs"
	"github.com/reusee/nibblers/simulate"
	"github.com/reusee/nibblers/transformers"
)

type Module struct {
	dscope.Module
	Simulate simulate.Module
}

func (Module) Options(
	repeat rhythmconfigs.Repeat,
	strictOrder rhythmconfigs.StrictOrder,
	restriction rhythmconfigs.Restriction,
	auxMode rhythmconfigs.AuxMode,
) *Options {
	options := &Options{
		Repeat:      int(repeat),
		StrictOrder: bool(strictOrder),
	}
	if err := options.Restriction.UnmarshalText([]byte(restriction)); err != nil {
		panic(fmt.Errorf("configs: %w", err))
	}
	if err := options.AuxMode.UnmarshalText([]byte(auxMode)); err != nil {
		panic(fmt.Errorf("configs: %w", err))
	}
	return options
}

type Analyze func(state *simulate.State, program transformers.Program, target patterns.Pattern) *Analysis

func (Module) Analyze(
	options *Options,
) Analyze {
	return func(state *simulate.State, program transformers.Program, target patterns.Pattern) *Analysis {
		return Run(state, program, target, options)
	}
}
