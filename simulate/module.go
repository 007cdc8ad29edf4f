package simulate

import (
	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/rhythmconfigs"
	"github.com/reusee/nibblers/transformers"
)

type Module struct {
	dscope.Module
	Configs rhythmconfigs.Module
}

type Simulate func(program transformers.Program) *State

func (Module) Simulate(
	iterations rhythmconfigs.Iterations,
) Simulate {
	options := &Options{
		Iterations: int(iterations),
	}
	return func(program transformers.Program) *State {
		return Run(program, options)
	}
}
