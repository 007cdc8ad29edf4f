package fuzz

import (
	"context"
	"fmt"

	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/simulate"
	"github.com/reusee/nibblers/syncs"
	"github.com/reusee/nibblers/transformers"
	"golang.org/x/sync/errgroup"
)

// Builder turns one combination of parameters into a program.
type Builder func(vars transformers.Vars) (transformers.Program, error)

type Job struct {
	Manifest Manifest
	Build    Builder
	Targets  []patterns.Pattern
}

type Options struct {
	Workers      int
	StrictLength bool
	Simulate     func(transformers.Program) *simulate.State
	Analyze      func(*simulate.State, transformers.Program, patterns.Pattern) *analyze.Analysis
	// OnMatch is called from worker goroutines
	OnMatch func(*analyze.Analysis)
}

func (o *Options) simulate(program transformers.Program) *simulate.State {
	if o.Simulate != nil {
		return o.Simulate(program)
	}
	return simulate.Run(program, nil)
}

func (o *Options) analyze(state *simulate.State, program transformers.Program, target patterns.Pattern) *analyze.Analysis {
	if o.Analyze != nil {
		return o.Analyze(state, program, target)
	}
	return analyze.Run(state, program, target, nil)
}

// Accept reports whether an analysis counts as a match.
func (o *Options) Accept(analysis *analyze.Analysis) bool {
	if !analysis.InAny {
		return false
	}
	if o.StrictLength && !analysis.LoopMatchesStrictLength {
		return false
	}
	return true
}

// Run simulates every combination of the job once and analyzes it against every
// target. Combinations run concurrently, bounded by Workers.
func Run(ctx context.Context, job Job, options Options) (*Results, error) {
	results := NewResults()
	sem := syncs.NewSemaphore(options.Workers)
	group, groupCtx := errgroup.WithContext(ctx)

	for index, vars := range Distribute(job.Manifest) {
		if err := sem.AcquireContext(groupCtx); err != nil {
			break
		}
		group.Go(func() error {
			defer sem.Release()
			program, err := job.Build(vars)
			if err != nil {
				return fmt.Errorf("build %v: %w", vars, err)
			}
			state := options.simulate(program)
			for _, target := range job.Targets {
				analysis := options.analyze(state, program, target)
				if !options.Accept(analysis) {
					continue
				}
				results.add(index, analysis)
				if options.OnMatch != nil {
					options.OnMatch(analysis)
				}
			}
			results.ran()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
