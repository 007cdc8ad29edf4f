package fuzz

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/logs"
	"github.com/reusee/nibblers/rhythmconfigs"
	"github.com/reusee/nibblers/simulate"
)

type Module struct {
	dscope.Module
	Analyze analyze.Module
}

// OnMatch observes every accepted analysis during a sweep.
type OnMatch func(*analyze.Analysis)

func (Module) OnMatch() OnMatch {
	return func(*analyze.Analysis) {}
}

type Sweep func(ctx context.Context, job Job) (*Results, error)

func (Module) Sweep(
	logger logs.Logger,
	newSpan logs.NewSpan,
	workers rhythmconfigs.Workers,
	strictLength rhythmconfigs.StrictLength,
	run simulate.Simulate,
	check analyze.Analyze,
	onMatch OnMatch,
) Sweep {
	return func(ctx context.Context, job Job) (*Results, error) {
		ctx, _ = newSpan(ctx, "", "sweep")
		logger.InfoContext(ctx, "sweep",
			"combinations", job.Manifest.Size(),
			"targets", len(job.Targets),
			"workers", int(workers),
		)

		results, err := Run(ctx, job, Options{
			Workers:      int(workers),
			StrictLength: bool(strictLength),
			Simulate:     run,
			Analyze:      check,
			OnMatch: func(analysis *analyze.Analysis) {
				logger.DebugContext(ctx, "match",
					"target", analysis.Target.Name,
					"vars", analysis.Vars,
					"loop", analysis.LoopLength,
					"sequences", analysis.Matched,
				)
				onMatch(analysis)
			},
		})
		if err != nil {
			return results, logs.WrapSpan(ctx, err)
		}

		for _, target := range job.Targets {
			logger.InfoContext(ctx, "target done",
				"target", target.Name,
				"matches", results.Count(target.Name),
			)
		}
		return results, nil
	}
}
