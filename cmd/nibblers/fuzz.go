package main

import (
	"context"
	"sync"

	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/clusters"
	"github.com/reusee/nibblers/debugs"
	"github.com/reusee/nibblers/fuzz"
	"github.com/reusee/nibblers/logs"
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/programs"
	"github.com/reusee/nibblers/reports"
)

// printMatches reports every match as it arrives. Workers call it concurrently.
func printMatches(
	output reports.Output,
	tap debugs.Tap,
	logger logs.Logger,
) fuzz.OnMatch {
	var l sync.Mutex
	return func(analysis *analyze.Analysis) {
		l.Lock()
		defer l.Unlock()
		if err := output.Match(analysis); err != nil {
			logger.Error("print match", "error", err)
		}
		if *tapFlag {
			tap(context.Background(), "match", map[string]any{
				"analysis": analysis,
			})
		}
	}
}

type Fuzz func(ctx context.Context, templateName string, target string) error

func (Module) Fuzz(
	sweep fuzz.Sweep,
	cluster clusters.Cluster,
	output reports.Output,
	tap debugs.Tap,
) Fuzz {
	return func(ctx context.Context, templateName string, target string) error {
		template, err := programs.Lookup(templateName)
		if err != nil {
			return err
		}
		targets, err := patterns.Resolve(target)
		if err != nil {
			return err
		}

		job := template.Job()
		job.Targets = targets
		results, err := sweep(ctx, job)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(targets))
		for _, p := range targets {
			names = append(names, p.Name)
		}
		analyses := results.Analyses()
		if err := output.Summary(names, analyses); err != nil {
			return err
		}

		if len(targets) < 2 {
			return nil
		}
		counts := cluster(ctx, analyses)
		if err := output.Counts(counts); err != nil {
			return err
		}
		if *tapFlag {
			tap(ctx, "clusters", map[string]any{
				"counts":   counts,
				"analyses": analyses,
			})
		}
		return nil
	}
}
