package clusters

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/logs"
	"github.com/reusee/nibblers/rhythmconfigs"
)

type Module struct {
	dscope.Module
	Configs rhythmconfigs.Module
}

type Cluster func(ctx context.Context, analyses map[string][]*analyze.Analysis) []Count

func (Module) Cluster(
	logger logs.Logger,
	newSpan logs.NewSpan,
	threshold rhythmconfigs.MatchThreshold,
	strictSetMatch rhythmconfigs.StrictSetMatch,
) Cluster {
	return func(ctx context.Context, analyses map[string][]*analyze.Analysis) []Count {
		ctx, _ = newSpan(ctx, "", "cluster")
		counts := Find(analyses, Options{
			MatchThreshold: int(threshold),
			StrictSetMatch: bool(strictSetMatch),
			OnTarget: func(target string, n int) {
				logger.InfoContext(ctx, "match target",
					"target", target,
					"analyses", n,
				)
			},
		})
		logger.InfoContext(ctx, "clustered",
			"counts", len(counts),
		)
		return counts
	}
}
