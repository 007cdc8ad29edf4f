package clusters

import (
	"cmp"
	"slices"

	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/transformers"
	"github.com/samber/lo"
)

// Matches maps a target name to the vars that came near a seed under that target.
type Matches map[string][]transformers.Vars

type Count struct {
	Target  string            `yaml:"target"`
	Vars    transformers.Vars `yaml:"vars"`
	OneOffs Matches           `yaml:"one_offs,omitempty"`
	TwoOffs Matches           `yaml:"two_offs,omitempty"`
}

func (c Count) matchedTargets(matches Matches) int {
	return lo.CountBy(lo.Values(matches), func(vars []transformers.Vars) bool {
		return len(vars) > 0
	})
}

type Options struct {
	MatchThreshold int
	StrictSetMatch bool
	// OnTarget is called before each seeding target is compared
	OnTarget func(target string, analyses int)
}

// Targets orders target names by their number of analyses, fewest first.
func Targets(analyses map[string][]*analyze.Analysis) []string {
	targets := sortedKeys(analyses)
	slices.SortStableFunc(targets, func(a, b string) int {
		return cmp.Compare(len(analyses[a]), len(analyses[b]))
	})
	return targets
}

// Counts compares every analysis against the analyses of all other targets.
func Counts(analyses map[string][]*analyze.Analysis, options Options) []Count {
	targets := Targets(analyses)
	var counts []Count
	for i, target := range targets {
		if options.OnTarget != nil {
			options.OnTarget(target, len(analyses[target]))
		}
		// every other target must match anyway, so the smallest list decides
		if i > 0 && options.MatchThreshold == len(targets)-1 {
			break
		}
		for _, analysis := range analyses[target] {
			count := Count{
				Target:  target,
				Vars:    analysis.Vars,
				OneOffs: make(Matches),
				TwoOffs: make(Matches),
			}
			for _, other := range targets {
				if other == target {
					continue
				}
				var ones, twos []transformers.Vars
				for _, otherAnalysis := range analyses[other] {
					withinOne, withinTwo := CalculateNearness(analysis.Vars, otherAnalysis.Vars)
					if withinOne {
						ones = append(ones, otherAnalysis.Vars)
					}
					if withinTwo {
						twos = append(twos, otherAnalysis.Vars)
					}
				}
				count.OneOffs[other] = ones
				count.TwoOffs[other] = twos
			}
			counts = append(counts, count)
		}
	}
	return counts
}

// Keep applies the threshold and, in strict mode, the shared-parameter rule.
func Keep(count Count, options Options) bool {
	oneOffs := count.matchedTargets(count.OneOffs)
	if !options.StrictSetMatch {
		return oneOffs >= options.MatchThreshold ||
			count.matchedTargets(count.TwoOffs) >= options.MatchThreshold
	}
	if oneOffs < options.MatchThreshold {
		return false
	}
	return sharedVar(count)
}

// sharedVar reports whether some parameter differs from the seed in a one-off match
// under every other target.
func sharedVar(count Count) bool {
	targets := sortedKeys(count.OneOffs)
	if len(targets) == 0 {
		return false
	}
	diffs := make([][]string, 0, len(targets))
	for _, target := range targets {
		var names []string
		for _, vars := range count.OneOffs[target] {
			if name, ok := DifferentVar(count.Vars, vars); ok {
				names = append(names, name)
			}
		}
		diffs = append(diffs, names)
	}
	return lo.SomeBy(diffs[0], func(name string) bool {
		return lo.EveryBy(diffs[1:], func(names []string) bool {
			return slices.Contains(names, name)
		})
	})
}

func Find(analyses map[string][]*analyze.Analysis, options Options) []Count {
	return lo.Filter(Counts(analyses, options), func(count Count, _ int) bool {
		return Keep(count, options)
	})
}
