package fuzz

import (
	"cmp"
	"slices"
	"sync"

	"github.com/reusee/nibblers/analyze"
)

type indexed struct {
	index    int
	analysis *analyze.Analysis
}

// Results collects matching analyses per target. Safe for concurrent use.
type Results struct {
	mu       sync.Mutex
	byTarget map[string][]indexed
	runs     int
}

func NewResults() *Results {
	return &Results{
		byTarget: make(map[string][]indexed),
	}
}

func (r *Results) add(index int, analysis *analyze.Analysis) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := analysis.Target.Name
	r.byTarget[name] = append(r.byTarget[name], indexed{
		index:    index,
		analysis: analysis,
	})
}

func (r *Results) ran() {
	r.mu.Lock()
	r.runs++
	r.mu.Unlock()
}

func (r *Results) Runs() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.runs
}

func (r *Results) Count(target string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byTarget[target])
}

// Analyses returns the matches per target in sweep order.
func (r *Results) Analyses() map[string][]*analyze.Analysis {
	r.mu.Lock()
	defer r.mu.Unlock()
	ret := make(map[string][]*analyze.Analysis, len(r.byTarget))
	for target, entries := range r.byTarget {
		entries = slices.Clone(entries)
		slices.SortFunc(entries, func(a, b indexed) int {
			return cmp.Compare(a.index, b.index)
		})
		list := make([]*analyze.Analysis, 0, len(entries))
		for _, entry := range entries {
			list = append(list, entry.analysis)
		}
		ret[target] = list
	}
	return ret
}
