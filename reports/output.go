package reports

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/clusters"
	"github.com/reusee/nibblers/simulate"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	ColorReset = "\033[0m"
	ColorMatch = "\033[1;32m"
	ColorTitle = "\033[1;36m"
	ColorDim   = "\033[2m"
)

// Output renders analyses and cluster counts. Trace tables and colors are only
// written when w is a terminal, unless forced.
type Output struct {
	w          io.Writer
	isTerminal bool
	tables     bool
}

func NewOutput(w io.Writer) Output {
	isTerminal := false
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTerminal = true
	}
	return Output{
		w:          w,
		isTerminal: isTerminal,
		tables:     isTerminal,
	}
}

func (o Output) WithTables(yes bool) Output {
	o.tables = yes
	return o
}

func (o Output) color(c string, s string) string {
	if !o.isTerminal {
		return s
	}
	return c + s + ColorReset
}

func (o Output) title(s string) error {
	_, err := fmt.Fprintln(o.w, o.color(ColorTitle, s))
	return err
}

func (o Output) yaml(v any) error {
	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Match writes one matching analysis.
func (o Output) Match(analysis *analyze.Analysis) error {
	if err := o.title(fmt.Sprintf("== %s", analysis.Target)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(o.w, analysis.Description); err != nil {
		return err
	}
	if len(analysis.Vars) > 0 {
		if err := o.yaml(analysis.Vars); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(o.w, "loop length: %d, lead-in: %d\n", analysis.LoopLength, len(analysis.PreHistory)); err != nil {
		return err
	}
	if o.tables {
		if len(analysis.PreHistory) > 0 {
			if err := o.title("pre-loop"); err != nil {
				return err
			}
			if err := o.Trace(analysis.PreHistory); err != nil {
				return err
			}
		}
		if err := o.title("loop"); err != nil {
			return err
		}
		if err := o.Trace(analysis.MainHistory); err != nil {
			return err
		}
	}
	return o.Sequences(analysis)
}

// Sequences writes every derived sequence of the loop, marking the matched ones.
func (o Output) Sequences(analysis *analyze.Analysis) error {
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	for _, seq := range analysis.Sequences {
		mark := ""
		bits := seq.String()
		if slices.Contains(analysis.Matched, seq.Name) {
			mark = "*"
			bits = o.color(ColorMatch, bits)
		}
		if _, err := fmt.Fprintf(tw, "%s%s\t%s\n", mark, seq.Name, bits); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Trace writes a history as a table, one row per step.
func (o Output) Trace(history simulate.History) error {
	tw := tabwriter.NewWriter(o.w, 0, 4, 1, ' ', 0)
	if _, err := fmt.Fprintln(tw, "#\tA\tNA\tCA\tB\tNB\tCB\tAUX\tPH\tA UPDATE\tB UPDATE"); err != nil {
		return err
	}
	for i, entry := range history {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%d\t%s\t%s\t%d\t%s\t%s\n",
			i,
			entry.NibbleA.Bits(), entry.NA, entry.CarryA,
			entry.NibbleB.Bits(), entry.NB, entry.CarryB,
			entry.Aux, entry.Phase,
			entry.DescriptionA, entry.DescriptionB,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

type targetSummary struct {
	Target  string `yaml:"target"`
	Matches int    `yaml:"matches"`
}

// Summary writes per target match counts in the given order.
func (o Output) Summary(targets []string, analyses map[string][]*analyze.Analysis) error {
	if err := o.title("== summary"); err != nil {
		return err
	}
	summary := make([]targetSummary, 0, len(targets))
	for _, target := range targets {
		summary = append(summary, targetSummary{
			Target:  target,
			Matches: len(analyses[target]),
		})
	}
	return o.yaml(summary)
}

// Counts writes the cluster records that survived filtering.
func (o Output) Counts(counts []clusters.Count) error {
	if err := o.title(fmt.Sprintf("== clusters: %d", len(counts))); err != nil {
		return err
	}
	if len(counts) == 0 {
		return nil
	}
	return o.yaml(counts)
}

// Line writes a dimmed informational line.
func (o Output) Line(format string, args ...any) error {
	_, err := fmt.Fprintln(o.w, o.color(ColorDim, strings.TrimRight(fmt.Sprintf(format, args...), "\n")))
	return err
}
