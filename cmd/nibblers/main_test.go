package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/modes"
	"github.com/reusee/nibblers/programs"
	"github.com/reusee/nibblers/reports"
)

func TestCommands(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() reports.Output {
			return reports.NewOutput(buf)
		},
	).Call(func(
		run Run,
		fuzz Fuzz,
	) {
		ctx := context.Background()

		if err := run(ctx, "A: CONSTANT +4\nB: CONSTANT 0"); err != nil {
			t.Fatal(err)
		}
		if out := buf.String(); !strings.Contains(out, "no match for son") {
			t.Fatalf("got %s", out)
		}

		if err := run(ctx, "A: CONSTANT +4"); !errors.Is(err, programs.ErrSyntax) {
			t.Fatalf("got %v", err)
		}

		err := fuzz(ctx, "no-such-template", "son")
		if !errors.Is(err, programs.ErrUnknownTemplate) {
			t.Fatalf("got %v", err)
		}
	})
}
