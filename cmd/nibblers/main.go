package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/nibblers/cmds"
	"github.com/reusee/nibblers/modes"
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/programs"
)

var tapFlag = cmds.Switch("-tap", "send results to the debug tap")

var action func(ctx context.Context, scope dscope.Scope)

func init() {
	cmds.Define("fuzz", cmds.Func(func(template string, target string) {
		action = func(ctx context.Context, scope dscope.Scope) {
			scope.Call(func(fuzz Fuzz) {
				ce(fuzz(ctx, template, target))
			})
		}
	}).Desc("sweep a program template against a pattern, a test-set or a bit string").
		Args("template", "target"))

	cmds.Define("run", cmds.Func(func(program string) {
		action = func(ctx context.Context, scope dscope.Scope) {
			text, err := readProgram(program)
			ce(err)
			scope.Call(func(run Run) {
				ce(run(ctx, text))
			})
		}
	}).Desc(`simulate and analyze one program against -target, "-" reads stdin`).
		Args("program"))

	cmds.Define("repl", cmds.Func(func() {
		action = func(ctx context.Context, scope dscope.Scope) {
			scope.Call(func(repl REPL) {
				ce(repl(ctx))
			})
		}
	}).Desc("enter programs interactively"))

	cmds.Define("templates", cmds.Func(func() {
		for _, name := range programs.TemplateNames() {
			template, err := programs.Lookup(name)
			ce(err)
			fmt.Printf("%-16s %8d  %s\n", name, template.Manifest.Size(), template.Doc)
		}
		os.Exit(0)
	}).Desc("list program templates"))

	cmds.Define("patterns", cmds.Func(func() {
		for _, name := range patterns.Names() {
			p, _ := patterns.Lookup(name)
			fmt.Printf("%-10s %s\n", name, p.Bits)
		}
		for _, name := range patterns.SetNames() {
			set, _ := patterns.LookupSet(name)
			var names []string
			for _, p := range set.Patterns {
				names = append(names, p.Name)
			}
			fmt.Printf("%-10s [%s]\n", name, strings.Join(names, " "))
		}
		os.Exit(0)
	}).Desc("list patterns and test-sets"))
}

func main() {
	cmds.Execute(os.Args[1:])
	if action == nil {
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope = scope.Fork(printMatches)

	action(context.Background(), scope)
}

