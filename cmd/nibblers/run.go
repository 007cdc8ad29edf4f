package main

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/nibblers/analyze"
	"github.com/reusee/nibblers/debugs"
	"github.com/reusee/nibblers/logs"
	"github.com/reusee/nibblers/patterns"
	"github.com/reusee/nibblers/programs"
	"github.com/reusee/nibblers/reports"
	"github.com/reusee/nibblers/rhythmconfigs"
	"github.com/reusee/nibblers/simulate"
	"golang.org/x/term"
)

type Run func(ctx context.Context, text string) error

func (Module) Run(
	run simulate.Simulate,
	check analyze.Analyze,
	targetNames rhythmconfigs.Targets,
	output reports.Output,
	tap debugs.Tap,
) Run {
	return func(ctx context.Context, text string) error {
		program, err := programs.Parse(text)
		if err != nil {
			return err
		}
		var targets []patterns.Pattern
		for _, name := range targetNames {
			resolved, err := patterns.Resolve(name)
			if err != nil {
				return err
			}
			targets = append(targets, resolved...)
		}
		state := run(program)
		output = output.WithTables(true)
		var analyses []*analyze.Analysis
		for _, p := range targets {
			analysis := check(state, program, p)
			analyses = append(analyses, analysis)
			if err := output.Match(analysis); err != nil {
				return err
			}
			if !analysis.InAny {
				if err := output.Line("no match for %s", p.Name); err != nil {
					return err
				}
			}
		}
		if *tapFlag {
			tap(ctx, "run", map[string]any{
				"program":  program,
				"state":    state,
				"analyses": analyses,
			})
		}
		return nil
	}
}

// readProgram takes the program from args, or from stdin for "-". Literal \n
// separates lines.
func readProgram(arg string) (string, error) {
	if arg != "-" {
		return strings.ReplaceAll(arg, `\n`, "\n"), nil
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errors.New("no program on stdin")
	}
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

type REPL func(ctx context.Context) error

// REPL collects program lines; an empty line runs them.
func (Module) REPL(
	run Run,
	logger logs.Logger,
) REPL {
	return func(ctx context.Context) error {
		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		var historyPath string
		if dir, err := os.UserConfigDir(); err != nil {
			logger.Warn("get history path error", "err", err)
		} else {
			historyPath = filepath.Join(dir, "nibblers-history")
			if f, err := os.Open(historyPath); err == nil {
				line.ReadHistory(f)
				f.Close()
			}
		}
		defer func() {
			if historyPath == "" {
				return
			}
			if f, err := os.Create(historyPath); err != nil {
				logger.Warn("create history file error", "err", err)
			} else {
				line.WriteHistory(f)
				f.Close()
			}
		}()

		var lines []string
		for {
			prompt := ">> "
			if len(lines) > 0 {
				prompt = ".. "
			}
			input, err := line.Prompt(prompt)
			if err != nil {
				switch err {
				case io.EOF, liner.ErrPromptAborted:
					return nil
				}
				return err
			}
			input = strings.TrimSpace(input)

			switch input {
			case "/quit", "/exit":
				return nil
			case "/reset":
				lines = lines[:0]
				continue
			case "":
				if len(lines) == 0 {
					continue
				}
				if err := run(ctx, strings.Join(lines, "\n")); err != nil {
					logger.Error("run", "error", err)
				}
				lines = lines[:0]
				continue
			}

			line.AppendHistory(input)
			lines = append(lines, input)
		}
	}
}
