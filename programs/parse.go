package programs

import (
	"fmt"
	"strings"

	"github.com/reusee/nibblers/transformers"
)

// Parse reads a program, one "SIDE: expression" per line:
//
//	A: CHOICE AND[x1,x4] +3 -2
//	B: CONSTANT +5
//	AUX: XOR[CA,CB]
//	GATE: 3:2
//
// A and B are required. Blank lines and lines starting with # are skipped.
func Parse(text string) (transformers.Program, error) {
	var program transformers.Program
	seen := make(map[string]bool)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lineNo := i + 1

		head, body, ok := strings.Cut(line, ":")
		if !ok {
			return program, withLine(WithPos(fmt.Errorf("missing side: %w", ErrSyntax), Pos{Line: lineNo, Column: 1}), line)
		}
		side := strings.ToUpper(strings.TrimSpace(head))
		if seen[side] {
			return program, withLine(WithPos(fmt.Errorf("duplicated %s: %w", side, ErrSyntax), Pos{Line: lineNo, Column: 1}), line)
		}
		seen[side] = true

		p := &parser{
			Tokenizer: newLineTokenizer(body, Pos{
				Line:   lineNo,
				Column: len([]rune(head)) + 2,
			}),
		}
		err := p.side(side, &program)
		if err == nil {
			err = p.end()
		}
		if err != nil {
			return program, withLine(err, line)
		}
	}

	for _, side := range []string{"A", "B"} {
		if !seen[side] {
			return program, fmt.Errorf("missing %s: %w", side, ErrSyntax)
		}
	}
	return program, nil
}

func (p *parser) side(side string, program *transformers.Program) (err error) {
	switch side {
	case "A":
		program.A, err = p.update()
	case "B":
		program.B, err = p.update()
	case "AUX":
		program.Aux, err = p.aux()
	case "GATE":
		program.Gate, err = p.gate()
	default:
		err = WithPos(fmt.Errorf("unknown side %q: %w", side, ErrUnknownToken), Pos{
			Line:   p.currPos.Line,
			Column: 1,
		})
	}
	return
}

// ParseUpdate parses a single update expression.
func ParseUpdate(expr string) (Update, error) {
	p := &parser{
		Tokenizer: newLineTokenizer(expr, Pos{Line: 1, Column: 1}),
	}
	update, err := p.update()
	if err == nil {
		err = p.end()
	}
	if err != nil {
		return Update{}, withLine(err, expr)
	}
	return update, nil
}

func MustParse(text string) transformers.Program {
	program, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return program
}
