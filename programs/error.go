package programs

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

var (
	ErrUnknownToken    = errors.New("unknown token")
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownTemplate = errors.New("unknown template")
)

type PosError struct {
	Err  error
	Pos  Pos
	Line string
}

func (p PosError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s", p.Err.Error(), p.Pos))
	if p.Line == "" {
		return sb.String()
	}
	sb.WriteString("\n")
	sb.WriteString(p.Line)
	sb.WriteString("\n")
	// caret
	for i, r := range []rune(p.Line) {
		if i >= p.Pos.Column-1 {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
	}
	sb.WriteString("^")
	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	var posErr PosError
	if errors.As(err, &posErr) {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}

func withLine(err error, line string) error {
	var posErr PosError
	if errors.As(err, &posErr) && posErr.Line == "" {
		posErr.Line = line
		return posErr
	}
	return err
}
