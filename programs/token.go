package programs

import "fmt"

type Pos struct {
	Line   int
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenEOF
	TokenIdentifier
	TokenNumber
	TokenSymbol
)

type Token struct {
	Kind TokenKind
	Text string
	Pos  Pos
}

func (t *Token) Is(kind TokenKind, text string) bool {
	return t.Kind == kind && t.Text == text
}

func (t *Token) String() string {
	if t.Kind == TokenEOF {
		return "end of line"
	}
	return fmt.Sprintf("%q", t.Text)
}
