package programs

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode"
)

type Tokenizer struct {
	source  *bufio.Reader
	current *Token

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source io.Reader, pos Pos) *Tokenizer {
	return &Tokenizer{
		source:  bufio.NewReader(source),
		currPos: pos,
	}
}

func newLineTokenizer(line string, pos Pos) *Tokenizer {
	return NewTokenizer(strings.NewReader(line), pos)
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}
	t.prevPos = t.currPos
	t.currPos.Column++
	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

func (t *Tokenizer) Current() (*Token, error) {
	if t.current == nil {
		var err error
		t.current, err = t.parseNext()
		if err != nil {
			return nil, err
		}
	}
	return t.current, nil
}

func (t *Tokenizer) Consume() {
	t.current = nil
}

func isSymbol(r rune) bool {
	switch r {
	case '[', ']', ',', ';', '=', ':', '*':
		return true
	}
	return false
}

func (t *Tokenizer) parseNext() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return nil, err
	}

	switch {
	case r == '#':
		t.skipRest()
		return &Token{Kind: TokenEOF, Pos: startPos}, nil
	case unicode.IsDigit(r):
		t.unreadRune()
		return t.parseNumber(startPos, "")
	case r == '+' || r == '-':
		next, err := t.readRune()
		if err == nil {
			t.unreadRune()
			if unicode.IsDigit(next) {
				sign := ""
				if r == '-' {
					sign = "-"
				}
				return t.parseNumber(startPos, sign)
			}
		}
	case isSymbol(r):
		return &Token{
			Kind: TokenSymbol,
			Text: string(r),
			Pos:  startPos,
		}, nil
	case unicode.IsLetter(r):
		t.unreadRune()
		return t.parseIdentifier()
	}

	return &Token{Kind: TokenInvalid, Text: string(r), Pos: startPos}, nil
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) skipRest() {
	for {
		if _, err := t.readRune(); err != nil {
			return
		}
	}
}

func (t *Tokenizer) parseIdentifier() (*Token, error) {
	startPos := t.currPos
	var buf bytes.Buffer
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenIdentifier,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) parseNumber(startPos Pos, sign string) (*Token, error) {
	var buf bytes.Buffer
	buf.WriteString(sign)
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !unicode.IsDigit(r) {
			t.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return &Token{
		Kind: TokenNumber,
		Text: buf.String(),
		Pos:  startPos,
	}, nil
}
