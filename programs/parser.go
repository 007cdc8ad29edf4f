package programs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reusee/nibblers/nibbles"
	"github.com/reusee/nibblers/transformers"
)

type (
	Bit    = transformers.Transformer[transformers.Bit]
	Nibble = transformers.Transformer[transformers.Nibble]
	Update = transformers.Transformer[transformers.Update]
)

type parser struct {
	*Tokenizer
}

func (p *parser) current() (*Token, error) {
	return p.Current()
}

func (p *parser) next() (*Token, error) {
	token, err := p.Current()
	if err != nil {
		return nil, err
	}
	p.Consume()
	return token, nil
}

func (p *parser) expect(text string) error {
	token, err := p.next()
	if err != nil {
		return err
	}
	if !token.Is(TokenSymbol, text) {
		return WithPos(fmt.Errorf("expecting %q, got %s: %w", text, token, ErrSyntax), token.Pos)
	}
	return nil
}

func (p *parser) accept(text string) (bool, error) {
	token, err := p.current()
	if err != nil {
		return false, err
	}
	if token.Is(TokenSymbol, text) {
		p.Consume()
		return true, nil
	}
	return false, nil
}

func (p *parser) end() error {
	token, err := p.current()
	if err != nil {
		return err
	}
	if token.Kind != TokenEOF {
		return WithPos(fmt.Errorf("trailing %s: %w", token, ErrSyntax), token.Pos)
	}
	return nil
}

func unknown(token *Token) error {
	if token.Kind == TokenEOF {
		return WithPos(fmt.Errorf("unexpected end of line: %w", ErrSyntax), token.Pos)
	}
	return WithPos(fmt.Errorf("%s: %w", token, ErrUnknownToken), token.Pos)
}

func (p *parser) int() (int, error) {
	token, err := p.next()
	if err != nil {
		return 0, err
	}
	if token.Kind != TokenNumber {
		return 0, WithPos(fmt.Errorf("expecting number, got %s: %w", token, ErrSyntax), token.Pos)
	}
	n, err := strconv.Atoi(token.Text)
	if err != nil {
		return 0, WithPos(fmt.Errorf("%s: %w", err, ErrSyntax), token.Pos)
	}
	return n, nil
}

func (p *parser) index(token *Token, text string) (nibbles.BitIndex, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, WithPos(fmt.Errorf("%q: %w", text, nibbles.ErrInvalidDigit), token.Pos)
	}
	index := nibbles.BitIndex(n)
	if err := nibbles.CheckIndex(index); err != nil {
		return 0, WithPos(err, token.Pos)
	}
	return index, nil
}

// list parses a bracketed, comma separated list.
func list[T any](p *parser, item func() (T, error)) ([]T, error) {
	if err := p.expect("["); err != nil {
		return nil, err
	}
	var ret []T
	if ok, err := p.accept("]"); err != nil {
		return nil, err
	} else if ok {
		return ret, nil
	}
	for {
		v, err := item()
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
		token, err := p.next()
		if err != nil {
			return nil, err
		}
		if token.Is(TokenSymbol, "]") {
			return ret, nil
		}
		if !token.Is(TokenSymbol, ",") {
			return nil, WithPos(fmt.Errorf("expecting \",\" or \"]\", got %s: %w", token, ErrSyntax), token.Pos)
		}
	}
}

// arity checks the operand count; a negative most means unbounded.
func arity[T any](token *Token, args []T, least, most int) error {
	if len(args) < least || (most >= 0 && len(args) > most) {
		return WithPos(fmt.Errorf("wrong number of operands for %s: %d: %w", token.Text, len(args), ErrSyntax), token.Pos)
	}
	return nil
}

func (p *parser) update() (Update, error) {
	token, err := p.next()
	if err != nil {
		return Update{}, err
	}
	if token.Kind != TokenIdentifier {
		return Update{}, unknown(token)
	}
	switch strings.ToUpper(token.Text) {
	case "CHOICE", "CHOOSE":
		test, err := p.bit()
		if err != nil {
			return Update{}, err
		}
		left, err := p.nibble()
		if err != nil {
			return Update{}, err
		}
		right, err := p.nibble()
		if err != nil {
			return Update{}, err
		}
		return transformers.Choice(test, left, right), nil
	case "CONSTANT":
		value, err := p.nibble()
		if err != nil {
			return Update{}, err
		}
		return transformers.Constant(value), nil
	}
	return Update{}, unknown(token)
}

func (p *parser) bit() (Bit, error) {
	token, err := p.next()
	if err != nil {
		return Bit{}, err
	}

	if token.Is(TokenSymbol, "*") {
		digit, err := p.next()
		if err != nil {
			return Bit{}, err
		}
		if digit.Kind != TokenNumber {
			return Bit{}, WithPos(fmt.Errorf("%s: %w", digit, nibbles.ErrInvalidDigit), digit.Pos)
		}
		index, err := p.index(digit, digit.Text)
		if err != nil {
			return Bit{}, err
		}
		return transformers.OwnBit(index), nil
	}
	if token.Kind == TokenNumber {
		switch token.Text {
		case "0":
			return transformers.ConstantBit(nibbles.Off), nil
		case "1":
			return transformers.ConstantBit(nibbles.On), nil
		}
		return Bit{}, WithPos(fmt.Errorf("%s is not a bit: %w", token, ErrSyntax), token.Pos)
	}
	if token.Kind != TokenIdentifier {
		return Bit{}, unknown(token)
	}

	name := strings.ToUpper(token.Text)
	if rest, ok := strings.CutPrefix(name, "X"); ok && rest != "" && rest[0] >= '0' && rest[0] <= '9' {
		index, err := p.index(token, rest)
		if err != nil {
			return Bit{}, err
		}
		return transformers.OtherBit(index), nil
	}

	switch name {
	case "AND", "OR", "XOR", "NOT":
		args, err := list(p, p.bit)
		if err != nil {
			return Bit{}, err
		}
		return bitLogic(token, name, args)
	case "GT", "GTE":
		args, err := list(p, p.comparand)
		if err != nil {
			return Bit{}, err
		}
		if err := arity(token, args, 1, 2); err != nil {
			return Bit{}, err
		}
		subject := transformers.Own()
		if len(args) == 2 {
			if args[0].literal {
				return Bit{}, WithPos(fmt.Errorf("%s subject must be a nibble: %w", name, ErrSyntax), token.Pos)
			}
			subject = args[0].nibble
			args = args[1:]
		}
		c := args[0]
		if c.literal {
			if name == "GTE" {
				return transformers.GreaterThan(subject, c.value-1), nil
			}
			return transformers.GreaterThan(subject, c.value), nil
		}
		if name == "GTE" {
			return transformers.Not(transformers.GreaterThan(c.nibble, subject)), nil
		}
		return transformers.GreaterThan(subject, c.nibble), nil
	case "BETWEEN", "OUTSIDE":
		args, err := list(p, p.int)
		if err != nil {
			return Bit{}, err
		}
		if err := arity(token, args, 2, 2); err != nil {
			return Bit{}, err
		}
		if name == "BETWEEN" {
			return transformers.Between(transformers.Own(), args[0], args[1]), nil
		}
		return transformers.Outside(transformers.Own(), args[0], args[1]), nil
	case "EVEN", "ODD":
		if ok, err := p.accept("["); err != nil {
			return Bit{}, err
		} else if ok {
			if err := p.expect("]"); err != nil {
				return Bit{}, err
			}
		}
		if name == "ODD" {
			return transformers.OwnBit(1), nil
		}
		return transformers.Not(transformers.OwnBit(1)), nil
	case "CA", "CB":
		return Bit{}, WithPos(fmt.Errorf("%s is only valid in AUX: %w", token.Text, ErrSyntax), token.Pos)
	}

	return Bit{}, unknown(token)
}

func bitLogic(token *Token, name string, args []Bit) (Bit, error) {
	if name == "NOT" {
		if err := arity(token, args, 1, 1); err != nil {
			return Bit{}, err
		}
		return transformers.Not(args[0]), nil
	}
	if err := arity(token, args, 1, -1); err != nil {
		return Bit{}, err
	}
	switch name {
	case "AND":
		return transformers.And(args...), nil
	case "OR":
		return transformers.Or(args...), nil
	}
	return transformers.Xor(args...), nil
}

type comparand struct {
	literal bool
	value   int
	nibble  Nibble
}

func (p *parser) comparand() (comparand, error) {
	token, err := p.current()
	if err != nil {
		return comparand{}, err
	}
	if token.Kind == TokenNumber {
		n, err := p.int()
		if err != nil {
			return comparand{}, err
		}
		return comparand{literal: true, value: n}, nil
	}
	nibble, err := p.nibble()
	if err != nil {
		return comparand{}, err
	}
	return comparand{nibble: nibble}, nil
}

func (p *parser) nibble() (Nibble, error) {
	token, err := p.next()
	if err != nil {
		return Nibble{}, err
	}
	if token.Kind == TokenNumber {
		n, err := strconv.Atoi(token.Text)
		if err != nil {
			return Nibble{}, WithPos(fmt.Errorf("%s: %w", err, ErrSyntax), token.Pos)
		}
		return transformers.Add(n), nil
	}
	if token.Kind != TokenIdentifier {
		return Nibble{}, unknown(token)
	}

	name := strings.ToUpper(token.Text)
	switch name {
	case "SELF":
		return transformers.Own(), nil
	case "OTHER":
		return transformers.Other(), nil
	case "ADD":
		args, err := list(p, p.nibble)
		if err != nil {
			return Nibble{}, err
		}
		if err := arity(token, args, 1, 1); err != nil {
			return Nibble{}, err
		}
		return transformers.Add(args[0]), nil
	case "SHIFT":
		args, err := list(p, p.bit)
		if err != nil {
			return Nibble{}, err
		}
		if err := arity(token, args, 1, 1); err != nil {
			return Nibble{}, err
		}
		return transformers.Shift(args[0]), nil
	case "AND", "OR", "XOR", "NOT":
		args, err := list(p, p.nibble)
		if err != nil {
			return Nibble{}, err
		}
		if name == "NOT" {
			if err := arity(token, args, 1, 1); err != nil {
				return Nibble{}, err
			}
			return transformers.Not(args[0]), nil
		}
		if err := arity(token, args, 1, -1); err != nil {
			return Nibble{}, err
		}
		switch name {
		case "AND":
			return transformers.And(args...), nil
		case "OR":
			return transformers.Or(args...), nil
		}
		return transformers.Xor(args...), nil
	case "MAP", "XMAP":
		source := transformers.SourceOwn
		if name == "XMAP" {
			source = transformers.SourceOther
		}
		return p.bitMap(source)
	}

	return Nibble{}, unknown(token)
}

// bitMap parses [w=v,...;base]. A negative weight applies when the bit is clear.
func (p *parser) bitMap(source transformers.Source) (Nibble, error) {
	if err := p.expect("["); err != nil {
		return Nibble{}, err
	}
	m := make(transformers.BitMap)
	base := 0
	for {
		token, err := p.current()
		if err != nil {
			return Nibble{}, err
		}
		if token.Is(TokenSymbol, "]") {
			p.Consume()
			break
		}
		if token.Is(TokenSymbol, ";") {
			p.Consume()
			if base, err = p.int(); err != nil {
				return Nibble{}, err
			}
			if err := p.expect("]"); err != nil {
				return Nibble{}, err
			}
			break
		}

		weight, err := p.int()
		if err != nil {
			return Nibble{}, err
		}
		if _, err := p.index(token, strconv.Itoa(abs(weight))); err != nil {
			return Nibble{}, err
		}
		if err := p.expect("="); err != nil {
			return Nibble{}, err
		}
		value, err := p.int()
		if err != nil {
			return Nibble{}, err
		}
		m[weight] = value

		if _, err := p.accept(","); err != nil {
			return Nibble{}, err
		}
	}
	return transformers.MapBits(m, base, source), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (p *parser) aux() (transformers.AuxTransformer, error) {
	token, err := p.current()
	if err != nil {
		return transformers.AuxTransformer{}, err
	}
	if token.Kind == TokenIdentifier {
		name := strings.ToUpper(token.Text)
		switch name {
		case "CA":
			p.Consume()
			return transformers.CarryA(), nil
		case "CB":
			p.Consume()
			return transformers.CarryB(), nil
		case "AND", "OR", "XOR", "NOT":
			p.Consume()
			args, err := list(p, p.aux)
			if err != nil {
				return transformers.AuxTransformer{}, err
			}
			if name == "NOT" {
				if err := arity(token, args, 1, 1); err != nil {
					return transformers.AuxTransformer{}, err
				}
				return transformers.AuxNot(args[0]), nil
			}
			if err := arity(token, args, 1, -1); err != nil {
				return transformers.AuxTransformer{}, err
			}
			switch name {
			case "AND":
				return transformers.AuxAnd(args...), nil
			case "OR":
				return transformers.AuxOr(args...), nil
			}
			return transformers.AuxXor(args...), nil
		}
	}
	bit, err := p.bit()
	if err != nil {
		return transformers.AuxTransformer{}, err
	}
	return transformers.Aux(bit), nil
}

func (p *parser) gate() (transformers.Gate, error) {
	token, err := p.current()
	if err != nil {
		return transformers.Gate{}, err
	}
	if token.Kind == TokenIdentifier && strings.EqualFold(token.Text, "always") {
		p.Consume()
		return transformers.Always(), nil
	}
	a, err := p.int()
	if err != nil {
		return transformers.Gate{}, err
	}
	if err := p.expect(":"); err != nil {
		return transformers.Gate{}, err
	}
	b, err := p.int()
	if err != nil {
		return transformers.Gate{}, err
	}
	if a <= 0 || b <= 0 {
		return transformers.Gate{}, WithPos(fmt.Errorf("gate %d:%d: %w", a, b, ErrSyntax), token.Pos)
	}
	return transformers.Polyrhythm(a, b), nil
}
