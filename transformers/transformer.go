package transformers

import (
	"fmt"

	"github.com/reusee/nibblers/nibbles"
)

type (
	Bit    = nibbles.Bit
	Nibble = nibbles.Nibble
)

// Result is the set of things a transformer may produce.
type Result interface {
	Bit | Nibble | Update | BitUpdate
}

// Value is the subset of results the logic combinators operate on.
type Value interface {
	Bit | Nibble
}

type Kind uint8

const (
	KindBit Kind = iota + 1
	KindNibble
	KindUpdate
	KindBitUpdate
)

func (k Kind) String() string {
	switch k {
	case KindBit:
		return "bit"
	case KindNibble:
		return "nibble"
	case KindUpdate:
		return "update"
	case KindBitUpdate:
		return "bit update"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Transformer is a pure function of (own, other) nibbles paired with a description
// composed from its operands.
type Transformer[T Result] struct {
	eval func(own, other Nibble) T
	desc string
}

func New[T Result](desc string, eval func(own, other Nibble) T) Transformer[T] {
	return Transformer[T]{
		eval: eval,
		desc: desc,
	}
}

func (t Transformer[T]) Eval(own, other Nibble) T {
	if t.eval == nil {
		var zero T
		return zero
	}
	return t.eval(own, other)
}

func (t Transformer[T]) Describe() string {
	return t.desc
}

func (t Transformer[T]) Defined() bool {
	return t.eval != nil
}

func (t Transformer[T]) Kind() Kind {
	return KindOf[T]()
}

func (t Transformer[T]) String() string {
	return t.desc
}

func KindOf[T Result]() Kind {
	var zero T
	switch any(zero).(type) {
	case Bit:
		return KindBit
	case Nibble:
		return KindNibble
	case Update:
		return KindUpdate
	case BitUpdate:
		return KindBitUpdate
	}
	panic("unreachable")
}
