package transformers

import (
	"strings"

	"github.com/reusee/nibblers/nibbles"
)

type logic[T Value] struct {
	and func(values []T) T
	or  func(values []T) T
	xor func(values []T) T
	not func(value T) T
}

var bitLogic = logic[Bit]{
	and: func(values []Bit) Bit {
		for _, v := range values {
			if v != nibbles.On {
				return nibbles.Off
			}
		}
		return nibbles.On
	},
	or: func(values []Bit) Bit {
		for _, v := range values {
			if v == nibbles.On {
				return nibbles.On
			}
		}
		return nibbles.Off
	},
	// parity, not pairwise chaining
	xor: func(values []Bit) Bit {
		ones := 0
		for _, v := range values {
			if v == nibbles.On {
				ones++
			}
		}
		return Bit(ones & 1)
	},
	not: func(value Bit) Bit {
		return nibbles.ToBit(value != nibbles.On)
	},
}

var nibbleLogic = logic[Nibble]{
	and: foldNibbles(func(a, b int) int { return a & b }),
	or:  foldNibbles(func(a, b int) int { return a | b }),
	xor: foldNibbles(func(a, b int) int { return a ^ b }),
	not: func(value Nibble) Nibble {
		return value.Not()
	},
}

func foldNibbles(op func(a, b int) int) func([]Nibble) Nibble {
	return func(values []Nibble) Nibble {
		acc := nibbles.ToInt(values[0])
		for _, v := range values[1:] {
			acc = op(acc, nibbles.ToInt(v))
		}
		return nibbles.ToNibble(acc)
	}
}

func logicFor[T Value]() logic[T] {
	switch KindOf[T]() {
	case KindBit:
		return any(bitLogic).(logic[T])
	case KindNibble:
		return any(nibbleLogic).(logic[T])
	}
	panic("unreachable")
}

func describeAll[T Result](prefix string, ts []Transformer[T]) string {
	descs := make([]string, 0, len(ts))
	for _, t := range ts {
		descs = append(descs, t.Describe())
	}
	return prefix + "(" + strings.Join(descs, ", ") + ")"
}

func combine[T Value](prefix string, ts []Transformer[T], op func([]T) T) Transformer[T] {
	if len(ts) == 0 {
		panic("no operands for " + prefix)
	}
	return New(describeAll(prefix, ts), func(own, other Nibble) T {
		values := make([]T, len(ts))
		for i, t := range ts {
			values[i] = t.Eval(own, other)
		}
		return op(values)
	})
}

func And[T Value](ts ...Transformer[T]) Transformer[T] {
	return combine("AND", ts, logicFor[T]().and)
}

func Or[T Value](ts ...Transformer[T]) Transformer[T] {
	return combine("OR", ts, logicFor[T]().or)
}

// Xor is parity over bits and a bitwise fold over nibbles.
func Xor[T Value](ts ...Transformer[T]) Transformer[T] {
	return combine("XOR", ts, logicFor[T]().xor)
}

func Not[T Value](t Transformer[T]) Transformer[T] {
	not := logicFor[T]().not
	return New("NOT("+t.Describe()+")", func(own, other Nibble) T {
		return not(t.Eval(own, other))
	})
}
