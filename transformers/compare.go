package transformers

import (
	"fmt"

	"github.com/reusee/nibblers/nibbles"
)

type Comparator interface {
	int | Transformer[Nibble]
}

func GreaterThan[C Comparator](t Transformer[Nibble], comparator C) Transformer[Bit] {
	switch c := any(comparator).(type) {
	case int:
		return New(fmt.Sprintf("%s > %d", t.Describe(), c), func(own, other Nibble) Bit {
			return nibbles.ToBit(t.Eval(own, other).Int() > c)
		})
	case Transformer[Nibble]:
		return New(fmt.Sprintf("%s > %s", t.Describe(), c.Describe()), func(own, other Nibble) Bit {
			return nibbles.ToBit(t.Eval(own, other).Int() > c.Eval(own, other).Int())
		})
	}
	panic("unreachable")
}

// Between holds when low < value < high.
func Between(t Transformer[Nibble], low, high int) Transformer[Bit] {
	return New(fmt.Sprintf("%d < %s < %d", low, t.Describe(), high), func(own, other Nibble) Bit {
		n := t.Eval(own, other).Int()
		return nibbles.ToBit(n > low && n < high)
	})
}

// Outside holds when value < low or value > high.
func Outside(t Transformer[Nibble], low, high int) Transformer[Bit] {
	return New(fmt.Sprintf("%s outside %d..%d", t.Describe(), low, high), func(own, other Nibble) Bit {
		n := t.Eval(own, other).Int()
		return nibbles.ToBit(n < low || n > high)
	})
}
