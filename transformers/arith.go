package transformers

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/nibblers/nibbles"
)

// Addend is a literal integer, a literal nibble or a nibble transformer.
type Addend interface {
	int | Nibble | Transformer[Nibble]
}

func resolve[A Addend](addend A) (func(own, other Nibble) Nibble, string) {
	switch a := any(addend).(type) {
	case int:
		n := nibbles.ToNibble(a)
		return func(_, _ Nibble) Nibble {
			return n
		}, fmt.Sprint(a)
	case Nibble:
		return func(_, _ Nibble) Nibble {
			return a
		}, fmt.Sprint(a.Int())
	case Transformer[Nibble]:
		// undefined transformer resolves to zero
		return a.Eval, a.Describe()
	}
	panic("unreachable")
}

func Add[A Addend](addend A) Transformer[Nibble] {
	value, desc := resolve(addend)
	return New("Add "+desc, func(own, other Nibble) Nibble {
		return nibbles.AddBits(own, value(own, other))
	})
}

// Shift feeds a computed bit into the 1-bit position of the own nibble, dropping the
// 8-bit, like a 4-bit shift register.
func Shift(t Transformer[Bit]) Transformer[Nibble] {
	return New("SHIFT "+t.Describe(), func(own, other Nibble) Nibble {
		return own.Shift(t.Eval(own, other))
	})
}

func ShiftIn(b Bit) Transformer[Nibble] {
	return Shift(ConstantBit(b))
}

type Source uint8

const (
	SourceOwn Source = iota
	SourceOther
)

func (s Source) String() string {
	if s == SourceOther {
		return "Other"
	}
	return "Self"
}

// BitMap maps a positional weight to the amount added when that bit is set, and the
// negated weight to the amount added when it is clear. Missing entries add zero.
type BitMap map[int]int

func (m BitMap) String() string {
	keys := slices.Sorted(maps.Keys(m))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d:%d", k, m[k]))
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (m BitMap) Addend(n Nibble) int {
	sum := 0
	for _, weight := range nibbles.Weights {
		if nibbles.MustDigit(n, weight) == nibbles.On {
			sum += m[int(weight)]
		} else {
			sum += m[-int(weight)]
		}
	}
	return sum
}

// MapBits adds base plus a data dependent amount derived from the bits of the source
// nibble.
func MapBits(m BitMap, base int, source Source) Transformer[Nibble] {
	m = maps.Clone(m)
	desc := fmt.Sprintf("MAP%s %s + %d", m, source, base)
	return New(desc, func(own, other Nibble) Nibble {
		from := own
		if source == SourceOther {
			from = other
		}
		return nibbles.Add(own, base+m.Addend(from))
	})
}
