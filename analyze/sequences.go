package analyze

import (
	"strings"

	"github.com/reusee/nibblers/nibbles"
	"github.com/reusee/nibblers/simulate"
)

type Bit = nibbles.Bit

type SequenceName string

const (
	SeqCarriesA   SequenceName = "carries-a"
	SeqCarriesB   SequenceName = "carries-b"
	SeqOnesA      SequenceName = "ones-a"
	SeqTwosA      SequenceName = "twos-a"
	SeqFoursA     SequenceName = "fours-a"
	SeqEightsA    SequenceName = "eights-a"
	SeqOnesB      SequenceName = "ones-b"
	SeqTwosB      SequenceName = "twos-b"
	SeqFoursB     SequenceName = "fours-b"
	SeqEightsB    SequenceName = "eights-b"
	SeqAux        SequenceName = "aux"
	SeqXorCarries SequenceName = "xor-carries"
	SeqOrCarries  SequenceName = "or-carries"
	SeqAndCarries SequenceName = "and-carries"
)

type Sequence struct {
	Name SequenceName
	Bits []Bit
}

func (s Sequence) String() string {
	return Render(s.Bits)
}

func Render(bits []Bit) string {
	var b strings.Builder
	b.Grow(len(bits))
	for _, bit := range bits {
		if bit == nibbles.On {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func column(history simulate.History, fn func(simulate.Entry) Bit) []Bit {
	ret := make([]Bit, 0, len(history))
	for _, entry := range history {
		ret = append(ret, fn(entry))
	}
	return ret
}

func plane(history simulate.History, side func(simulate.Entry) nibbles.Nibble, idx nibbles.BitIndex) []Bit {
	return column(history, func(e simulate.Entry) Bit {
		return nibbles.MustDigit(side(e), idx)
	})
}

func zip(a, b []Bit, fn func(x, y bool) bool) []Bit {
	ret := make([]Bit, len(a))
	for i := range a {
		ret[i] = nibbles.ToBit(fn(a[i].Bool(), b[i].Bool()))
	}
	return ret
}

// Derive extracts every candidate sequence of a loop body, in a fixed order.
func Derive(history simulate.History, auxMode AuxMode) []Sequence {
	carriesA := column(history, func(e simulate.Entry) Bit { return e.CarryA })
	carriesB := column(history, func(e simulate.Entry) Bit { return e.CarryB })
	sideA := func(e simulate.Entry) nibbles.Nibble { return e.NibbleA }
	sideB := func(e simulate.Entry) nibbles.Nibble { return e.NibbleB }

	return []Sequence{
		{SeqCarriesA, carriesA},
		{SeqCarriesB, carriesB},
		{SeqOnesA, plane(history, sideA, 1)},
		{SeqTwosA, plane(history, sideA, 2)},
		{SeqFoursA, plane(history, sideA, 4)},
		{SeqEightsA, plane(history, sideA, 8)},
		{SeqOnesB, plane(history, sideB, 1)},
		{SeqTwosB, plane(history, sideB, 2)},
		{SeqFoursB, plane(history, sideB, 4)},
		{SeqEightsB, plane(history, sideB, 8)},
		{SeqAux, auxMode.apply(column(history, func(e simulate.Entry) Bit { return e.Aux }))},
		{SeqXorCarries, zip(carriesA, carriesB, func(x, y bool) bool { return x != y })},
		{SeqOrCarries, zip(carriesA, carriesB, func(x, y bool) bool { return x || y })},
		{SeqAndCarries, zip(carriesA, carriesB, func(x, y bool) bool { return x && y })},
	}
}

// Scan threads an accumulator through seq, emitting one bit per input.
func Scan[S any](seq []Bit, init S, fn func(S, Bit) (S, Bit)) []Bit {
	ret := make([]Bit, 0, len(seq))
	acc := init
	for _, bit := range seq {
		var out Bit
		acc, out = fn(acc, bit)
		ret = append(ret, out)
	}
	return ret
}

// GateToTrigger keeps only the first 1 of each contiguous run of 1s.
func GateToTrigger(seq []Bit) []Bit {
	return Scan(seq, nibbles.Off, func(prev Bit, bit Bit) (Bit, Bit) {
		return bit, nibbles.ToBit(bit == nibbles.On && prev == nibbles.Off)
	})
}

// EveryOther keeps the first, third, fifth... 1 and clears the rest.
func EveryOther(seq []Bit) []Bit {
	return Scan(seq, true, func(keep bool, bit Bit) (bool, Bit) {
		if bit == nibbles.Off {
			return keep, nibbles.Off
		}
		return !keep, nibbles.ToBit(keep)
	})
}

// Contains reports whether target appears in seq repeated n times.
func Contains(seq []Bit, target string, n int) bool {
	if len(seq) == 0 || target == "" {
		return false
	}
	return strings.Contains(strings.Repeat(Render(seq), max(n, 1)), target)
}
