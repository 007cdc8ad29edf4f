package transformers

import (
	"fmt"

	"github.com/reusee/nibblers/nibbles"
)

func mustIndex(index nibbles.BitIndex) {
	if err := nibbles.CheckIndex(index); err != nil {
		panic(err)
	}
}

func OwnBit(index nibbles.BitIndex) Transformer[Bit] {
	mustIndex(index)
	return New(fmt.Sprintf("Self %d-bit", index), func(own, _ Nibble) Bit {
		return nibbles.MustDigit(own, index)
	})
}

func OtherBit(index nibbles.BitIndex) Transformer[Bit] {
	mustIndex(index)
	return New(fmt.Sprintf("Other %d-bit", index), func(_, other Nibble) Bit {
		return nibbles.MustDigit(other, index)
	})
}

func ConstantBit(b Bit) Transformer[Bit] {
	return New(b.String(), func(_, _ Nibble) Bit {
		return b
	})
}

func ConstantNibble(n int) Transformer[Nibble] {
	value := nibbles.ToNibble(n)
	return New(fmt.Sprint(n), func(_, _ Nibble) Nibble {
		return value
	})
}

func Own() Transformer[Nibble] {
	return New("Self", func(own, _ Nibble) Nibble {
		return own
	})
}

func Other() Transformer[Nibble] {
	return New("Other", func(_, other Nibble) Nibble {
		return other
	})
}
