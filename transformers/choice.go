package transformers

import "github.com/reusee/nibblers/nibbles"

// Choice runs left when test yields 1, right otherwise.
func Choice(test Transformer[Bit], left, right Transformer[Nibble]) Transformer[Update] {
	desc := "CHOOSE " + test.Describe() + " ? " + left.Describe() + " : " + right.Describe()
	return New(desc, func(own, other Nibble) Update {
		if test.Eval(own, other) == nibbles.On {
			return Update{
				Value:       left.Eval(own, other),
				Description: "← (" + left.Describe() + ")",
			}
		}
		return Update{
			Value:       right.Eval(own, other),
			Description: "→ (" + right.Describe() + ")",
		}
	})
}

func Constant(t Transformer[Nibble]) Transformer[Update] {
	return New("CONSTANT "+t.Describe(), func(own, other Nibble) Update {
		return Update{
			Value:       t.Eval(own, other),
			Description: t.Describe(),
		}
	})
}
