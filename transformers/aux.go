package transformers

import "github.com/reusee/nibblers/nibbles"

type AuxInput struct {
	A      Nibble
	B      Nibble
	CarryA Bit
	CarryB Bit
}

// AuxTransformer computes the auxiliary bit of a step. Unlike side transformers it
// also sees the carries of the step.
type AuxTransformer struct {
	eval func(AuxInput) Bit
	desc string
}

func NewAux(desc string, eval func(AuxInput) Bit) AuxTransformer {
	return AuxTransformer{
		eval: eval,
		desc: desc,
	}
}

// Aux lifts a bit transformer, evaluated with A as own and B as other.
func Aux(t Transformer[Bit]) AuxTransformer {
	return NewAux(t.Describe(), func(in AuxInput) Bit {
		return t.Eval(in.A, in.B)
	})
}

func CarryA() AuxTransformer {
	return NewAux("A carry", func(in AuxInput) Bit {
		return in.CarryA
	})
}

func CarryB() AuxTransformer {
	return NewAux("B carry", func(in AuxInput) Bit {
		return in.CarryB
	})
}

func (a AuxTransformer) Defined() bool {
	return a.eval != nil
}

func (a AuxTransformer) Describe() string {
	return a.desc
}

func (a AuxTransformer) Eval(in AuxInput) BitUpdate {
	if a.eval == nil {
		return BitUpdate{}
	}
	return BitUpdate{
		Value:       a.eval(in),
		Description: a.desc,
	}
}

func combineAux(prefix string, ts []AuxTransformer, op func([]Bit) Bit) AuxTransformer {
	if len(ts) == 0 {
		panic("no operands for " + prefix)
	}
	desc := prefix + "("
	for i, t := range ts {
		if i > 0 {
			desc += ", "
		}
		desc += t.desc
	}
	desc += ")"
	return NewAux(desc, func(in AuxInput) Bit {
		values := make([]Bit, len(ts))
		for i, t := range ts {
			values[i] = t.eval(in)
		}
		return op(values)
	})
}

func AuxAnd(ts ...AuxTransformer) AuxTransformer {
	return combineAux("AND", ts, bitLogic.and)
}

func AuxOr(ts ...AuxTransformer) AuxTransformer {
	return combineAux("OR", ts, bitLogic.or)
}

func AuxXor(ts ...AuxTransformer) AuxTransformer {
	return combineAux("XOR", ts, bitLogic.xor)
}

func AuxNot(t AuxTransformer) AuxTransformer {
	return NewAux("NOT("+t.desc+")", func(in AuxInput) Bit {
		return nibbles.ToBit(t.eval(in) != nibbles.On)
	})
}
