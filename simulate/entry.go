package simulate

import "github.com/reusee/nibblers/nibbles"

// Entry is one simulation step. Nibbles and integers are taken before the update.
type Entry struct {
	NibbleA nibbles.Nibble
	NibbleB nibbles.Nibble
	NA      int
	NB      int
	CarryA  nibbles.Bit
	CarryB  nibbles.Bit
	Aux     nibbles.Bit
	Phase   int

	DescriptionA   string
	DescriptionB   string
	DescriptionAux string
}

// Equal compares the state fields only; descriptions never take part.
func (e Entry) Equal(other Entry) bool {
	return e.NA == other.NA &&
		e.NB == other.NB &&
		e.Aux == other.Aux &&
		e.Phase == other.Phase
}

type History []Entry
