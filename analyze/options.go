package analyze

import (
	"errors"
	"fmt"
)

var ErrUnknownOption = errors.New("unknown option")

// Restriction limits which derived sequences count towards InAny.
type Restriction uint8

const (
	RestrictAny Restriction = iota
	RestrictAux
	RestrictCarryA
	RestrictCarries
	RestrictSkipCarryB
)

var restrictionNames = []string{
	RestrictAny:        "any",
	RestrictAux:        "aux",
	RestrictCarryA:     "carry-a",
	RestrictCarries:    "carries",
	RestrictSkipCarryB: "skip-carry-b",
}

func (r Restriction) String() string {
	if int(r) < len(restrictionNames) {
		return restrictionNames[r]
	}
	return fmt.Sprintf("Restriction(%d)", r)
}

func (r *Restriction) UnmarshalText(text []byte) error {
	for i, name := range restrictionNames {
		if name == string(text) {
			*r = Restriction(i)
			return nil
		}
	}
	return fmt.Errorf("restriction %q: %w", text, ErrUnknownOption)
}

func (r Restriction) allows(name SequenceName) bool {
	switch r {
	case RestrictAux:
		return name == SeqAux
	case RestrictCarryA:
		return name == SeqCarriesA
	case RestrictCarries:
		return name == SeqCarriesA || name == SeqCarriesB
	case RestrictSkipCarryB:
		return name != SeqCarriesB
	}
	return true
}

// AuxMode selects how the aux channel is post-processed before matching.
type AuxMode uint8

const (
	AuxRaw AuxMode = iota
	AuxTrigger
	AuxEveryOther
)

var auxModeNames = []string{
	AuxRaw:        "raw",
	AuxTrigger:    "trigger",
	AuxEveryOther: "every-other",
}

func (m AuxMode) String() string {
	if int(m) < len(auxModeNames) {
		return auxModeNames[m]
	}
	return fmt.Sprintf("AuxMode(%d)", m)
}

func (m *AuxMode) UnmarshalText(text []byte) error {
	for i, name := range auxModeNames {
		if name == string(text) {
			*m = AuxMode(i)
			return nil
		}
	}
	return fmt.Errorf("aux mode %q: %w", text, ErrUnknownOption)
}

func (m AuxMode) apply(seq []Bit) []Bit {
	switch m {
	case AuxTrigger:
		return GateToTrigger(seq)
	case AuxEveryOther:
		return EveryOther(seq)
	}
	return seq
}

type Options struct {
	// Repeat is how many times the loop body is concatenated before matching
	Repeat int
	// StrictOrder matches against a single copy of the loop body
	StrictOrder bool
	Restriction Restriction
	AuxMode     AuxMode
}

const DefaultRepeat = 10

func (o *Options) repeat() int {
	if o == nil {
		return DefaultRepeat
	}
	if o.StrictOrder {
		return 1
	}
	if o.Repeat > 0 {
		return o.Repeat
	}
	return DefaultRepeat
}
