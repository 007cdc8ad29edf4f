package transformers

import "strings"

// Vars are the named parameters a program was built from. They are bookkeeping for
// clustering and never affect simulation.
type Vars map[string]any

type Program struct {
	A    Transformer[Update]
	B    Transformer[Update]
	Aux  AuxTransformer
	Gate Gate
	Vars Vars
}

type ProgramOption func(*Program)

func WithAux(aux AuxTransformer) ProgramOption {
	return func(p *Program) {
		p.Aux = aux
	}
}

func WithGate(gate Gate) ProgramOption {
	return func(p *Program) {
		p.Gate = gate
	}
}

func WithVars(vars Vars) ProgramOption {
	return func(p *Program) {
		p.Vars = vars
	}
}

func MakeProgram(a, b Transformer[Update], options ...ProgramOption) Program {
	p := Program{
		A: a,
		B: b,
	}
	for _, option := range options {
		option(&p)
	}
	return p
}

type Updates struct {
	A Update
	B Update
}

// Apply evaluates both sides. Each side sees its own nibble first.
func (p Program) Apply(a, b Nibble) Updates {
	return Updates{
		A: p.A.Eval(a, b),
		B: p.B.Eval(b, a),
	}
}

func (p Program) HasAux() bool {
	return p.Aux.Defined()
}

func (p Program) Description() string {
	var b strings.Builder
	b.WriteString("A: (" + p.A.Describe() + ")\n")
	b.WriteString("B: (" + p.B.Describe() + ")")
	if p.HasAux() {
		b.WriteString("\nAUX: (" + p.Aux.Describe() + ")")
	}
	if p.Gate.Period() > 1 {
		b.WriteString("\nGATE: " + p.Gate.Describe())
	}
	return b.String()
}
