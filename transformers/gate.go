package transformers

import "fmt"

// Advance tells which sides take their computed update on a step.
type Advance struct {
	A bool
	B bool
}

// Gate decides per step which sides advance. The zero Gate advances both sides
// every step.
type Gate struct {
	events []Advance
	desc   string
}

func Always() Gate {
	return Gate{}
}

// Polyrhythm lets A tick a times and B tick b times per common cycle. Steps walk the
// merged tick events, so 3:2 yields both, A, B, A, then both again.
func Polyrhythm(a, b int) Gate {
	if a <= 0 || b <= 0 {
		panic(fmt.Errorf("invalid polyrhythm %d:%d", a, b))
	}
	cycle := lcm(a, b)
	intervalA := cycle / a
	intervalB := cycle / b
	var events []Advance
	for t := range cycle {
		advance := Advance{
			A: t%intervalA == 0,
			B: t%intervalB == 0,
		}
		if advance.A || advance.B {
			events = append(events, advance)
		}
	}
	return Gate{
		events: events,
		desc:   fmt.Sprintf("%d:%d", a, b),
	}
}

func (g Gate) At(step int) Advance {
	if len(g.events) == 0 {
		return Advance{A: true, B: true}
	}
	return g.events[g.Phase(step)]
}

// Phase is the position of step within the gate cycle.
func (g Gate) Phase(step int) int {
	return step % g.Period()
}

func (g Gate) Period() int {
	return max(len(g.events), 1)
}

func (g Gate) Describe() string {
	if g.desc == "" {
		return "always"
	}
	return g.desc
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
