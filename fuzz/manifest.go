package fuzz

import (
	"iter"
	"maps"

	"github.com/reusee/nibblers/transformers"
)

// Dimension is one named parameter and the values it sweeps over.
type Dimension struct {
	Name   string
	Values []any
}

type Manifest []Dimension

func Dim(name string, values []any) Dimension {
	return Dimension{
		Name:   name,
		Values: values,
	}
}

// Range returns the integers from a to b inclusive.
func Range(a, b int) []any {
	ret := make([]any, 0, max(b-a+1, 0))
	for i := a; i <= b; i++ {
		ret = append(ret, i)
	}
	return ret
}

var Bits = []any{1, 2, 4, 8}

func (m Manifest) Size() int {
	if len(m) == 0 {
		return 0
	}
	n := 1
	for _, dim := range m {
		n *= len(dim.Values)
	}
	return n
}

// Distribute yields the cartesian product of the manifest. Earlier dimensions vary
// fastest.
func Distribute(m Manifest) iter.Seq2[int, transformers.Vars] {
	return func(yield func(int, transformers.Vars) bool) {
		size := m.Size()
		if size == 0 {
			return
		}
		indexes := make([]int, len(m))
		current := make(transformers.Vars, len(m))
		for _, dim := range m {
			current[dim.Name] = dim.Values[0]
		}
		for n := range size {
			if !yield(n, maps.Clone(current)) {
				return
			}
			// increment like an odometer, first dimension as the lowest digit
			for i, dim := range m {
				indexes[i]++
				if indexes[i] < len(dim.Values) {
					current[dim.Name] = dim.Values[indexes[i]]
					break
				}
				indexes[i] = 0
				current[dim.Name] = dim.Values[0]
			}
		}
	}
}
