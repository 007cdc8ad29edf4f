package configs

import (
	"errors"
	"fmt"
	"iter"
)

// First decodes the value at path from the highest priority source, or returns
// the zero value when no source sets it.
func First[T any](loader Loader, path string) (ret T) {
	if err := loader.AssignFirst(path, &ret); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return
		}
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return
}

// All yields the value at path from every source that sets it.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(fmt.Errorf("config %s: %w", path, err))
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Concat joins list values at path across sources, in priority order, dropping
// repeated elements.
func Concat[T comparable](loader Loader, path string) (ret []T) {
	seen := make(map[T]bool)
	for list := range All[[]T](loader, path) {
		for _, elem := range list {
			if seen[elem] {
				continue
			}
			seen[elem] = true
			ret = append(ret, elem)
		}
	}
	return
}
