package clusters

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/nibblers/transformers"
)

// ignoredKey names the target a program was built for; it never counts as a parameter.
const ignoredKey = "test"

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	return slices.Sorted(maps.Keys(m))
}

// Flatten lays out vars as scalars in key order. Nested maps expand into their
// sorted key and value pairs.
func Flatten(vars transformers.Vars) []any {
	var ret []any
	for _, key := range sortedKeys(vars) {
		if key == ignoredKey {
			continue
		}
		ret = appendValue(ret, vars[key])
	}
	return ret
}

func appendValue(ret []any, value any) []any {
	switch value := value.(type) {
	case transformers.BitMap:
		for _, k := range sortedKeys(value) {
			ret = append(ret, k, value[k])
		}
	case map[int]int:
		return appendValue(ret, transformers.BitMap(value))
	case map[string]any:
		for _, k := range sortedKeys(value) {
			ret = append(ret, k)
			ret = appendValue(ret, value[k])
		}
	case transformers.Vars:
		return appendValue(ret, map[string]any(value))
	case []int:
		for _, v := range value {
			ret = append(ret, v)
		}
	default:
		ret = append(ret, value)
	}
	return ret
}

// CalculateNearness zips the flattened vars of a and b and reports whether at most
// one, and at most two, positions differ. A length difference counts as a mismatch
// for every unpaired position.
func CalculateNearness(a, b transformers.Vars) (withinOne, withinTwo bool) {
	flatA := Flatten(a)
	flatB := Flatten(b)
	if len(flatA) == 0 || len(flatB) == 0 {
		return false, false
	}
	total := max(len(flatA), len(flatB))
	matches := 0
	for i := range min(len(flatA), len(flatB)) {
		if sameValue(flatA[i], flatB[i]) {
			matches++
		}
	}
	return matches >= total-1, matches >= total-2
}

// sameValue compares flattened values by their printed form, so slices and maps
// that survive flattening compare by content.
func sameValue(a, b any) bool {
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// DifferentVar returns the first parameter, in key order, whose value differs.
func DifferentVar(a, b transformers.Vars) (string, bool) {
	for _, key := range sortedKeys(a) {
		if key == ignoredKey {
			continue
		}
		other, ok := b[key]
		if !ok {
			return key, true
		}
		if fmt.Sprint(appendValue(nil, a[key])) != fmt.Sprint(appendValue(nil, other)) {
			return key, true
		}
	}
	return "", false
}
