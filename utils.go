package main

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MinBy finds the element with the smallest key, the first one on ties.
func MinBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) (T, bool) {
	if len(slice) == 0 {
		var zero T
		return zero, false
	}

	minVal := slice[0]
	minKey := keyFunc(minVal)
	for _, v := range slice[1:] {
		if k := keyFunc(v); k < minKey {
			minKey = k
			minVal = v
		}
	}
	return minVal, true
}
