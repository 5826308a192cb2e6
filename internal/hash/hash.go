package hash

import "hash/maphash"

// ComparableHashAlgorithm - The internally used hash algorithm, implemented using maphash.Comparable with a seed
// chosen at creation. It works for any comparable key type. Hash values are only stable for one instance, which is
// fine since a table keeps its algorithm instance for its whole lifetime and shares it with its clones.
type ComparableHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHashAlgorithm - Returns a pointer to a new ComparableHashAlgorithm instance
func NewComparableHashAlgorithm[K comparable]() *ComparableHashAlgorithm[K] {
	return &ComparableHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// HashFunc - Given key it generates a hash value over the full uint64 range
func (C *ComparableHashAlgorithm[K]) HashFunc(key K) uint64 {
	return maphash.Comparable(C.seed, key)
}
