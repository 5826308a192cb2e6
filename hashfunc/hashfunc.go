package hashfunc

import "hash/crc32"

// HashAlgorithm - Interface that permits a user of the hash table to supply a custom hash function
// suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a hash value.
	// The hash table maps the value to a bucket by taking it modulo the current number of buckets, hence
	// the function must be deterministic for the lifetime of the table and should spread keys uniformly over
	// the full uint64 range (or at least over a range much larger than the number of buckets).
	HashFunc(key K) uint64
}

// CRC32HashAlgorithm - A hash algorithm for string keys implemented using crc32.ChecksumIEEE over the bytes of the key.
// The result is deterministic across processes, which the internal default algorithm is not.
type CRC32HashAlgorithm[K ~string] struct{}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm[K ~string]() *CRC32HashAlgorithm[K] {
	return &CRC32HashAlgorithm[K]{}
}

// HashFunc - Given key it generates a hash value in the range 0 to 2^32 - 1
func (C *CRC32HashAlgorithm[K]) HashFunc(key K) uint64 {
	return uint64(crc32.ChecksumIEEE([]byte(key)))
}
