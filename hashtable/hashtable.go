package hashtable

import (
	"github.com/gostonefire/containers/errs"
	"github.com/gostonefire/containers/hashfunc"
	"github.com/gostonefire/containers/internal/conf"
	"github.com/gostonefire/containers/internal/hash"
	"github.com/gostonefire/containers/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultCapacity - Number of buckets in a table created by NewHashTable, also the floor below which a table never shrinks
const DefaultCapacity = conf.TableDefaultCapacity

// entry - One key/value pair in a bucket chain. Each entry owns the entry it points to.
type entry[K comparable, V comparable] struct {
	key   K
	value V
	next  *entry[K, V]
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Entries is the total number of key/value pairs stored
//   - Buckets is the number of buckets in the table
//   - UsedBuckets is the number of buckets holding at least one entry
//   - LongestChain is the length of the longest bucket chain
//   - LoadFactor is Entries divided by Buckets
//   - BucketDistribution is the number of entries stored in each bucket, nil unless asked for
type HashTableStat struct {
	Entries            int
	Buckets            int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int
}

// HashTable - An unordered key to value map over an array of separately chained buckets.
// The table doubles its number of buckets when a put finds it more than 75% full and halves it when a remove
// leaves it less than 25% full, as long as it stays above the default capacity.
type HashTable[K comparable, V comparable] struct {
	table         []*entry[K, V]
	size          int
	hashAlgorithm hashfunc.HashAlgorithm[K]
	log           zerolog.Logger
}

// NewHashTable - Returns a pointer to a new empty HashTable with the default capacity and the internal hash algorithm
func NewHashTable[K comparable, V comparable]() *HashTable[K, V] {
	return &HashTable[K, V]{
		table:         make([]*entry[K, V], conf.TableDefaultCapacity),
		hashAlgorithm: hash.NewComparableHashAlgorithm[K](),
		log:           zerolog.Nop(),
	}
}

// NewHashTableWithCapacity - Returns a pointer to a new empty HashTable.
//   - capacity is the initial number of buckets, must be at least 2
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil selects the internal one
//
// It returns:
//   - hashTable is a pointer to the created HashTable
//   - err is of type errs.InvalidCapacity if capacity is too small
func NewHashTableWithCapacity[K comparable, V comparable](
	capacity int,
	hashAlgorithm hashfunc.HashAlgorithm[K],
) (
	hashTable *HashTable[K, V],
	err error,
) {
	if capacity < conf.TableMinCapacity {
		err = errors.WithStack(errs.BelowMinimum(capacity, conf.TableMinCapacity))
		return
	}

	// If no HashAlgorithm was given then use the default internal
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewComparableHashAlgorithm[K]()
	}

	hashTable = &HashTable[K, V]{
		table:         make([]*entry[K, V], capacity),
		hashAlgorithm: hashAlgorithm,
		log:           zerolog.Nop(),
	}

	return
}

// SetLogger - Sets the logger receiving debug events on rehashing and clearing
func (H *HashTable[K, V]) SetLogger(log zerolog.Logger) {
	H.log = log
}

// Size - Returns the number of key/value pairs
func (H *HashTable[K, V]) Size() int {
	return H.size
}

// IsEmpty - Returns true if the table holds no key/value pairs
func (H *HashTable[K, V]) IsEmpty() bool {
	return H.size == 0
}

// Capacity - Returns the current number of buckets
func (H *HashTable[K, V]) Capacity() int {
	return len(H.table)
}

// LoadFactor - Returns the number of key/value pairs divided by the number of buckets
func (H *HashTable[K, V]) LoadFactor() float64 {
	return utils.LoadFactor(H.size, len(H.table))
}

// Clear - Releases all entries and reinitializes the table with the given number of buckets.
//   - capacity is the new number of buckets, must be at least 2, use DefaultCapacity for the default
//
// It returns:
//   - err is of type errs.InvalidCapacity if capacity is too small, in which case the table is left untouched
func (H *HashTable[K, V]) Clear(capacity int) (err error) {
	if capacity < conf.TableMinCapacity {
		err = errors.WithStack(errs.BelowMinimum(capacity, conf.TableMinCapacity))
		return
	}

	H.log.Debug().Int("size", H.size).Int("from", len(H.table)).Int("to", capacity).Msg("hash table cleared")

	H.table = make([]*entry[K, V], capacity)
	H.size = 0

	return
}

// Clone - Returns a deep copy with the same number of buckets and the same chain order in every bucket.
// The copy shares the hash algorithm instance, which is what keeps its bucket positions valid.
func (H *HashTable[K, V]) Clone() *HashTable[K, V] {
	return &HashTable[K, V]{
		table:         cloneTable(H.table),
		size:          H.size,
		hashAlgorithm: H.hashAlgorithm,
		log:           H.log,
	}
}

// Assign - Replaces the content with a deep copy of other, taking over its number of buckets and hash algorithm.
// Assigning a table to itself changes nothing.
func (H *HashTable[K, V]) Assign(other *HashTable[K, V]) {
	if H == other {
		return
	}

	H.table = cloneTable(other.table)
	H.size = other.size
	H.hashAlgorithm = other.hashAlgorithm
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity() with number of entries per bucket
func (H *HashTable[K, V]) Stat(includeDistribution bool) (hashTableStat HashTableStat) {
	hashTableStat.Buckets = len(H.table)
	hashTableStat.LoadFactor = H.LoadFactor()
	if includeDistribution {
		hashTableStat.BucketDistribution = make([]int, len(H.table))
	}

	for i, head := range H.table {
		chain := 0
		for e := head; e != nil; e = e.next {
			chain++
		}
		if chain == 0 {
			continue
		}

		hashTableStat.Entries += chain
		hashTableStat.UsedBuckets++
		if chain > hashTableStat.LongestChain {
			hashTableStat.LongestChain = chain
		}
		if includeDistribution {
			hashTableStat.BucketDistribution[i] = chain
		}
	}

	return
}

// cloneTable - Copies every bucket chain in bucket-major order, keeping the order within each chain
func cloneTable[K comparable, V comparable](table []*entry[K, V]) []*entry[K, V] {
	newTable := make([]*entry[K, V], len(table))
	for i, head := range table {
		var tail *entry[K, V]
		for e := head; e != nil; e = e.next {
			c := &entry[K, V]{key: e.key, value: e.value}
			if tail == nil {
				newTable[i] = c
			} else {
				tail.next = c
			}
			tail = c
		}
	}
	return newTable
}
