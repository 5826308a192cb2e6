package hashtable

import (
	"github.com/gostonefire/containers/errs"
	"github.com/gostonefire/containers/internal/conf"
	"github.com/pkg/errors"
)

// Put - Updates the value of an existing key or adds the key/value pair if the key is not present.
// If the load factor already exceeds 0.75 the table is doubled and rehashed before the put.
//   - key is the key to store the value under
//   - value is the value to store
func (H *HashTable[K, V]) Put(key K, value V) {
	if H.LoadFactor() > conf.TableMaxLoadFactor {
		H.resize(len(H.table) * 2)
	}

	bucketNo := H.GetBucketNo(key)

	// Try to find an existing entry with matching key
	for e := H.table[bucketNo]; e != nil; e = e.next {
		if e.key == key {
			e.value = value
			return
		}
	}

	H.table[bucketNo] = &entry[K, V]{key: key, value: value, next: H.table[bucketNo]}
	H.size++
}

// Get - Gets the value stored under key.
//   - key is the key to look up
//
// It returns:
//   - value is the value stored under key
//   - err is of type errs.KeyNotFound if the key is not present
func (H *HashTable[K, V]) Get(key K) (value V, err error) {
	e := H.find(key)
	if e == nil {
		err = errors.Wrapf(errs.KeyNotFound{}, "key %v", key)
		return
	}

	value = e.value

	return
}

// GetOrDefault - Gets the value stored under key, or fallback if the key is not present. The table is never changed.
func (H *HashTable[K, V]) GetOrDefault(key K, fallback V) V {
	if e := H.find(key); e != nil {
		return e.value
	}
	return fallback
}

// ContainsKey - Returns true if key is present
func (H *HashTable[K, V]) ContainsKey(key K) bool {
	return H.find(key) != nil
}

// ContainsValue - Returns true if any key maps to value. Every bucket chain is scanned.
func (H *HashTable[K, V]) ContainsValue(value V) bool {
	for _, head := range H.table {
		for e := head; e != nil; e = e.next {
			if e.value == value {
				return true
			}
		}
	}
	return false
}

// Remove - Removes key and its value. If the table is larger than the default capacity and the load factor
// drops below 0.25 the table is halved and rehashed.
//   - key is the key to remove
//
// It returns:
//   - err is of type errs.KeyNotFound if the key is not present, in which case the table is left untouched
func (H *HashTable[K, V]) Remove(key K) (err error) {
	bucketNo := H.GetBucketNo(key)

	var trail *entry[K, V]
	e := H.table[bucketNo]
	for e != nil && e.key != key {
		trail = e
		e = e.next
	}
	if e == nil {
		err = errors.Wrapf(errs.KeyNotFound{}, "key %v", key)
		return
	}

	// Head of chain has no trailing entry
	if trail == nil {
		H.table[bucketNo] = e.next
	} else {
		trail.next = e.next
	}
	e.next = nil
	H.size--

	if len(H.table) > conf.TableDefaultCapacity && H.LoadFactor() < conf.TableMinLoadFactor {
		H.resize(len(H.table) / 2)
	}

	return
}

// Keys - Returns all keys in bucket-major order
func (H *HashTable[K, V]) Keys() []K {
	keys := make([]K, 0, H.size)
	for _, head := range H.table {
		for e := head; e != nil; e = e.next {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// GetBucketNo - Returns the bucket number that the key maps to given the current capacity
func (H *HashTable[K, V]) GetBucketNo(key K) int {
	return int(H.hashAlgorithm.HashFunc(key) % uint64(len(H.table)))
}

// find - Returns the entry holding key, or nil
func (H *HashTable[K, V]) find(key K) *entry[K, V] {
	for e := H.table[H.GetBucketNo(key)]; e != nil; e = e.next {
		if e.key == key {
			return e
		}
	}
	return nil
}

// resize - Moves every entry into a new bucket array of the given capacity.
// Entries are relinked rather than copied, and each bucket number is recomputed under the new capacity.
func (H *HashTable[K, V]) resize(newCapacity int) {
	H.log.Debug().Int("from", len(H.table)).Int("to", newCapacity).Int("size", H.size).Msg("hash table rehashed")

	oldTable := H.table
	H.table = make([]*entry[K, V], newCapacity)

	for i := range oldTable {
		for oldTable[i] != nil {
			e := oldTable[i]
			oldTable[i] = e.next

			bucketNo := H.GetBucketNo(e.key)
			e.next = H.table[bucketNo]
			H.table[bucketNo] = e
		}
	}
}
