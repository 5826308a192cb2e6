package utils

// Resize - Returns a new backing slice of length newCapacity holding the first count elements of a.
// Slots from count and onwards are zero values. The returned slice never shares memory with a.
func Resize[T any](a []T, count, newCapacity int) (b []T) {
	b = make([]T, newCapacity)
	if count > newCapacity {
		count = newCapacity
	}
	_ = copy(b, a[:count])

	return
}

// LoadFactor - Returns the ratio of size to capacity, or zero for a zero capacity
func LoadFactor(size, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(size) / float64(capacity)
}

// ShouldShrink - Returns true if a backing store of the given capacity holding count elements should be halved.
// Capacities at or below floor never shrink. With inclusive set the store shrinks when count <= capacity/4,
// otherwise when count < capacity/4.
func ShouldShrink(count, capacity, floor int, inclusive bool) bool {
	if capacity <= floor {
		return false
	}
	if inclusive {
		return count <= capacity/4
	}
	return count < capacity/4
}
