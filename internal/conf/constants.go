package conf

// ArrayDefaultCapacity - Capacity of a new dynamic array and the capacity it is reset to by Clear
const ArrayDefaultCapacity int = 2

// ArrayMinCapacity - Smallest capacity a dynamic array can be created with
const ArrayMinCapacity int = 1

// ArrayShrinkFloor - A dynamic array never shrinks when its capacity is at or below this value
const ArrayShrinkFloor int = 4

// HeapDefaultCapacity - Capacity of a new priority queue and the lower bound used by ShrinkToFit
const HeapDefaultCapacity int = 4

// HeapMinCapacity - Smallest capacity a priority queue can be created with
const HeapMinCapacity int = 1

// HeapShrinkFloor - A priority queue never shrinks when its capacity is at or below this value
const HeapShrinkFloor int = 4

// TableDefaultCapacity - Number of buckets in a new hash table, also the floor below which it never shrinks
const TableDefaultCapacity int = 16

// TableMinCapacity - Smallest number of buckets a hash table can be created or cleared with
const TableMinCapacity int = 2

// TableMaxLoadFactor - A put on a table whose load factor exceeds this value doubles the table first
const TableMaxLoadFactor float64 = 0.75

// TableMinLoadFactor - A remove leaving a table below this load factor halves the table
const TableMinLoadFactor float64 = 0.25
