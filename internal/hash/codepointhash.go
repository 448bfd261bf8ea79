package hash

// CodePointHashAlgorithm - The default bucket selection algorithm. It sums the Unicode code points of every
// character in the key and applies bucket = sum % tableSize.
// There is no mixing of the sum, so keys that are anagrams of each other ("Amy", "May") always share a bucket.
type CodePointHashAlgorithm struct {
	tableSize int64
}

// NewCodePointHashAlgorithm - Returns a pointer to a new CodePointHashAlgorithm instance
func NewCodePointHashAlgorithm(tableSize int64) *CodePointHashAlgorithm {
	ha := &CodePointHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the hash table will address
func (C *CodePointHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (C *CodePointHashAlgorithm) HashFunc1(key string) int64 {
	return CodePointSum(key) % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CodePointHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}

// CodePointSum - Returns the sum of all code points in key.
// Invalid UTF-8 sequences count as utf8.RuneError, one per offending byte.
func CodePointSum(key string) (sum int64) {
	for _, r := range key {
		sum += int64(r)
	}

	return
}
