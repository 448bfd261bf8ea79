package hash

import "hash/crc32"

// CRC32HashAlgorithm - Bucket selection algorithm using crc32.ChecksumIEEE to create a hash value over the key and
// then applying bucket = hash % tableSize to get the bucket number.
type CRC32HashAlgorithm struct {
	tableSize int64
}

// NewCRC32HashAlgorithm - Returns a pointer to a new CRC32HashAlgorithm instance
func NewCRC32HashAlgorithm(tableSize int64) *CRC32HashAlgorithm {
	ha := &CRC32HashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the hash table will address
func (C *CRC32HashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (C *CRC32HashAlgorithm) HashFunc1(key string) int64 {
	h := int64(crc32.ChecksumIEEE([]byte(key)))
	return h % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CRC32HashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
