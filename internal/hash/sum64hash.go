package hash

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Sum64HashAlgorithm - Bucket selection algorithm wrapping any 64-bit string hash. The bucket number is
// hash % tableSize, computed unsigned so the full 64-bit range of the hash is used.
type Sum64HashAlgorithm struct {
	name      string
	sum64     func(key string) uint64
	tableSize int64
}

// NewXXHashAlgorithm - Returns a Sum64HashAlgorithm based on xxHash64
func NewXXHashAlgorithm(tableSize int64) *Sum64HashAlgorithm {
	return newSum64HashAlgorithm(XXHash, xxhash.Sum64String, tableSize)
}

// NewXXH3HashAlgorithm - Returns a Sum64HashAlgorithm based on XXH3 64-bit
func NewXXH3HashAlgorithm(tableSize int64) *Sum64HashAlgorithm {
	return newSum64HashAlgorithm(XXH3, xxh3.HashString, tableSize)
}

// NewMurmur3HashAlgorithm - Returns a Sum64HashAlgorithm based on the first 64 bits of MurmurHash3 x64 128
func NewMurmur3HashAlgorithm(tableSize int64) *Sum64HashAlgorithm {
	return newSum64HashAlgorithm(Murmur3, func(key string) uint64 { return murmur3.Sum64([]byte(key)) }, tableSize)
}

func newSum64HashAlgorithm(name string, sum64 func(key string) uint64, tableSize int64) *Sum64HashAlgorithm {
	ha := &Sum64HashAlgorithm{name: name, sum64: sum64}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the hash table will address
func (S *Sum64HashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *Sum64HashAlgorithm) HashFunc1(key string) int64 {
	return int64(S.sum64(key) % uint64(S.tableSize))
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (S *Sum64HashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// Name - Returns the name the algorithm is registered under
func (S *Sum64HashAlgorithm) Name() string {
	return S.name
}
