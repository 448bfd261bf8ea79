package hash

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"sort"
)

// Names of the built-in hash algorithms
const (
	CodePoint = "codepoint"
	CRC32     = "crc32"
	XXHash    = "xxhash"
	XXH3      = "xxh3"
	Murmur3   = "murmur3"
)

// Default - Name of the algorithm used when none is given
const Default = CodePoint

var constructors = map[string]func(tableSize int64) hashfunc.HashAlgorithm{
	CodePoint: func(tableSize int64) hashfunc.HashAlgorithm { return NewCodePointHashAlgorithm(tableSize) },
	CRC32:     func(tableSize int64) hashfunc.HashAlgorithm { return NewCRC32HashAlgorithm(tableSize) },
	XXHash:    func(tableSize int64) hashfunc.HashAlgorithm { return NewXXHashAlgorithm(tableSize) },
	XXH3:      func(tableSize int64) hashfunc.HashAlgorithm { return NewXXH3HashAlgorithm(tableSize) },
	Murmur3:   func(tableSize int64) hashfunc.HashAlgorithm { return NewMurmur3HashAlgorithm(tableSize) },
}

// NewByName - Returns a built-in hash algorithm given its name, an empty name gives the Default algorithm.
//   - name is one of the names returned by Names
//   - tableSize is the number of buckets the hash table will address
//
// It returns:
//   - hashAlgorithm is the requested algorithm with its table size set
//   - err is of type crt.UnknownHashAlgorithm if name is not recognized
func NewByName(name string, tableSize int64) (hashAlgorithm hashfunc.HashAlgorithm, err error) {
	if name == "" {
		name = Default
	}

	constructor, ok := constructors[name]
	if !ok {
		err = fmt.Errorf("%w: %q (available: %v)", crt.UnknownHashAlgorithm{}, name, Names())
		return
	}

	hashAlgorithm = constructor(tableSize)

	return
}

// IsKnown - Returns true if name is a built-in hash algorithm (or empty, meaning Default)
func IsKnown(name string) bool {
	if name == "" {
		return true
	}
	_, ok := constructors[name]
	return ok
}

// Names - Returns the names of all built-in hash algorithms in sorted order
func Names() (names []string) {
	names = make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)

	return
}
