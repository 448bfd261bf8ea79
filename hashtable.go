package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/gostonefire/chainhashmap/internal/overflow"
	"github.com/gostonefire/chainhashmap/internal/storage/separatechaining"
)

// Contact - A stored record, the Name is also the key it is stored under
type Contact = model.Contact

// BucketDump - The contents of one bucket, contacts in chain order from head to tail
type BucketDump = model.BucketDump

// TableManagement - Interface for any table storage implementation
type TableManagement interface {
	Get(key string) (record model.Contact, err error)
	Set(record model.Contact) (err error)
	GetBucket(bucketNo int64) (overflowIterator *overflow.Records, err error)
	GetBucketNo(key string) (bucketNo int64, err error)
	ChainLength(bucketNo int64) (length int, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// HashTableInfo - Information structure containing some information about the hash table created
//   - NumberOfBuckets is the total number of buckets in the hash table
//   - InternalAlgorithm is true if the internal code point sum hash algorithm is used
type HashTableInfo struct {
	NumberOfBuckets   int64
	InternalAlgorithm bool
}

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestChain is the number of records in the longest bucket chain
//   - BucketDistribution is the number of records stored in each bucket
type HashTableStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// HashTable - The main implementation struct
type HashTable struct {
	tableManagement TableManagement
	numberOfBuckets int64
}

// NewHashTable - Returns a new hash table with a fixed number of buckets, all of them empty.
// The number of buckets never changes, keys sharing a bucket are chained in insertion order.
//   - capacity is the number of buckets, it must be a positive value higher than 0 (zero)
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface.
//     If nil, the internal algorithm summing the Unicode code points of the key is used.
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created.
//   - err is of type crt.InvalidCapacity if capacity is less than 1
func NewHashTable(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	var tm TableManagement
	tm, err = separatechaining.NewSCTable(capacity, hashAlgorithm)
	if err != nil {
		return
	}

	sp := tm.GetStorageParameters()

	hashTable = &HashTable{
		tableManagement: tm,
		numberOfBuckets: sp.NumberOfBuckets,
	}

	hashTableInfo = HashTableInfo{
		NumberOfBuckets:   sp.NumberOfBuckets,
		InternalAlgorithm: sp.InternalAlgorithm,
	}

	return
}

// NewHashTableByName - Returns a new hash table using one of the built-in hash algorithms.
//   - capacity is the number of buckets, it must be a positive value higher than 0 (zero)
//   - algorithmName is one of the names returned by HashAlgorithmNames, empty selects the default
//
// It returns the same as NewHashTable, and err is of type crt.UnknownHashAlgorithm if the name is not recognized.
func NewHashTableByName(capacity int64, algorithmName string) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	if algorithmName == "" || algorithmName == hash.Default {
		return NewHashTable(capacity, nil)
	}

	ha, err := hash.NewByName(algorithmName, capacity)
	if err != nil {
		return
	}

	return NewHashTable(capacity, ha)
}

// HashAlgorithmNames - Returns the names of the built-in hash algorithms
func HashAlgorithmNames() []string {
	return hash.Names()
}
