package separatechaining

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/gostonefire/chainhashmap/internal/overflow"
)

// SCTable - Represents an in memory implementation of the Separate Chaining Collision Resolution Technique.
// It keeps a fixed size bucket array where each bucket is either empty or holds the head of a singly linked chain
// of records whose keys all hash to that bucket.
type SCTable struct {
	buckets           []*overflow.Node
	numberOfBuckets   int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
}

// NewSCTable - Returns a pointer to a new instance of Separate Chaining table implementation with all buckets empty.
//   - capacity is the number of buckets to create, it must be a positive value higher than 0 (zero)
//   - hashAlgorithm is an optional custom hash algorithm, if nil the internal hash.CodePointHashAlgorithm is used
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is of type crt.InvalidCapacity if capacity is less than 1
func NewSCTable(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (scTable *SCTable, err error) {
	if capacity <= 0 {
		err = crt.InvalidCapacity{}
		return
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewCodePointHashAlgorithm(capacity)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(capacity)
	}

	numberOfBuckets := hashAlgorithm.GetTableSize()
	if numberOfBuckets <= 0 {
		err = fmt.Errorf("%w: hash algorithm reports table size %d", crt.InvalidCapacity{}, numberOfBuckets)
		return
	}

	scTable = &SCTable{
		buckets:           make([]*overflow.Node, numberOfBuckets),
		numberOfBuckets:   numberOfBuckets,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		NumberOfBuckets:              S.numberOfBuckets,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetBucketNo - Returns which bucket number that the given key results in
//   - key is the identifier of a record
func (S *SCTable) GetBucketNo(key string) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(key)
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("received bucket number from hash algorithm is outside permitted range: %d", bucketNo)
		return
	}

	return
}

// GetBucket - Returns an iterator over the records in a bucket chain given the bucket number
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
//
// It returns:
//   - overflowIterator is a Records struct that iterates the chain from head to tail.
//   - err is standard error if the bucket number is out of range
func (S *SCTable) GetBucket(bucketNo int64) (overflowIterator *overflow.Records, err error) {
	if bucketNo < 0 || bucketNo >= S.numberOfBuckets {
		err = fmt.Errorf("bucket number %d is outside permitted range 0-%d", bucketNo, S.numberOfBuckets-1)
		return
	}

	overflowIterator = overflow.NewRecords(S.buckets[bucketNo])

	return
}

// Get - Gets record that corresponds to the given key.
//   - key is the identifier of a record
//
// It returns:
//   - record is a copy of the matching record if found
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable) Get(key string) (record model.Contact, err error) {
	bucketNo, err := S.GetBucketNo(key)
	if err != nil {
		return
	}

	for node := S.buckets[bucketNo]; node != nil; node = node.Next() {
		if node.Key() == key {
			record = node.Contact()
			return
		}
	}

	err = crt.NoRecordFound{}

	return
}

// Set - Updates an existing record with new data or add it if no existing is found with same key.
// A new record is always linked in as the tail of its bucket chain, an updated record keeps its position.
//   - record is the record to set, its Name is used as key
//
// It returns:
//   - err is a standard error, if something went wrong
func (S *SCTable) Set(record model.Contact) (err error) {
	bucketNo, err := S.GetBucketNo(record.Name)
	if err != nil {
		return
	}

	// Empty bucket, the new record becomes the chain head
	head := S.buckets[bucketNo]
	if head == nil {
		S.buckets[bucketNo] = overflow.NewNode(record)
		return
	}

	// Walk the chain looking for a matching key, stopping at the tail if there is none
	node := head
	for {
		if node.Key() == record.Name {
			node.Replace(record)
			return
		}
		if node.Next() == nil {
			break
		}
		node = node.Next()
	}

	node.Link(overflow.NewNode(record))

	return
}

// ChainLength - Returns the number of records in a bucket chain
//   - bucketNo is the identifier of a bucket
func (S *SCTable) ChainLength(bucketNo int64) (length int, err error) {
	iter, err := S.GetBucket(bucketNo)
	if err != nil {
		return
	}

	for iter.HasNext() {
		if _, err = iter.Next(); err != nil {
			return
		}
		length++
	}

	return
}
