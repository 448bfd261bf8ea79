package chainhashmap

import (
	"errors"
	"fmt"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Insert - Updates an existing record with a new number or adds it if no existing is found with same name.
// An update keeps the record at its position in the bucket chain, a new record is appended to the chain tail.
//   - name is the identifier of the record
//   - number is the value to store along with the name
//
// Insert panics if a custom hash algorithm returns a bucket number outside the table size.
func (H *HashTable) Insert(name, number string) {
	err := H.tableManagement.Set(model.Contact{Name: name, Number: number})
	if err != nil {
		panic(fmt.Sprintf("chainhashmap: insert %q: %s", name, err))
	}
}

// Search - Gets the record stored under name.
//   - name is the identifier of a record
//
// It returns:
//   - contact is a copy of the matching record if found
//   - found is false if no record is stored under name
//
// Search panics if a custom hash algorithm returns a bucket number outside the table size.
func (H *HashTable) Search(name string) (contact Contact, found bool) {
	contact, err := H.tableManagement.Get(name)
	if err == nil {
		found = true
		return
	}
	if errors.Is(err, crt.NoRecordFound{}) {
		return
	}

	panic(fmt.Sprintf("chainhashmap: search %q: %s", name, err))
}

// Dump - Walks through every bucket in order and returns its records in chain order.
// The returned slice has one entry per bucket, empty buckets have no contacts.
func (H *HashTable) Dump() (buckets []BucketDump) {
	buckets = make([]BucketDump, H.numberOfBuckets)

	for i := int64(0); i < H.numberOfBuckets; i++ {
		buckets[i].BucketNo = i

		// Bucket numbers are always in range here
		iter, _ := H.tableManagement.GetBucket(i)
		for iter.HasNext() {
			contact, _ := iter.Next()
			buckets[i].Contacts = append(buckets[i].Contacts, contact)
		}
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of records per bucket, false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable) Stat(includeDistribution bool) (hashTableStat *HashTableStat) {
	var hts HashTableStat

	if includeDistribution {
		hts.BucketDistribution = make([]int64, H.numberOfBuckets)
	}

	for i := int64(0); i < H.numberOfBuckets; i++ {
		length, _ := H.tableManagement.ChainLength(i)
		n := int64(length)

		hts.Records += n
		if n > 0 {
			hts.UsedBuckets++
		}
		if n > hts.LongestChain {
			hts.LongestChain = n
		}
		if includeDistribution {
			hts.BucketDistribution[i] = n
		}
	}

	hashTableStat = &hts
	return
}

// GetBucketNo - Returns which bucket number that the given name results in
//   - name is the identifier of a record
func (H *HashTable) GetBucketNo(name string) (bucketNo int64, err error) {
	return H.tableManagement.GetBucketNo(name)
}

// ChainLength - Returns the number of records chained in a bucket
//   - bucketNo is the identifier of a bucket, the number can be retrieved by call to GetBucketNo
func (H *HashTable) ChainLength(bucketNo int64) (length int, err error) {
	return H.tableManagement.ChainLength(bucketNo)
}

// NumberOfBuckets - Returns the fixed number of buckets in the hash table
func (H *HashTable) NumberOfBuckets() int64 {
	return H.numberOfBuckets
}
