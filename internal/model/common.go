package model

import "fmt"

// Contact - Represents one stored record, the Name is also the key it is stored under
type Contact struct {
	Name   string
	Number string
}

// String - Returns the contact formatted as "name: number"
func (C Contact) String() string {
	return fmt.Sprintf("%s: %s", C.Name, C.Number)
}

// BucketDump - Represents the contents of one bucket
//   - BucketNo is the index of the bucket in the bucket array
//   - Contacts are the records in the bucket chain, from head to tail. An empty bucket has no contacts.
type BucketDump struct {
	BucketNo int64
	Contacts []Contact
}

// IsEmpty - Returns true if the bucket holds no records
func (B BucketDump) IsEmpty() bool {
	return len(B.Contacts) == 0
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	CollisionResolutionTechnique int
	NumberOfBuckets              int64
	InternalAlgorithm            bool
}
