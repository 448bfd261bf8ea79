//go:build unit

package separatechaining

import (
	"errors"
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"github.com/stretchr/testify/assert"
	"testing"
)

// fixedHashAlgorithm - Sends every key to the same bucket, or to an invalid bucket if asked to
type fixedHashAlgorithm struct {
	tableSize int64
	bucketNo  int64
}

func (F *fixedHashAlgorithm) SetTableSize(tableSize int64) {
	F.tableSize = tableSize
}

func (F *fixedHashAlgorithm) HashFunc1(key string) int64 {
	return F.bucketNo
}

func (F *fixedHashAlgorithm) GetTableSize() int64 {
	return F.tableSize
}

func chainNames(t *testing.T, scTable *SCTable, bucketNo int64) (names []string) {
	iter, err := scTable.GetBucket(bucketNo)
	assert.NoError(t, err, "gets bucket")
	for iter.HasNext() {
		record, err := iter.Next()
		assert.NoError(t, err, "gets chain record")
		names = append(names, record.Name)
	}
	return
}

func TestNewSCTable(t *testing.T) {
	t.Run("creates a new SCTable instance", func(t *testing.T) {
		// Execute
		scTable, err := NewSCTable(10, nil)

		// Check
		assert.NoError(t, err, "create new SCTable instance")
		assert.Equal(t, int64(10), scTable.numberOfBuckets, "number of buckets preserved")
		assert.Len(t, scTable.buckets, 10, "bucket array allocated")
		for i, head := range scTable.buckets {
			assert.Nil(t, head, "bucket %d empty", i)
		}
		assert.True(t, scTable.internalAlgorithm, "uses internal algorithm")
		assert.IsType(t, &hash.CodePointHashAlgorithm{}, scTable.hashAlgorithm, "default algorithm")
	})

	t.Run("takes custom hash algorithm and sets its table size", func(t *testing.T) {
		// Prepare
		ha := hash.NewXXHashAlgorithm(3)

		// Execute
		scTable, err := NewSCTable(12, ha)

		// Check
		assert.NoError(t, err, "create new SCTable instance")
		assert.False(t, scTable.internalAlgorithm, "uses external algorithm")
		assert.Equal(t, int64(12), ha.GetTableSize(), "table size overwritten")
		assert.Equal(t, int64(12), scTable.numberOfBuckets, "number of buckets from algorithm")
	})

	t.Run("fails on capacity less than one", func(t *testing.T) {
		for _, capacity := range []int64{0, -1, -100} {
			// Execute
			scTable, err := NewSCTable(capacity, nil)

			// Check
			assert.Nil(t, scTable, "no instance for capacity %d", capacity)
			assert.True(t, errors.Is(err, crt.InvalidCapacity{}), "error of type InvalidCapacity for %d", capacity)
		}
	})

	t.Run("fails when hash algorithm reports no buckets", func(t *testing.T) {
		// Prepare
		ha := &zeroTableSizeAlgorithm{}

		// Execute
		_, err := NewSCTable(10, ha)

		// Check
		assert.True(t, errors.Is(err, crt.InvalidCapacity{}), "error of type InvalidCapacity")
	})
}

type zeroTableSizeAlgorithm struct{}

func (Z *zeroTableSizeAlgorithm) SetTableSize(int64) {}

func (Z *zeroTableSizeAlgorithm) HashFunc1(string) int64 {
	return 0
}

func (Z *zeroTableSizeAlgorithm) GetTableSize() int64 {
	return 0
}

func TestSCTable_GetStorageParameters(t *testing.T) {
	t.Run("gets storage parameters", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, nil)
		assert.NoError(t, err, "create new SCTable instance")

		// Execute
		sp := scTable.GetStorageParameters()

		// Check
		assert.Equal(t, crt.SeparateChaining, sp.CollisionResolutionTechnique, "correct crt")
		assert.Equal(t, int64(10), sp.NumberOfBuckets, "number of buckets preserved")
		assert.True(t, sp.InternalAlgorithm, "indicates using internal hash algorithm")
	})
}

func TestSCTable_Set(t *testing.T) {
	t.Run("sets a record in an empty bucket", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, nil)
		assert.NoError(t, err, "create new SCTable instance")

		// Execute
		err = scTable.Set(model.Contact{Name: "John", Number: "909-876-1234"})

		// Check
		assert.NoError(t, err, "sets record")
		assert.NotNil(t, scTable.buckets[9], "John in bucket 9")
		assert.Equal(t, "John", scTable.buckets[9].Key(), "head has key")
		assert.Nil(t, scTable.buckets[9].Next(), "single node chain")
	})

	t.Run("appends colliding records at the tail", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, &fixedHashAlgorithm{bucketNo: 3})
		assert.NoError(t, err, "create new SCTable instance")

		// Execute
		for _, name := range []string{"a", "b", "c", "d"} {
			err = scTable.Set(model.Contact{Name: name, Number: "1"})
			assert.NoError(t, err, "sets record %s", name)
		}

		// Check
		assert.Equal(t, []string{"a", "b", "c", "d"}, chainNames(t, scTable, 3), "insertion order kept")
	})

	t.Run("updates in place without duplicating", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, &fixedHashAlgorithm{bucketNo: 0})
		assert.NoError(t, err, "create new SCTable instance")
		for _, name := range []string{"a", "b", "c"} {
			err = scTable.Set(model.Contact{Name: name, Number: "1"})
			assert.NoError(t, err, "sets record %s", name)
		}

		// Execute
		err = scTable.Set(model.Contact{Name: "b", Number: "2"})

		// Check
		assert.NoError(t, err, "updates record")
		assert.Equal(t, []string{"a", "b", "c"}, chainNames(t, scTable, 0), "position unchanged")
		record, err := scTable.Get("b")
		assert.NoError(t, err, "gets record")
		assert.Equal(t, "2", record.Number, "number updated")
	})

	t.Run("updates chain head", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, nil)
		assert.NoError(t, err, "create new SCTable instance")
		err = scTable.Set(model.Contact{Name: "Rebecca", Number: "111-555-0002"})
		assert.NoError(t, err, "sets record")

		// Execute
		err = scTable.Set(model.Contact{Name: "Rebecca", Number: "999-444-9999"})

		// Check
		assert.NoError(t, err, "updates record")
		length, err := scTable.ChainLength(7)
		assert.NoError(t, err, "gets chain length")
		assert.Equal(t, 1, length, "still one record")
		assert.Equal(t, "999-444-9999", scTable.buckets[7].Contact().Number, "number updated")
	})

	t.Run("fails when hash algorithm is out of range", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, &fixedHashAlgorithm{bucketNo: 10})
		assert.NoError(t, err, "create new SCTable instance")

		// Execute
		err = scTable.Set(model.Contact{Name: "John", Number: "909-876-1234"})

		// Check
		assert.Error(t, err, "bucket number out of range")
	})
}

func TestSCTable_Get(t *testing.T) {
	t.Run("gets records from chain", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, nil)
		assert.NoError(t, err, "create new SCTable instance")
		_ = scTable.Set(model.Contact{Name: "Amy", Number: "111-222-3333"})
		_ = scTable.Set(model.Contact{Name: "May", Number: "222-333-1111"})

		// Execute
		amy, errAmy := scTable.Get("Amy")
		may, errMay := scTable.Get("May")

		// Check
		assert.NoError(t, errAmy, "gets Amy")
		assert.NoError(t, errMay, "gets May")
		assert.Equal(t, model.Contact{Name: "Amy", Number: "111-222-3333"}, amy, "Amy correct")
		assert.Equal(t, model.Contact{Name: "May", Number: "222-333-1111"}, may, "May correct")
	})

	t.Run("missing key in empty and non empty bucket", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, nil)
		assert.NoError(t, err, "create new SCTable instance")
		_ = scTable.Set(model.Contact{Name: "Amy", Number: "111-222-3333"})

		// Execute
		_, errChris := scTable.Get("Chris")
		_, errJohn := scTable.Get("John")

		// Check
		assert.True(t, errors.Is(errChris, crt.NoRecordFound{}), "Chris not found in Amy's bucket")
		assert.True(t, errors.Is(errJohn, crt.NoRecordFound{}), "John not found in empty bucket")
	})

	t.Run("keys are compared exactly", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, &fixedHashAlgorithm{bucketNo: 1})
		assert.NoError(t, err, "create new SCTable instance")
		_ = scTable.Set(model.Contact{Name: "amy", Number: "1"})

		// Execute
		_, err = scTable.Get("Amy")

		// Check
		assert.True(t, errors.Is(err, crt.NoRecordFound{}), "case sensitive match")
	})
}

func TestSCTable_GetBucket(t *testing.T) {
	t.Run("fails on bucket number out of range", func(t *testing.T) {
		// Prepare
		scTable, err := NewSCTable(10, nil)
		assert.NoError(t, err, "create new SCTable instance")

		// Execute
		_, errLow := scTable.GetBucket(-1)
		_, errHigh := scTable.GetBucket(10)
		_, errLength := scTable.ChainLength(10)

		// Check
		assert.Error(t, errLow, "negative bucket number")
		assert.Error(t, errHigh, "bucket number equal to capacity")
		assert.Error(t, errLength, "chain length of invalid bucket")
	})
}
