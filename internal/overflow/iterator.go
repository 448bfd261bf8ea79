package overflow

import (
	"github.com/gostonefire/chainhashmap/crt"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Records - Is used to iterate over the records of a bucket chain one by one, from head to tail.
type Records struct {
	current *Node
}

// NewRecords - Returns a pointer to a new Records struct starting at head, a nil head gives an empty iteration
func NewRecords(head *Node) *Records {

	return &Records{
		current: head,
	}
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (O *Records) HasNext() bool {
	return O.current != nil
}

// Next - Returns record.
// It returns:
//   - record is the next record in the chain.
//   - err is of type crt.NoRecordFound if there are no more records when calling this function.
func (O *Records) Next() (record model.Contact, err error) {
	if O.current == nil {
		err = crt.NoRecordFound{}
		return
	}

	record = O.current.Contact()
	O.current = O.current.Next()

	return
}
