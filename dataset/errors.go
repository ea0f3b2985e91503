package dataset

// Error represents an error on the shape or contents of a dataset
type Error string

const (
	// ErrEmptyDataset is returned when an operation needs at least one
	// record and gets none.
	ErrEmptyDataset = Error("empty dataset")
	// ErrRaggedRecord is returned when records in a dataset do not have
	// the same number of columns, or have no column for the label.
	ErrRaggedRecord = Error("record length does not match dataset columns")
	// ErrIncomparableValue is returned when a record holds a value that
	// cannot be compared for equality.
	ErrIncomparableValue = Error("value is not comparable")
	// ErrAttributeOutOfRange is returned when an attribute index does not
	// refer to an attribute column of the dataset.
	ErrAttributeOutOfRange = Error("attribute index out of range")
)

func (e Error) Error() string {
	return string(e)
}
