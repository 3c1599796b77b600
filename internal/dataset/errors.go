package dataset

import "errors"

var (
	// ErrDataSource marks failures of the external query executor.
	ErrDataSource = errors.New("data source error")
	// ErrInvalidFilter marks a filter value whose type does not fit the field.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrUnknownField marks a reference to a column or dataset name that does not exist.
	ErrUnknownField = errors.New("unknown field")
)
