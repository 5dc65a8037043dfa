package bounds

import "errors"

var (
	// ErrStartAfterEnd indicates a range whose start offset exceeds its end.
	ErrStartAfterEnd = errors.New("slice index start is higher than end")

	// ErrOutOfRange indicates an index or range endpoint outside the source.
	ErrOutOfRange = errors.New("slice index out of range")
)
