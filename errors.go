package deque

import "github.com/juju/errors"

const (
	// ErrEmpty is returned by operations that need at least one element
	// when the Deque is empty.
	ErrEmpty = errors.ConstError("deque is empty")

	// ErrIndexOutOfRange is returned when an index is negative or not
	// less than the length of the Deque.
	ErrIndexOutOfRange = errors.ConstError("index out of range")

	// ErrInvalidRange is returned by ForEach when the count is zero or
	// the range would run off of an end of the Deque.
	ErrInvalidRange = errors.ConstError("invalid range")

	// ErrNotFound is returned when no element matches a search.
	ErrNotFound = errors.ConstError("not found")
)
