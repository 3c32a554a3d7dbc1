package store

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned when an index does not address an item.
// Use errors.As with *IndexError to get the list length and the bad index.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError reports an index-based operation on a position that does not exist.
type IndexError struct {
	Len   int
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: have %d, got %d", ErrIndexOutOfRange.Error(), e.Len, e.Index)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
