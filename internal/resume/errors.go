package resume

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange indicates an entry index outside the current list.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnknownField indicates a field name that the target entry does not have.
	ErrUnknownField = errors.New("unknown field")
)

// IndexError reports an out-of-range access on one of the document lists.
type IndexError struct {
	List  string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.List, e.Index, e.Len)
}

// Is lets errors.Is match ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// FieldError reports an unknown field name.
type FieldError struct {
	Group string
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("unknown %s field %q", e.Group, e.Field)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrUnknownField
}

func checkIndex(list string, index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{List: list, Index: index, Len: length}
	}
	return nil
}
