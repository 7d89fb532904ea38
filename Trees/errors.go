package Trees

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument is matched by every *InvalidArgumentError through errors.Is.
var ErrInvalidArgument = errors.New("Trees: invalid argument")

// InvalidArgumentError is returned when an absent value is given to the tree.
// Op is the method that rejected the value, Index is the position of the value
// in the argument list for variadic methods and -1 otherwise.
type InvalidArgumentError struct {
	Op    string
	Index int
}

func (e *InvalidArgumentError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("Trees: %s: absent value at index %d", e.Op, e.Index)
	}
	return fmt.Sprintf("Trees: %s: absent value", e.Op)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// absent reports whether v is a nil interface, or a nil pointer, map, slice, func or chan.
// Types that can't be nil are never absent.
func absent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
