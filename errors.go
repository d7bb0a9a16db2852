package deepentry

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	//ErrShapeMismatch is matched by every *ShapeMismatchError
	ErrShapeMismatch = errors.New("shape mismatch")
	//ErrNegativeIndex is matched by every *IndexError
	ErrNegativeIndex = errors.New("negative index")
)

type (
	//ShapeMismatchError reports a key whose nesting disagrees with the container nesting
	ShapeMismatchError struct {
		Path   string
		Key    interface{}
		Type   reflect.Type
		Reason string
	}

	//IndexError reports a negative slice index
	IndexError struct {
		Index int
	}
)

func (e *ShapeMismatchError) Error() string {
	if e.Type == nil {
		return fmt.Sprintf("deepentry: shape mismatch at %v: key %v: %v", e.location(), e.Key, e.Reason)
	}
	return fmt.Sprintf("deepentry: shape mismatch at %v: key %v against %v: %v", e.location(), e.Key, e.Type, e.Reason)
}

func (e *ShapeMismatchError) location() string {
	if e.Path == "" {
		return "root"
	}
	return e.Path
}

// Is reports whether target is ErrShapeMismatch
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("deepentry: negative index: %v", e.Index)
}

// Is reports whether target is ErrNegativeIndex
func (e *IndexError) Is(target error) bool {
	return target == ErrNegativeIndex
}
