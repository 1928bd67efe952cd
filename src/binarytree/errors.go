package binarytree

import (
	"bytes"
	"fmt"
)

type errorType int

const (
	ErrNotError errorType = iota
	ErrOrder
	ErrDuplicate
	ErrHeight
	ErrBalance
	ErrParent
)

var errMap = map[errorType]string{
	ErrNotError:  "not a valid error",
	ErrOrder:     "keys out of order",
	ErrDuplicate: "duplicate key",
	ErrHeight:    "cached height does not match children",
	ErrBalance:   "subtree heights differ by more than one",
	ErrParent:    "parent link does not match child link",
}

func (e errorType) Error() string {
	return errMap[e]
}

func (e errorType) Is(target error) bool {
	t, ok := target.(errorType)
	if !ok {
		return false
	}
	return t == e
}

func violation[K Ordered](key K, kind errorType) error {
	return fmt.Errorf("node %v: %w", key, kind)
}

// An integrityError collects every invariant violation found by a
// single validation pass.
type integrityError struct {
	Errors []error
}

// NewIntegrityError bundles the violations of one validation pass into a
// single error. It returns nil when errs is empty so validators can return
// its result directly.
func NewIntegrityError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return &integrityError{
		Errors: errs,
	}
}

func (e *integrityError) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}
	var b bytes.Buffer
	b.WriteString("Integrity errors have occurred:\n")
	for _, err := range e.Errors {
		fmt.Fprintf(&b, "\t%s\n", err)
	}
	return b.String()
}

func (e *integrityError) Unwrap() []error {
	return e.Errors
}

func IsIntegrityError(err error) bool {
	if err == nil {
		return false
	}
	var _, ok = err.(*integrityError)
	return ok
}
