package linkset

import "fmt"

// InvalidOrderingError is returned if a chain of keys is not in strictly
// ascending order. Index is the position of the offending successor.
type InvalidOrderingError struct {
	Index int
	Prev  interface{}
	Next  interface{}
}

func (e *InvalidOrderingError) Error() string {
	return fmt.Sprintf("keys not in ascending order at position %d: %v > %v", e.Index, e.Prev, e.Next)
}

// DuplicateKeyError is returned if a chain of keys contains two adjacent keys
// which compare as equal.
type DuplicateKeyError struct {
	Index int
	Key   interface{}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %v at position %d", e.Key, e.Index)
}

// InvariantViolationError signals a programming error: a missing comparator or
// predicate, or operands ordered by incompatible comparators.
type InvariantViolationError struct {
	Op     string
	Reason string
}

func (e *InvariantViolationError) Error() string {
	if e.Op == "" {
		return "invariant violated: " + e.Reason
	}
	return fmt.Sprintf("%s: invariant violated: %s", e.Op, e.Reason)
}

// Violation is a shortcut for creating an InvariantViolationError.
func Violation(op string, format string, args ...interface{}) error {
	return &InvariantViolationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
