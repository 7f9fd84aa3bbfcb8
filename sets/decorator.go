package sets

// Decorator wraps an ordered set and forwards every method to it. Types
// embedding a Decorator may replace single operations, e.g. for instrumentation,
// and inherit all the others.
//
// The decorated set has already been validated, thus decorating never checks the
// set again.
type Decorator[T any] struct {
	OrderedSet[T]
}

// Decorate wraps s.
func Decorate[T any](s OrderedSet[T]) *Decorator[T] {
	return &Decorator[T]{OrderedSet: s}
}

// Underlying returns the decorated set.
func (d *Decorator[T]) Underlying() OrderedSet[T] {
	return d.OrderedSet
}
