package visit

import (
	"fmt"

	"github.com/npillmayer/linkset"
)

// Counted wraps a value and counts how often it has been visited.
type Counted[T any] struct {
	value  T
	visits int
}

// Count wraps a value with a visitation count of 0.
func Count[T any](value T) *Counted[T] {
	return &Counted[T]{value: value}
}

// Peek returns the wrapped value without visiting it.
func (c *Counted[T]) Peek() T {
	return c.value
}

// Observe visits the wrapped value and returns it.
func (c *Counted[T]) Observe() T {
	c.visits++
	return c.value
}

// Visit increments the visitation count.
func (c *Counted[T]) Visit() {
	c.visits++
}

// Visits returns the visitation count.
func (c *Counted[T]) Visits() int {
	return c.visits
}

// Reduce decrements the visitation count by n, but not below 0.
func (c *Counted[T]) Reduce(n int) {
	c.visits -= n
	if c.visits < 0 {
		c.visits = 0
	}
}

// Reset sets the visitation count to 0.
func (c *Counted[T]) Reset() {
	c.visits = 0
}

func (c *Counted[T]) String() string {
	return fmt.Sprintf("%v(%d)", c.value, c.visits)
}

// Comparing wraps a comparator into a comparator for counted values. Each call
// of Compare visits both of its arguments.
//
// The wrapping comparator is named after cmp, thus counting comparators derived
// from the same named comparator are compatible.
func Comparing[T any](cmp *linkset.Comparator[T]) *linkset.Comparator[*Counted[T]] {
	if cmp == nil {
		return nil
	}
	name := ""
	if cmp.Name() != "" {
		name = "visiting(" + cmp.Name() + ")"
	}
	return linkset.NewComparator(name, func(a, b *Counted[T]) int {
		return cmp.Compare(a.Observe(), b.Observe())
	})
}

// Filter wraps a predicate into a predicate for counted values, visiting each
// value it tests.
func Filter[T any](pred linkset.Predicate[T]) linkset.Predicate[*Counted[T]] {
	if pred == nil {
		return nil
	}
	return func(c *Counted[T]) bool {
		return pred(c.Observe())
	}
}
