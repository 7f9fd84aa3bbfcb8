package linkset

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// --- Comparators -----------------------------------------------------------

// Comparator imposes a total order on values of type T. The result of Compare
// follows the usual convention: negative if a < b, 0 if a == b, positive if a > b.
//
// Comparators are handed around as pointers. Sets check operands for a compatible
// comparator before combining them: two comparators are compatible if they are the
// same object or if they carry the same non-empty name. Clients should therefore
// re-use a comparator for all sets they intend to combine, or name their
// comparators consistently.
type Comparator[T any] struct {
	name string
	cmp  func(a, b T) int
}

// NewComparator creates a named comparator from a comparison function.
// An empty name means that the comparator is only compatible with itself.
func NewComparator[T any](name string, cmp func(a, b T) int) *Comparator[T] {
	if cmp == nil {
		return nil
	}
	return &Comparator[T]{name: name, cmp: cmp}
}

// Compare compares a and b.
func (c *Comparator[T]) Compare(a, b T) int {
	return c.cmp(a, b)
}

// Less is a shortcut for Compare(a, b) < 0.
func (c *Comparator[T]) Less(a, b T) bool {
	return c.cmp(a, b) < 0
}

// Name returns the name of the comparator, which may be empty.
func (c *Comparator[T]) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Compatible returns true if sets ordered by c may be combined with sets
// ordered by other.
func (c *Comparator[T]) Compatible(other *Comparator[T]) bool {
	if c == nil || other == nil {
		return false
	}
	if c == other {
		return true
	}
	return c.name != "" && c.name == other.name
}

func (c *Comparator[T]) String() string {
	if c == nil {
		return "<no comparator>"
	}
	if c.name == "" {
		return fmt.Sprintf("<comparator %p>", c)
	}
	return c.name
}

// Natural returns a comparator for the natural order of T, i.e. "a <= b".
func Natural[T constraints.Ordered]() *Comparator[T] {
	return NewComparator("a <= b", func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
}

// Reverse returns a comparator with the inverse order of c.
func Reverse[T any](c *Comparator[T]) *Comparator[T] {
	if c == nil {
		return nil
	}
	name := ""
	if c.name != "" {
		name = "reverse(" + c.name + ")"
	}
	return NewComparator(name, func(a, b T) int {
		return c.cmp(b, a)
	})
}

// FromGods adapts a comparator of the gods container library, e.g.
// utils.IntComparator, to a typed comparator.
//
//	cmp := linkset.FromGods[int]("int", utils.IntComparator)
func FromGods[T any](name string, c utils.Comparator) *Comparator[T] {
	if c == nil {
		return nil
	}
	return NewComparator(name, func(a, b T) int {
		return c(a, b)
	})
}

// Gods returns c as a comparator usable with the gods container library.
// Values of a type other than T will panic.
func (c *Comparator[T]) Gods() utils.Comparator {
	return func(a, b interface{}) int {
		return c.cmp(a.(T), b.(T))
	}
}

// --- Predicates and pairs --------------------------------------------------

// Predicate is a boolean function over set elements, used for filtering.
type Predicate[T any] func(T) bool

// Pair is an ordered pair of values, as produced by cartesian products.
type Pair[F, S any] struct {
	First  F
	Second S
}

// PairOf creates a pair (first, second).
func PairOf[F, S any](first F, second S) Pair[F, S] {
	return Pair[F, S]{First: first, Second: second}
}

func (p Pair[F, S]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Lexicographic returns a comparator for pairs, ordering by the first component
// and then by the second. The comparator is named after its component
// comparators, making it compatible with other lexicographic comparators built
// from the same named components.
func Lexicographic[F, S any](first *Comparator[F], second *Comparator[S]) *Comparator[Pair[F, S]] {
	if first == nil || second == nil {
		return nil
	}
	name := ""
	if first.name != "" && second.name != "" {
		name = "lex(" + first.name + ", " + second.name + ")"
	}
	return NewComparator(name, func(a, b Pair[F, S]) int {
		if c := first.cmp(a.First, b.First); c != 0 {
			return c
		}
		return second.cmp(a.Second, b.Second)
	})
}
