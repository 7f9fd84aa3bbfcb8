package sets

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/linkset"
	"github.com/npillmayer/linkset/chain"
)

// Kind tells how a set treats its cells during operations.
type Kind int8

// Kinds of sets.
const (
	AsCopy  Kind = iota // operations copy cells, operands are left untouched
	InPlace             // operations re-link the receiver's cells into the result
)

func (k Kind) String() string {
	switch k {
	case AsCopy:
		return "as-copy"
	case InPlace:
		return "in-place"
	}
	return fmt.Sprintf("<kind %d>", int8(k))
}

// OrderedSet is a set of keys on a singly linked chain. Traversing the chain from
// Head yields a strictly ascending sequence of keys under Comparator.
//
// Operations return errors only for programming errors, i.e. a missing predicate
// or operands with incompatible comparators. In this case the error is an
// *linkset.InvariantViolationError and no result is returned.
type OrderedSet[T any] interface {
	Head() *chain.Node[T]                // first cell, nil for the empty set
	Comparator() *linkset.Comparator[T]  // ordering of the set
	Kind() Kind                          // copy or in-place
	Keys() *chain.Seq[T]                 // single-use sequence over the keys
	Len() int                            // number of elements
	IsEmpty() bool                       // true for the empty set
	Subset(linkset.Predicate[T]) (OrderedSet[T], error)
	Difference(OrderedSet[T]) (OrderedSet[T], error)
	Intersection(...OrderedSet[T]) (OrderedSet[T], error)
	IntersectionListItems(*chain.Node[*chain.Node[T]]) (OrderedSet[T], error)
	String() string
}

// set is the common base of both kinds of sets. All the operations are
// implemented here, parameterized by the node policy of the concrete kind.
type set[T any] struct {
	head   *chain.Node[T]
	cmp    *linkset.Comparator[T]
	policy policy[T]
}

// CopySet is a set whose operations leave their operands untouched. Results
// consist of newly allocated cells only.
type CopySet[T any] struct {
	set[T]
}

// InPlaceSet is a set whose operations move the receiver's cells to the result.
// After an operation the receiver is empty.
type InPlaceSet[T any] struct {
	set[T]
}

var _ OrderedSet[int] = (*CopySet[int])(nil)
var _ OrderedSet[int] = (*InPlaceSet[int])(nil)

// --- Construction ----------------------------------------------------------

// Build creates a set of kind k from literal keys. The keys have to be given in
// strictly ascending order under cmp.
func Build[T any](k Kind, keys []T, cmp *linkset.Comparator[T]) (OrderedSet[T], error) {
	return FromChain(k, chain.FromSlice(keys), cmp)
}

// FromChain creates a set of kind k from an existing chain. The chain is validated
// and taken over by the set.
func FromChain[T any](k Kind, head *chain.Node[T], cmp *linkset.Comparator[T]) (OrderedSet[T], error) {
	switch k {
	case AsCopy:
		s, err := NewCopySet(head, cmp)
		if err != nil {
			return nil, err
		}
		return s, nil
	case InPlace:
		s, err := NewInPlaceSet(head, cmp)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, linkset.Violation("build", "unknown kind of set: %s", k)
}

// NewCopySet creates a copying set from a chain, checking the chain for order and
// uniqueness of keys.
func NewCopySet[T any](head *chain.Node[T], cmp *linkset.Comparator[T]) (*CopySet[T], error) {
	if err := Validate(head, cmp); err != nil {
		return nil, err
	}
	return copySet(head, cmp), nil
}

// NewInPlaceSet creates an in-place set from a chain, checking the chain for order
// and uniqueness of keys.
func NewInPlaceSet[T any](head *chain.Node[T], cmp *linkset.Comparator[T]) (*InPlaceSet[T], error) {
	if err := Validate(head, cmp); err != nil {
		return nil, err
	}
	return inPlaceSet(head, cmp), nil
}

// Trust wraps a chain as a set of kind k without validating it. Clients have to
// guarantee that the chain is strictly ascending under cmp, for example because
// it has been derived from a valid set.
func Trust[T any](k Kind, head *chain.Node[T], cmp *linkset.Comparator[T]) OrderedSet[T] {
	if k == InPlace {
		return inPlaceSet(head, cmp)
	}
	return copySet(head, cmp)
}

func copySet[T any](head *chain.Node[T], cmp *linkset.Comparator[T]) *CopySet[T] {
	return &CopySet[T]{set[T]{head: head, cmp: cmp, policy: copying[T]{}}}
}

func inPlaceSet[T any](head *chain.Node[T], cmp *linkset.Comparator[T]) *InPlaceSet[T] {
	return &InPlaceSet[T]{set[T]{head: head, cmp: cmp, policy: relinking[T]{}}}
}

// Validate checks in a single pass that the keys of a chain are strictly
// ascending under cmp. It returns an *linkset.InvalidOrderingError for a
// descending pair of neighbours and an *linkset.DuplicateKeyError for
// neighbours comparing as equal.
func Validate[T any](head *chain.Node[T], cmp *linkset.Comparator[T]) error {
	if cmp == nil {
		return linkset.Violation("validate", "set without comparator")
	}
	if head == nil {
		return nil
	}
	i := 1
	for prev, n := head, head.Next; n != nil; prev, n = n, n.Next {
		c := cmp.Compare(prev.Key, n.Key)
		if c > 0 {
			return &linkset.InvalidOrderingError{Index: i, Prev: prev.Key, Next: n.Key}
		} else if c == 0 {
			return &linkset.DuplicateKeyError{Index: i, Key: n.Key}
		}
		i++
	}
	return nil
}

// --- Accessors -------------------------------------------------------------

// Head returns the first cell of the set's chain, or nil.
func (s *set[T]) Head() *chain.Node[T] {
	return s.head
}

// Comparator returns the comparator the set is ordered by.
func (s *set[T]) Comparator() *linkset.Comparator[T] {
	return s.cmp
}

// Kind returns the kind of the set.
func (s *set[T]) Kind() Kind {
	return s.policy.kind()
}

// Keys returns a sequence over the keys of the set.
func (s *set[T]) Keys() *chain.Seq[T] {
	return chain.Iterate(s.head)
}

// Len returns the number of elements of the set.
func (s *set[T]) Len() int {
	return chain.Len(s.head)
}

// IsEmpty returns true for the empty set.
func (s *set[T]) IsEmpty() bool {
	return s.head == nil
}

func (s *set[T]) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for n := s.head; n != nil; n = n.Next {
		if n != s.head {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v", n.Key))
	}
	b.WriteString("}")
	return b.String()
}

// Slice collects the keys of a set into a slice. Nil sets are treated as empty.
func Slice[T any](s OrderedSet[T]) []T {
	if s == nil {
		return []T{}
	}
	return chain.Keys(s.Head())
}

// Equal is true if a and b contain the same keys, compared by a's comparator.
func Equal[T any](a, b OrderedSet[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	cmp := a.Comparator()
	x, y := a.Head(), b.Head()
	for ; x != nil && y != nil; x, y = x.Next, y.Next {
		if cmp.Compare(x.Key, y.Key) != 0 {
			return false
		}
	}
	return x == nil && y == nil
}
