package visit

import (
	"github.com/npillmayer/linkset"
	"github.com/npillmayer/linkset/chain"
	"github.com/npillmayer/linkset/sets"
)

// Set is an ordered set of counted values. It decorates a set of either kind and
// adds accessors which read keys without visiting them.
type Set[T any] struct {
	*sets.Decorator[*Counted[T]]
}

// Build creates a visited set of kind k from literal keys, ordered by a counting
// comparator derived from cmp. Validating the keys requires comparisons; their
// visits are discarded, thus all counts are 0 after Build.
func Build[T any](k sets.Kind, keys []T, cmp *linkset.Comparator[T]) (*Set[T], error) {
	return BuildWith(k, keys, Comparing(cmp))
}

// BuildWith is like Build, but uses an existing counting comparator. Use it to
// create operands which share the comparator of another visited set.
func BuildWith[T any](k sets.Kind, keys []T, cmp *linkset.Comparator[*Counted[T]]) (*Set[T], error) {
	head := chain.Map(chain.FromSlice(keys), Count[T])
	s, err := sets.FromChain(k, head, cmp)
	if err != nil {
		return nil, err
	}
	v := Wrap(s)
	v.Reset()
	tracer().Debugf("built visited %s set %s", k, v)
	return v, nil
}

// Wrap decorates a set of counted values. Counts are left as they are.
func Wrap[T any](s sets.OrderedSet[*Counted[T]]) *Set[T] {
	if s == nil {
		return nil
	}
	if v, ok := s.(*Set[T]); ok {
		return v
	}
	return &Set[T]{Decorator: sets.Decorate(s)}
}

// Of wraps the result of a set operation, passing errors through:
//
//	D, err := visit.Of(S.Difference(T))
func Of[T any](s sets.OrderedSet[*Counted[T]], err error) (*Set[T], error) {
	if err != nil {
		return nil, err
	}
	return Wrap(s), nil
}

// PeekKeys returns the keys of the set without visiting them.
func (s *Set[T]) PeekKeys() []T {
	keys := make([]T, 0, s.Len())
	for n := s.Head(); n != nil; n = n.Next {
		keys = append(keys, n.Key.Peek())
	}
	return keys
}

// Elements returns the counted elements of the set, in order.
func (s *Set[T]) Elements() []*Counted[T] {
	return chain.Keys(s.Head())
}

// Visits returns the visitation counts of the elements, in order.
func (s *Set[T]) Visits() []int {
	visits := make([]int, 0, s.Len())
	for n := s.Head(); n != nil; n = n.Next {
		visits = append(visits, n.Key.Visits())
	}
	return visits
}

// Reset sets the visitation counts of all elements to 0.
func (s *Set[T]) Reset() {
	for n := s.Head(); n != nil; n = n.Next {
		n.Key.Reset()
	}
}

// DeepCopy returns a set of the same kind with new cells, holding the same
// counted elements. Visiting an element of the copy is visible in s and vice
// versa. DeepCopy does not compare, thus counts are unchanged.
func (s *Set[T]) DeepCopy() *Set[T] {
	head := chain.Copy(s.Head())
	return Wrap(sets.Trust(s.Kind(), head, s.Comparator()))
}

// Where is like Subset, but for a predicate over plain values. Each element is
// visited once.
func (s *Set[T]) Where(pred linkset.Predicate[T]) (*Set[T], error) {
	return Of(s.Decorator.Subset(Filter(pred)))
}
