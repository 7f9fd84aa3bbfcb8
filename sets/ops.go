package sets

import (
	"github.com/npillmayer/linkset"
	"github.com/npillmayer/linkset/chain"
)

// Subset returns the set of elements for which pred holds, in unchanged order.
// pred is evaluated exactly once per element.
func (s *set[T]) Subset(pred linkset.Predicate[T]) (OrderedSet[T], error) {
	if pred == nil {
		return nil, linkset.Violation("subset", "predicate missing")
	}
	if s.cmp == nil {
		return nil, linkset.Violation("subset", "set without comparator")
	}
	tracer().Debugf("subset of %s set %s", s.Kind(), s)
	head := subset(s.policy, s.head, pred)
	s.consume()
	return Trust(s.Kind(), head, s.cmp), nil
}

// CartesianProduct returns the set of all pairs (x, y) with x from s and y from
// other. Pairs are ordered by x first, then by y, which is the order of
// generation. The result is of the kind of s. Pair cells are always new, thus
// neither s nor other is consumed, regardless of their kind.
//
// CartesianProduct is a function rather than a method of OrderedSet, as a set of
// pairs is an OrderedSet itself and may again be an operand of a product.
func CartesianProduct[T any](s, other OrderedSet[T]) (OrderedSet[linkset.Pair[T, T]], error) {
	if err := checkOperands("cartesianProduct", s, other); err != nil {
		return nil, err
	}
	tracer().Debugf("cartesian product %s × %s", s, other)
	head := product(s.Head(), other.Head())
	return Trust(s.Kind(), head, linkset.Lexicographic(s.Comparator(), s.Comparator())), nil
}

// Difference returns the set of elements of s which are not in other.
// Sets of kind InPlace move their result cells from s to the result and leave s
// empty; other is never changed.
func (s *set[T]) Difference(other OrderedSet[T]) (OrderedSet[T], error) {
	if err := s.checkOperand("difference", other); err != nil {
		return nil, err
	}
	tracer().Debugf("difference %s ∖ %s", s, other)
	head := difference(s.policy, s.head, other.Head(), s.cmp)
	s.consume()
	return Trust(s.Kind(), head, s.cmp), nil
}

// Intersection returns the set of elements contained in s and in all of the others.
// With no others given, the result has the elements of s.
// Sets of kind InPlace move their result cells from s to the result and leave s
// empty; the others are never changed.
func (s *set[T]) Intersection(others ...OrderedSet[T]) (OrderedSet[T], error) {
	var heads chain.Builder[*chain.Node[T]]
	heads.AppendKey(s.head)
	for _, other := range others {
		if err := s.checkOperand("intersection", other); err != nil {
			return nil, err
		}
		heads.AppendKey(other.Head())
	}
	return s.IntersectionListItems(heads.Head())
}

// IntersectionListItems intersects a list of chains, given as a chain of heads.
// The chains have to be ordered by the comparator of s. The result is of the
// kind of s and ordered by its comparator. Sets of kind InPlace take their result
// cells from the first chain; if this is the chain of s, s is left empty.
//
// The first chain is consumed by an InPlace receiver even if it belongs to
// another set: cells not in the result are cut off, so the owner of that chain
// must not use it afterwards. Chains after the first are never changed.
func (s *set[T]) IntersectionListItems(heads *chain.Node[*chain.Node[T]]) (OrderedSet[T], error) {
	if s.cmp == nil {
		return nil, linkset.Violation("intersection", "set without comparator")
	}
	if heads == nil {
		return nil, linkset.Violation("intersection", "no chains to intersect")
	}
	chains := chain.Keys(heads)
	tracer().Debugf("intersection of %d chains", len(chains))
	first := chains[0]
	head := intersection(s.policy, chains, s.cmp)
	if first == s.head {
		s.consume()
	}
	return Trust(s.Kind(), head, s.cmp), nil
}

// checkOperand rejects operands which may not be combined with s.
func (s *set[T]) checkOperand(op string, other OrderedSet[T]) error {
	return checkOperands[T](op, s, other)
}

// checkOperands rejects pairs of sets which may not be combined.
func checkOperands[T any](op string, s, other OrderedSet[T]) error {
	if s == nil {
		return linkset.Violation(op, "set missing")
	}
	cmp := s.Comparator()
	if cmp == nil {
		return linkset.Violation(op, "set without comparator")
	}
	if other == nil {
		return linkset.Violation(op, "operand missing")
	}
	if !cmp.Compatible(other.Comparator()) {
		return linkset.Violation(op, "incompatible comparators %s and %s", cmp, other.Comparator())
	}
	if other.Kind() != s.Kind() {
		return linkset.Violation(op, "cannot combine %s set with %s set", s.Kind(), other.Kind())
	}
	return nil
}

// consume empties an in-place set after its cells have been moved.
func (s *set[T]) consume() {
	if s.policy.consumes() {
		s.head = nil
	}
}
