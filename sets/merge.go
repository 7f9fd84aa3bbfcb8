package sets

import (
	"github.com/npillmayer/linkset"
	"github.com/npillmayer/linkset/chain"
)

// mergeState is a state of the cursor machine shared by difference and
// intersection. Transitions depend on comparison results and on cursors
// running out of cells only.
type mergeState int8

const (
	comparing mergeState = iota
	advanceSource
	advanceOther
	advanceBoth
	emit
	done
)

func (st mergeState) String() string {
	switch st {
	case comparing:
		return "Comparing"
	case advanceSource:
		return "AdvanceSource"
	case advanceOther:
		return "AdvanceOther"
	case advanceBoth:
		return "AdvanceBoth"
	case emit:
		return "Emit"
	case done:
		return "Done"
	}
	return "<unknown state>"
}

// differenceStep decides for a difference x ∖ y, given c = cmp(x, y).
//
//	x < y :  x cannot occur in y any more   ⇒ emit x, advance x
//	x = y :  x is in both                    ⇒ advance x and y
//	x > y :  y cannot match any x ≥ here     ⇒ advance y
func differenceStep(c int) mergeState {
	switch {
	case c < 0:
		return emit
	case c == 0:
		return advanceBoth
	}
	return advanceOther
}

// difference computes source ∖ other by merging both chains. Once other is
// exhausted, the rest of source is taken over without any further comparison.
// Cells of other are only read.
func difference[T any](p policy[T], source, other *chain.Node[T], cmp *linkset.Comparator[T]) *chain.Node[T] {
	var result chain.Builder[T]
	x, y := source, other
	for x != nil {
		if y == nil {
			tracer().Debugf("difference: other exhausted, taking rest from %v", x)
			p.rest(&result, x)
			break
		}
		state := differenceStep(cmp.Compare(x.Key, y.Key))
		tracer().Debugf("difference: %s for x=%v, y=%v", state, x, y)
		switch state {
		case emit:
			next := x.Next
			result.Append(p.take(x))
			x = next
		case advanceBoth:
			next := x.Next
			y = y.Next // advance y before x may get cut off
			p.drop(x)
			x = next
		case advanceOther:
			y = y.Next
		}
	}
	tracer().Debugf("difference: %s, result has %d elements", done, result.Len())
	return result.Head()
}

// intersection computes the intersection of a list of chains, using one cursor
// per chain. In each step the current keys are compared against a running
// minimum, requiring n-1 comparisons. If all cursors tie, the key is in every
// chain and the cell of the first chain is emitted. Otherwise all cursors tied
// at the minimum advance, as they cannot match any of the other cursors.
// Result cells are always taken from the first chain; the other chains are only
// read.
func intersection[T any](p policy[T], heads []*chain.Node[T], cmp *linkset.Comparator[T]) *chain.Node[T] {
	var result chain.Builder[T]
	cursors := make([]*chain.Node[T], len(heads))
	copy(cursors, heads)
	tied := make([]int, 0, len(cursors)) // indices of cursors at the minimum
	for !exhausted(cursors) {
		min := cursors[0]
		tied = append(tied[:0], 0)
		for i := 1; i < len(cursors); i++ {
			c := cmp.Compare(cursors[i].Key, min.Key)
			if c < 0 {
				min = cursors[i]
				tied = append(tied[:0], i)
			} else if c == 0 {
				tied = append(tied, i)
			}
		}
		if len(tied) == len(cursors) {
			tracer().Debugf("intersection: %s %v", emit, cursors[0])
			x := cursors[0]
			next := x.Next
			for i := 1; i < len(cursors); i++ {
				cursors[i] = cursors[i].Next
			}
			result.Append(p.take(x))
			cursors[0] = next
			continue
		}
		// advance the cursors at the minimum, cursor 0 last, as chains may alias
		for j := len(tied) - 1; j >= 0; j-- {
			i := tied[j]
			if i == 0 {
				tracer().Debugf("intersection: %s %v", advanceSource, cursors[0])
				next := cursors[0].Next
				p.drop(cursors[0])
				cursors[0] = next
			} else {
				tracer().Debugf("intersection: %s %v", advanceOther, cursors[i])
				cursors[i] = cursors[i].Next
			}
		}
	}
	tracer().Debugf("intersection: %s, result has %d elements", done, result.Len())
	return result.Head()
}

func exhausted[T any](cursors []*chain.Node[T]) bool {
	for _, c := range cursors {
		if c == nil {
			return true
		}
	}
	return false
}

// subset filters a chain, calling pred exactly once per cell, in chain order.
func subset[T any](p policy[T], head *chain.Node[T], pred linkset.Predicate[T]) *chain.Node[T] {
	var result chain.Builder[T]
	for x := head; x != nil; {
		next := x.Next
		if pred(x.Key) {
			result.Append(p.take(x))
		} else {
			p.drop(x)
		}
		x = next
	}
	return result.Head()
}

// product pairs every key of source with every key of other, source keys
// varying slowest. Pairs are new cells in any case.
func product[T any](source, other *chain.Node[T]) *chain.Node[linkset.Pair[T, T]] {
	var result chain.Builder[linkset.Pair[T, T]]
	for x := source; x != nil; x = x.Next {
		for y := other; y != nil; y = y.Next {
			result.AppendKey(linkset.PairOf(x.Key, y.Key))
		}
	}
	return result.Head()
}
