package sets

import "github.com/npillmayer/linkset/chain"

// policy decides where result cells come from. Operations read the successor
// of a receiver cell before handing the cell to the policy, thus a policy is
// free to re-link the cell.
type policy[T any] interface {
	kind() Kind
	take(n *chain.Node[T]) *chain.Node[T]       // cell to put into the result for n
	drop(n *chain.Node[T])                      // n will not be part of the result
	rest(b *chain.Builder[T], n *chain.Node[T]) // append n and all of its successors
	consumes() bool                             // does an operation empty the receiver?
}

// copying allocates a new cell for every result element.
type copying[T any] struct{}

func (copying[T]) kind() Kind {
	return AsCopy
}

func (copying[T]) take(n *chain.Node[T]) *chain.Node[T] {
	return chain.New(n.Key)
}

func (copying[T]) drop(*chain.Node[T]) {}

func (copying[T]) rest(b *chain.Builder[T], n *chain.Node[T]) {
	for ; n != nil; n = n.Next {
		b.AppendKey(n.Key)
	}
}

func (copying[T]) consumes() bool {
	return false
}

// relinking moves the receiver's cells to the result. Dropped cells are cut
// off from their successors, so that no cell stays reachable from two chains.
type relinking[T any] struct{}

func (relinking[T]) kind() Kind {
	return InPlace
}

func (relinking[T]) take(n *chain.Node[T]) *chain.Node[T] {
	return n
}

func (relinking[T]) drop(n *chain.Node[T]) {
	n.Next = nil
}

func (relinking[T]) rest(b *chain.Builder[T], n *chain.Node[T]) {
	b.Splice(n)
}

func (relinking[T]) consumes() bool {
	return true
}
