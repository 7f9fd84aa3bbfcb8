package chain

// Snapshot remembers the identity of the cells of a chain at some point in time.
// It is used to find out whether an operation re-used cells or copied them,
// even if the original chain has been re-linked in the meantime.
type Snapshot[T any] struct {
	cells map[*Node[T]]int
}

// Take records the cells of the chain starting at head.
func Take[T any](head *Node[T]) Snapshot[T] {
	s := Snapshot[T]{cells: make(map[*Node[T]]int)}
	i := 0
	for n := head; n != nil; n = n.Next {
		s.cells[n] = i
		i++
	}
	return s
}

// Len returns the number of recorded cells.
func (s Snapshot[T]) Len() int {
	return len(s.cells)
}

// Has is true if n is one of the recorded cells.
func (s Snapshot[T]) Has(n *Node[T]) bool {
	_, ok := s.cells[n]
	return ok
}

// Position returns the position cell n had in the recorded chain, or -1.
func (s Snapshot[T]) Position(n *Node[T]) int {
	if i, ok := s.cells[n]; ok {
		return i
	}
	return -1
}

// Shared returns all cells of the chain starting at head which are recorded
// in the snapshot.
func (s Snapshot[T]) Shared(head *Node[T]) []*Node[T] {
	var shared []*Node[T]
	for n := head; n != nil; n = n.Next {
		if s.Has(n) {
			shared = append(shared, n)
		}
	}
	return shared
}
