package chain

// Seq is a sequence over the cells of a chain. It is lazy, finite and may be
// consumed only once. Usage:
//
//	seq := chain.Iterate(head)
//	for seq.Next() {
//		key := seq.Item()
//		…
//	}
type Seq[T any] struct {
	current *Node[T]
	next    *Node[T]
	done    bool
}

// Iterate creates a sequence over the chain starting at head.
func Iterate[T any](head *Node[T]) *Seq[T] {
	return &Seq[T]{next: head, done: head == nil}
}

// Next moves to the next cell and returns false if there is none left.
// The successor is read before the current cell is handed out, thus clients
// may re-link the current cell without breaking the sequence.
func (seq *Seq[T]) Next() bool {
	if seq.done {
		return false
	}
	if seq.next == nil {
		seq.Break()
		return false
	}
	seq.current = seq.next
	seq.next = seq.current.Next
	return true
}

// Item returns the key of the current cell.
func (seq *Seq[T]) Item() T {
	if seq.current == nil {
		var zero T
		return zero
	}
	return seq.current.Key
}

// Node returns the current cell.
func (seq *Seq[T]) Node() *Node[T] {
	return seq.current
}

// Break signals a sequence to stop iterating.
func (seq *Seq[T]) Break() {
	seq.done = true
	seq.current = nil
	seq.next = nil
}

// Done returns true if a sequence stopped iterating.
func (seq *Seq[T]) Done() bool {
	return seq.done
}

// List collects the remaining keys of a sequence, consuming it.
func (seq *Seq[T]) List() []T {
	var keys []T
	for seq.Next() {
		keys = append(keys, seq.Item())
	}
	return keys
}
