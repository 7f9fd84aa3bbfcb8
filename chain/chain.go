package chain

import (
	"bytes"
	"fmt"
)

// Node is a list cell, holding a key and a link to its successor.
// A Node belongs to exactly one chain at a time.
type Node[T any] struct {
	Key  T
	Next *Node[T]
}

// New creates a single, unlinked cell.
func New[T any](key T) *Node[T] {
	return &Node[T]{Key: key}
}

// Of creates a chain from literal keys, in argument order.
// Of() returns the empty chain, i.e. nil.
func Of[T any](keys ...T) *Node[T] {
	return FromSlice(keys)
}

// FromSlice creates a chain from a slice of keys.
func FromSlice[T any](keys []T) *Node[T] {
	var b Builder[T]
	for _, k := range keys {
		b.AppendKey(k)
	}
	return b.Head()
}

// Map creates a new chain with keys mapped from the keys of head.
func Map[T, R any](head *Node[T], mapper func(T) R) *Node[R] {
	var b Builder[R]
	for n := head; n != nil; n = n.Next {
		b.AppendKey(mapper(n.Key))
	}
	return b.Head()
}

// Copy creates a new chain with the same keys as head.
func Copy[T any](head *Node[T]) *Node[T] {
	return Map(head, func(k T) T { return k })
}

// Len counts the cells of a chain.
func Len[T any](head *Node[T]) int {
	cnt := 0
	for n := head; n != nil; n = n.Next {
		cnt++
	}
	return cnt
}

// Last returns the last cell of a chain, or nil for the empty chain.
func Last[T any](head *Node[T]) *Node[T] {
	if head == nil {
		return nil
	}
	n := head
	for n.Next != nil {
		n = n.Next
	}
	return n
}

// Keys collects the keys of a chain into a slice.
func Keys[T any](head *Node[T]) []T {
	keys := make([]T, 0, Len(head))
	for n := head; n != nil; n = n.Next {
		keys = append(keys, n.Key)
	}
	return keys
}

// Nodes collects the cells of a chain into a slice.
func Nodes[T any](head *Node[T]) []*Node[T] {
	nodes := make([]*Node[T], 0, Len(head))
	for n := head; n != nil; n = n.Next {
		nodes = append(nodes, n)
	}
	return nodes
}

// Same is true if a and b are the same cell, not merely cells with equal keys.
func Same[T any](a, b *Node[T]) bool {
	return a == b
}

// Contains is true if cell n is part of the chain starting at head.
func Contains[T any](head *Node[T], n *Node[T]) bool {
	for c := head; c != nil; c = c.Next {
		if c == n {
			return true
		}
	}
	return false
}

// String returns the keys of a chain, e.g. "[1 2 3]".
func String[T any](head *Node[T]) string {
	var b bytes.Buffer
	b.WriteString("[")
	for n := head; n != nil; n = n.Next {
		if n != head {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%v", n.Key))
	}
	b.WriteString("]")
	return b.String()
}

func (n *Node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<%v>", n.Key)
}

// --- Builder ---------------------------------------------------------------

// Builder assembles a chain by appending at the tail. The zero value is an
// empty builder, ready to use.
type Builder[T any] struct {
	head, tail *Node[T]
	length     int
}

// AppendKey appends a new cell holding key.
func (b *Builder[T]) AppendKey(key T) *Node[T] {
	n := New(key)
	b.link(n)
	return n
}

// Append moves cell n to the end of the chain under construction.
// n is cut off from its successor, thus clients have to read n.Next before
// handing n over.
//
//	next := x.Next
//	b.Append(x)   // x now belongs to b
//	x = next
func (b *Builder[T]) Append(n *Node[T]) {
	if n == nil {
		return
	}
	n.Next = nil
	b.link(n)
}

// Splice attaches a complete chain at the end of the chain under construction.
// The chain is taken over as a whole, without copying.
func (b *Builder[T]) Splice(rest *Node[T]) {
	if rest == nil {
		return
	}
	if b.tail == nil {
		b.head = rest
	} else {
		b.tail.Next = rest
	}
	for b.tail = rest; ; b.tail = b.tail.Next {
		b.length++
		if b.tail.Next == nil {
			break
		}
	}
	tracer().Debugf("spliced chain, builder now has %d cells", b.length)
}

func (b *Builder[T]) link(n *Node[T]) {
	if b.tail == nil {
		b.head = n
	} else {
		b.tail.Next = n
	}
	b.tail = n
	b.length++
}

// Head returns the first cell of the chain under construction.
func (b *Builder[T]) Head() *Node[T] {
	return b.head
}

// Len returns the number of cells appended so far.
func (b *Builder[T]) Len() int {
	return b.length
}
