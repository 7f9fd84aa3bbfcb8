/*
Package chain implements singly linked list cells, the building blocks for
the ordered sets of package sets.

A chain is identified by its first cell, the head. The empty chain is nil.
Chains are built from literal keys

	head := chain.Of(1, 2, 3, 5)

and traversed with a sequence, which is lazy and can be consumed only once:

	seq := chain.Iterate(head)
	for seq.Next() {
		fmt.Println(seq.Item())
	}

Cells have identity: two cells holding equal keys are still different cells.
Type Snapshot remembers the cells of a chain, so that clients may later check
whether a cell of another chain has been taken over from it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package chain

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkset.chain'.
func tracer() tracing.Trace {
	return tracing.Select("linkset.chain")
}
