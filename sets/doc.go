/*
Package sets implements ordered sets on singly linked chains.

An ordered set is a chain of cells, strictly ascending under a comparator.
Sets are created from literal keys and validated once, at construction time:

	cmp := linkset.Natural[int]()
	M, err := sets.Build(sets.AsCopy, []int{1, 2, 3, 5}, cmp)
	N, err := sets.Build(sets.AsCopy, []int{2, 3}, cmp)
	D, err := M.Difference(N)   // D = {1, 5}

Operations never re-sort or repair their input. They assume valid operands and
rely on the ordering to work in a single pass, merging the operand chains with
running cursors.

# Copy and In-Place

There are two kinds of sets, differing in how operations treat their operands.
Sets of kind AsCopy never touch their operands and allocate fresh cells for
each result element. Sets of kind InPlace re-link the receiver's cells into the
result. Unusually, this means that in-place operations are destructive: after
the call the receiver is empty, and its former cells either belong to the result
or have been dropped. Operands other than the receiver are only read.

Both kinds share the same algorithms; they differ in a small policy deciding
whether a result cell is a copy or the original cell.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package sets

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkset.sets'.
func tracer() tracing.Trace {
	return tracing.Select("linkset.sets")
}
