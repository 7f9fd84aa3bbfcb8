/*
Package visit instruments set elements with visitation counters.

Every key of a visited set is wrapped into a Counted cell. Comparing two
counted keys with a counting comparator increments the counters of both keys.
This makes it possible to check how often an algorithm looked at each element,
and whether it advanced the correct cursor while merging two chains:

	S, _ := visit.Build(sets.AsCopy, []int{1, 2, 3, 5}, linkset.Natural[int]())
	T, _ := visit.Build(sets.AsCopy, []int{2, 3}, linkset.Natural[int]())
	D, _ := visit.Of(S.Difference(T))
	S.Visits()   // [1 1 1 0]
	T.Visits()   // [2 1]

Reading a key with Peek never counts, reading it with Observe always does.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package visit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkset.visit'.
func tracer() tracing.Trace {
	return tracing.Select("linkset.visit")
}
