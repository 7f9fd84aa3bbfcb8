/*
Package linkset is a toolbox for sorted sets on singly linked lists.

A set is a chain of list cells, kept in strictly ascending order under a
comparator, without duplicates. Set operations come in two flavours:
one which never touches its operands and allocates fresh cells for every
result element, and one which re-links the operands' cells into the result,
consuming the operand in the process. Package structure is as follows:

■ chain: Package chain implements list cells, literal construction and
traversal of cell chains.

■ sets: Package sets implements ordered sets on chains, together with the
set operations subset, cartesian product, difference and intersection.

■ visit: Package visit instruments set elements with visitation counters, to
check how often an algorithm touches each element.

■ calc: Package calc implements a tiny expression language for set operations,
used by the interactive tool in cmd/srepl.

The base package contains data types which are used throughout all the other packages:
comparators, predicates, pairs and error types.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package linkset
