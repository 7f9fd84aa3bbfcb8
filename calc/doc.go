/*
Package calc implements a small line-oriented language for set expressions over
integers. It drives the ordered sets of package sets and is the engine behind
the srepl command line tool.

Statements are given one per line:

	mode inplace                ; switch kind of sets for subsequent statements
	A = [1 2 3 5]               ; bind a variable
	diff A [2 3]                ; {1, 5}
	inter A [2 3 8 9] [3 8]     ; {3}
	subset A > 1 % 2 == 1       ; {3, 5}
	product [1 2] [10 20]       ; {(1, 10), (1, 20), (2, 10), (2, 20)}
	visits diff A [2 3]         ; count comparator calls per element
	show A

Operands are variables, literal lists of ascending keys, or parenthesized
expressions. A subset is filtered by a conjunction of clauses, where each
clause either compares an element to a number (`> 1`) or compares the
remainder of a division (`% 2 == 1`).

Variables hold keys, not sets. Every operation creates fresh sets from its
operands' keys, thus in-place operations never destroy a variable.

The language is scanned by a lexmachine DFA and parsed by recursive descent,
with a single token of look-ahead:

	Stmt    ➞ mode copy | mode inplace | id = Expr | show Expr | visits Op | Expr
	Expr    ➞ Op | Operand
	Op      ➞ diff Operand Operand | inter Operand Operand* | subset Operand Clause Clause*
	        |  product Operand Operand
	Operand ➞ id | [ num* ] | ( Expr )
	Clause  ➞ CmpOp num | % num CmpOp num

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package calc

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linkset.calc'.
func tracer() tracing.Trace {
	return tracing.Select("linkset.calc")
}
