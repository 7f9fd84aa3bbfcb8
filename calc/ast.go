package calc

import (
	"fmt"
	"strings"

	"github.com/npillmayer/linkset"
	"github.com/npillmayer/linkset/sets"
)

// StmtKind is the kind of a statement.
type StmtKind int8

// Kinds of statements.
const (
	NoOp    StmtKind = iota // empty line or comment
	SetMode                 // mode copy | mode inplace
	Assign                  // A = Expr
	Show                    // show Expr, or a bare Expr
	Visits                  // visits Op
)

// Stmt is a parsed line of input.
type Stmt struct {
	Kind StmtKind
	Name string    // variable for Assign
	Mode sets.Kind // for SetMode
	Expr Expr      // for Assign, Show and Visits
}

func (stmt *Stmt) String() string {
	switch stmt.Kind {
	case SetMode:
		if stmt.Mode == sets.InPlace {
			return "mode inplace"
		}
		return "mode copy"
	case Assign:
		return stmt.Name + " = " + stmt.Expr.String()
	case Show:
		return "show " + stmt.Expr.String()
	case Visits:
		return "visits " + stmt.Expr.String()
	}
	return ""
}

// Expr is an expression denoting a set.
type Expr interface {
	Span() Span
	String() string
}

// Ref is a reference to a variable.
type Ref struct {
	Name string
	span Span
}

// Span is part of interface Expr.
func (r *Ref) Span() Span { return r.span }

func (r *Ref) String() string { return r.Name }

// Literal is a list of keys, e.g. [1 2 3].
type Literal struct {
	Keys []int
	span Span
}

// Span is part of interface Expr.
func (l *Literal) Span() Span { return l.span }

func (l *Literal) String() string {
	return fmt.Sprint(l.Keys)
}

// OpKind denotes a set operation.
type OpKind int8

// Set operations.
const (
	Diff OpKind = iota
	Inter
	Subset
	Product
)

var opNames = []string{"diff", "inter", "subset", "product"}

func (k OpKind) String() string {
	return opNames[k]
}

// Op is the application of a set operation to its operands.
type Op struct {
	Kind    OpKind
	Args    []Expr
	Clauses []Clause // for Subset
	span    Span
}

// Span is part of interface Expr.
func (op *Op) Span() Span { return op.span }

func (op *Op) String() string {
	var b strings.Builder
	b.WriteString(op.Kind.String())
	for _, arg := range op.Args {
		b.WriteByte(' ')
		if _, nested := arg.(*Op); nested {
			b.WriteString("(" + arg.String() + ")")
			continue
		}
		b.WriteString(arg.String())
	}
	for _, c := range op.Clauses {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
	return b.String()
}

// Clause is a condition on a key x, either `x Cmp N` or, for Mod > 0,
// `x % Mod Cmp N`.
type Clause struct {
	Mod int
	Cmp TokType // one of '<', '>', LessEq, GreaterEq, EqEq, NotEq
	N   int
}

// Holds tests the clause for x.
func (c Clause) Holds(x int) bool {
	if c.Mod != 0 {
		x %= c.Mod
	}
	switch c.Cmp {
	case '<':
		return x < c.N
	case '>':
		return x > c.N
	case LessEq:
		return x <= c.N
	case GreaterEq:
		return x >= c.N
	case EqEq:
		return x == c.N
	case NotEq:
		return x != c.N
	}
	panic(fmt.Sprintf("clause with unknown comparison %d", c.Cmp))
}

func (c Clause) String() string {
	op := cmpOps[c.Cmp]
	if c.Mod != 0 {
		return fmt.Sprintf("%% %d %s %d", c.Mod, op, c.N)
	}
	return fmt.Sprintf("%s %d", op, c.N)
}

var cmpOps = map[TokType]string{
	'<': "<", '>': ">", LessEq: "<=", GreaterEq: ">=", EqEq: "==", NotEq: "!=",
}

// Conjunction creates a predicate which holds if all clauses hold.
func Conjunction(clauses []Clause) linkset.Predicate[int] {
	return func(x int) bool {
		for _, c := range clauses {
			if !c.Holds(x) {
				return false
			}
		}
		return true
	}
}
