package calc

import (
	"fmt"
	"strings"

	"github.com/npillmayer/linkset"
	"github.com/npillmayer/linkset/sets"
	"github.com/npillmayer/linkset/visit"
)

// IntPair is an element of a cartesian product of int sets.
type IntPair = linkset.Pair[int, int]

// Result is the outcome of evaluating a statement. A result either holds keys
// or, for cartesian products, pairs.
type Result struct {
	Keys    []int
	Pairs   []IntPair
	Product bool         // result is a set of pairs
	Visits  []Visitation // for statements of kind Visits
	Note    string       // informational message, e.g. for a change of mode
}

// Visitation reports the visitation counts of the elements of an operand.
type Visitation struct {
	Operand string // operand as written in the statement
	Keys    []int
	Counts  []int
}

// IsEmpty is true for results of statements without a value, e.g. mode changes.
func (r Result) IsEmpty() bool {
	return r.Keys == nil && r.Pairs == nil
}

func (r Result) String() string {
	var b strings.Builder
	b.WriteString("{")
	if r.Product {
		for i, p := range r.Pairs {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
	} else {
		for i, k := range r.Keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", k)
		}
	}
	b.WriteString("}")
	return b.String()
}

// Env is an environment for evaluating statements. It holds the variables and
// the kind of sets operations work on. Variables hold keys, not sets, thus
// in-place operations never change a variable.
type Env struct {
	kind  sets.Kind
	cmp   *linkset.Comparator[int]
	scope *Scope // innermost scope
}

// NewEnv creates an environment working on sets of kind k, with a single
// scope named "global".
func NewEnv(k sets.Kind) *Env {
	return &Env{
		kind:  k,
		cmp:   linkset.Natural[int](),
		scope: NewScope("global", nil),
	}
}

// PushScope opens a new innermost scope. Subsequent assignments define
// variables in the new scope.
func (env *Env) PushScope(name string) *Scope {
	env.scope = NewScope(name, env.scope)
	return env.scope
}

// PopScope closes the innermost scope, dropping its variables. The outermost
// scope is never closed.
func (env *Env) PopScope() *Scope {
	if env.scope.Parent == nil {
		return env.scope
	}
	sc := env.scope
	env.scope = sc.Parent
	return sc
}

// Scope returns the innermost scope.
func (env *Env) Scope() *Scope {
	return env.scope
}

// Kind returns the kind of sets operations currently work on.
func (env *Env) Kind() sets.Kind {
	return env.kind
}

// Lookup returns the value of a variable.
func (env *Env) Lookup(name string) (Result, bool) {
	if v, _ := env.scope.Resolve(name); v != nil {
		return v.Value, true
	}
	return Result{}, false
}

// Names returns the names of all visible variables, sorted.
func (env *Env) Names() []string {
	return env.scope.Visible()
}

// Exec parses and evaluates a line of input.
func (env *Env) Exec(line string) (Result, error) {
	stmt, err := Parse(line)
	if err != nil {
		return Result{}, err
	}
	return env.Eval(stmt)
}

// Eval evaluates a statement. Errors of the set operations are wrapped and may
// be inspected with errors.As.
func (env *Env) Eval(stmt *Stmt) (Result, error) {
	if stmt == nil {
		return Result{}, nil
	}
	tracer().Debugf("eval %s", stmt)
	switch stmt.Kind {
	case SetMode:
		env.kind = stmt.Mode
		return Result{Note: "sets are " + env.kind.String()}, nil
	case Assign:
		r, err := env.eval(stmt.Expr)
		if err != nil {
			return Result{}, err
		}
		env.scope.Define(stmt.Name, r)
		return r, nil
	case Show:
		return env.eval(stmt.Expr)
	case Visits:
		op, ok := stmt.Expr.(*Op)
		if !ok {
			return Result{}, fmt.Errorf("%s: visits needs a set operation", stmt.Expr.Span())
		}
		return env.visits(op)
	}
	return Result{}, nil
}

func (env *Env) eval(e Expr) (Result, error) {
	switch x := e.(type) {
	case *Ref:
		r, ok := env.Lookup(x.Name)
		if !ok {
			return Result{}, fmt.Errorf("%s: undefined variable %s", x.span, x.Name)
		}
		return r, nil
	case *Literal:
		s, err := sets.Build(env.kind, x.Keys, env.cmp)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", x.span, err)
		}
		return Result{Keys: sets.Slice(s)}, nil
	case *Op:
		operands, err := env.operands(x)
		if err != nil {
			return Result{}, err
		}
		return env.apply(x, operands)
	}
	panic(fmt.Sprintf("unknown expression type %T", e))
}

// operands evaluates the arguments of op to sets of the current kind.
func (env *Env) operands(op *Op) ([]sets.OrderedSet[int], error) {
	operands := make([]sets.OrderedSet[int], len(op.Args))
	for i, arg := range op.Args {
		keys, err := env.keys(arg)
		if err != nil {
			return nil, err
		}
		if operands[i], err = sets.Build(env.kind, keys, env.cmp); err != nil {
			return nil, fmt.Errorf("%s: %w", arg.Span(), err)
		}
	}
	return operands, nil
}

func (env *Env) keys(arg Expr) ([]int, error) {
	r, err := env.eval(arg)
	if err != nil {
		return nil, err
	}
	if r.Product {
		return nil, fmt.Errorf("%s: set of pairs %s cannot be an operand", arg.Span(), arg)
	}
	return r.Keys, nil
}

func (env *Env) apply(op *Op, operands []sets.OrderedSet[int]) (Result, error) {
	var result sets.OrderedSet[int]
	var err error
	switch op.Kind {
	case Diff:
		result, err = operands[0].Difference(operands[1])
	case Inter:
		result, err = operands[0].Intersection(operands[1:]...)
	case Subset:
		result, err = operands[0].Subset(Conjunction(op.Clauses))
	case Product:
		pairs, err := sets.CartesianProduct(operands[0], operands[1])
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", op.Kind, err)
		}
		return Result{Pairs: sets.Slice(pairs), Product: true}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op.Kind, err)
	}
	return Result{Keys: sets.Slice(result)}, nil
}

// visits evaluates op on sets of counted keys and reports the visitation counts
// of its operands.
func (env *Env) visits(op *Op) (Result, error) {
	cmp := visit.Comparing(env.cmp)
	operands := make([]*visit.Set[int], len(op.Args))
	copies := make([]*visit.Set[int], len(op.Args))
	for i, arg := range op.Args {
		keys, err := env.keys(arg)
		if err != nil {
			return Result{}, err
		}
		if operands[i], err = visit.BuildWith(env.kind, keys, cmp); err != nil {
			return Result{}, fmt.Errorf("%s: %w", arg.Span(), err)
		}
		copies[i] = operands[i].DeepCopy() // operands may get consumed
	}
	var result Result
	var r *visit.Set[int]
	var err error
	switch op.Kind {
	case Diff:
		r, err = visit.Of(operands[0].Difference(operands[1]))
	case Inter:
		others := make([]sets.OrderedSet[*visit.Counted[int]], len(operands)-1)
		for i, o := range operands[1:] {
			others[i] = o
		}
		r, err = visit.Of(operands[0].Intersection(others...))
	case Subset:
		r, err = operands[0].Where(Conjunction(op.Clauses))
	case Product:
		var pairs sets.OrderedSet[linkset.Pair[*visit.Counted[int], *visit.Counted[int]]]
		if pairs, err = sets.CartesianProduct[*visit.Counted[int]](operands[0], operands[1]); err == nil {
			result.Product = true
			result.Pairs = []IntPair{}
			for n := pairs.Head(); n != nil; n = n.Next {
				result.Pairs = append(result.Pairs, linkset.PairOf(n.Key.First.Peek(), n.Key.Second.Peek()))
			}
		}
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", op.Kind, err)
	}
	if r != nil {
		result.Keys = r.PeekKeys()
	}
	for i, c := range copies {
		result.Visits = append(result.Visits, Visitation{
			Operand: op.Args[i].String(),
			Keys:    c.PeekKeys(),
			Counts:  c.Visits(),
		})
	}
	tracer().Debugf("visits of %s: %v", op, result.Visits)
	return result, nil
}
