package calc

import (
	"fmt"

	"github.com/npillmayer/linkset/sets"
	"github.com/timtadh/lexmachine/machines"
)

// SyntaxError is returned for input which is not a valid statement.
type SyntaxError struct {
	Span Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Span, e.Msg)
}

// Parse parses a single statement, using the shared default lexer.
// Empty input and comments result in a statement of kind NoOp.
func Parse(line string) (*Stmt, error) {
	lx, err := DefaultLexer()
	if err != nil {
		return nil, err
	}
	return lx.Parse(line)
}

// Parse parses a single statement.
func (lx *Lexer) Parse(line string) (*Stmt, error) {
	scan, err := lx.Scanner(line)
	if err != nil {
		return nil, err
	}
	p := &parser{scan: scan}
	scan.SetErrorHandler(func(e error) {
		if p.err != nil {
			return
		}
		span := p.tok.Span()
		if ui, ok := e.(*machines.UnconsumedInput); ok {
			span = Span{uint64(ui.StartTC), uint64(ui.FailTC)}
		}
		p.err = &SyntaxError{Span: span, Msg: e.Error()}
	})
	p.next()
	stmt, err := p.statement()
	if p.err != nil { // scanner errors take precedence
		return nil, p.err
	}
	if err != nil {
		return nil, err
	}
	tracer().Debugf("parsed %q as %s", line, stmt)
	return stmt, nil
}

// parser is a recursive descent parser with one token of look-ahead.
type parser struct {
	scan *Scanner
	tok  Token // look-ahead
	err  error // first scanner error
}

func (p *parser) next() {
	p.tok = p.scan.NextToken()
}

func (p *parser) is(t TokType) bool {
	return p.tok.TokType() == t
}

func (p *parser) expected(what string) error {
	return &SyntaxError{Span: p.tok.Span(), Msg: fmt.Sprintf("expected %s, found %s", what, p.tok)}
}

func (p *parser) expect(t TokType) (Token, error) {
	tok := p.tok
	if !p.is(t) {
		return tok, p.expected(TokenName(t))
	}
	p.next()
	return tok, nil
}

func (p *parser) statement() (stmt *Stmt, err error) {
	switch p.tok.TokType() {
	case EOF:
		return &Stmt{Kind: NoOp}, nil
	case KwMode:
		p.next()
		stmt = &Stmt{Kind: SetMode}
		switch p.tok.TokType() {
		case KwCopy:
			stmt.Mode = sets.AsCopy
		case KwInPlace:
			stmt.Mode = sets.InPlace
		default:
			return nil, p.expected("copy or inplace")
		}
		p.next()
	case KwShow:
		p.next()
		stmt = &Stmt{Kind: Show}
		if stmt.Expr, err = p.expr(); err != nil {
			return nil, err
		}
	case KwVisits:
		p.next()
		if !p.startsOp() {
			return nil, p.expected("set operation")
		}
		stmt = &Stmt{Kind: Visits}
		if stmt.Expr, err = p.expr(); err != nil {
			return nil, err
		}
	case Ident:
		ref := &Ref{Name: p.tok.Lexeme(), span: p.tok.Span()}
		p.next()
		if p.is('=') {
			p.next()
			stmt = &Stmt{Kind: Assign, Name: ref.Name}
			if stmt.Expr, err = p.expr(); err != nil {
				return nil, err
			}
			break
		}
		stmt = &Stmt{Kind: Show, Expr: ref}
	default:
		stmt = &Stmt{Kind: Show}
		if stmt.Expr, err = p.expr(); err != nil {
			return nil, err
		}
	}
	if !p.is(EOF) {
		return nil, p.expected("end of statement")
	}
	return stmt, nil
}

func (p *parser) startsOp() bool {
	switch p.tok.TokType() {
	case KwDiff, KwInter, KwSubset, KwProduct:
		return true
	}
	return false
}

func (p *parser) startsOperand() bool {
	switch p.tok.TokType() {
	case Ident, '[', '(':
		return true
	}
	return false
}

func (p *parser) expr() (Expr, error) {
	if !p.startsOp() {
		return p.operand()
	}
	op := &Op{span: p.tok.Span()}
	switch p.tok.TokType() {
	case KwDiff:
		op.Kind = Diff
	case KwInter:
		op.Kind = Inter
	case KwSubset:
		op.Kind = Subset
	case KwProduct:
		op.Kind = Product
	}
	p.next()
	arity := 2
	if op.Kind == Subset || op.Kind == Inter {
		arity = 1
	}
	for i := 0; i < arity || (op.Kind == Inter && p.startsOperand()); i++ {
		arg, err := p.operand()
		if err != nil {
			return nil, err
		}
		op.Args = append(op.Args, arg)
		op.span = op.span.Extend(arg.Span())
	}
	if op.Kind == Subset {
		for len(op.Clauses) == 0 || p.startsClause() {
			start := p.tok.Span()
			c, err := p.clause()
			if err != nil {
				return nil, err
			}
			op.Clauses = append(op.Clauses, c)
			op.span = op.span.Extend(start)
		}
	}
	return op, nil
}

func (p *parser) operand() (Expr, error) {
	switch p.tok.TokType() {
	case Ident:
		ref := &Ref{Name: p.tok.Lexeme(), span: p.tok.Span()}
		p.next()
		return ref, nil
	case '[':
		lit := &Literal{Keys: []int{}, span: p.tok.Span()}
		p.next()
		for p.is(Num) {
			n, err := p.number()
			if err != nil {
				return nil, err
			}
			lit.Keys = append(lit.Keys, n)
		}
		end, err := p.expect(']')
		if err != nil {
			return nil, err
		}
		lit.span = lit.span.Extend(end.Span())
		return lit, nil
	case '(':
		p.next()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(')'); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, p.expected("operand")
}

func (p *parser) number() (int, error) {
	tok, err := p.expect(Num)
	if err != nil {
		return 0, err
	}
	n, ok := tok.Value().(int)
	if !ok {
		return 0, &SyntaxError{Span: tok.Span(), Msg: fmt.Sprintf("number %s out of range", tok.Lexeme())}
	}
	return n, nil
}

func (p *parser) startsClause() bool {
	if p.is('%') {
		return true
	}
	_, ok := cmpOps[p.tok.TokType()]
	return ok
}

func (p *parser) clause() (c Clause, err error) {
	if p.is('%') {
		p.next()
		if c.Mod, err = p.number(); err != nil {
			return
		}
		if c.Mod == 0 {
			return c, &SyntaxError{Span: p.tok.Span(), Msg: "modulus 0"}
		}
	}
	if _, ok := cmpOps[p.tok.TokType()]; !ok {
		return c, p.expected("comparison")
	}
	c.Cmp = p.tok.TokType()
	p.next()
	c.N, err = p.number()
	return
}
