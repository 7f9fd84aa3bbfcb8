package calc

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// TokType is a category type for a Token.
type TokType int

// Token categories without a literal lexeme. Single-character operators use
// their rune as category, keywords use small positive numbers.
const (
	EOF       TokType = -1
	Ident     TokType = -2
	Num       TokType = -3
	EqEq      TokType = -4
	NotEq     TokType = -5
	LessEq    TokType = -6
	GreaterEq TokType = -7
)

// Keyword token categories, in the order of keywords.
const (
	KwMode TokType = iota + 1
	KwCopy
	KwInPlace
	KwDiff
	KwInter
	KwSubset
	KwProduct
	KwVisits
	KwShow
)

// The tokens representing literal one-char lexemes
var literals = []string{"[", "]", "(", ")", "=", "<", ">", "%"}
var ops = []string{"==", "!=", "<=", ">="}

// The keyword tokens
var keywords = []string{"mode", "copy", "inplace", "diff", "inter", "subset",
	"product", "visits", "show"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["ID"] = int(Ident)
		tokenIds["NUM"] = int(Num)
		tokenIds["=="] = int(EqEq)
		tokenIds["!="] = int(NotEq)
		tokenIds["<="] = int(LessEq)
		tokenIds[">="] = int(GreaterEq)
		for i, kw := range keywords {
			tokenIds[kw] = i + 1
		}
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
	})
}

// TokenName returns a readable name for a token category.
func TokenName(t TokType) string {
	switch t {
	case EOF:
		return "end of line"
	case Ident:
		return "identifier"
	case Num:
		return "number"
	}
	initTokens()
	for name, id := range tokenIds {
		if id == int(t) {
			return strconv.Quote(name)
		}
	}
	return fmt.Sprintf("<token %d>", int(t))
}

// --- Lexer -----------------------------------------------------------------

// Lexer holds a compiled DFA for the set language. It is safe to create
// scanners from a Lexer concurrently.
type Lexer struct {
	lexer *lexmachine.Lexer
}

var lexerOnce sync.Once
var sharedLexer *Lexer
var lexerErr error

// NewLexer creates and compiles a new lexer.
func NewLexer() (*Lexer, error) {
	initTokens()
	lx := &Lexer{lexer: lexmachine.NewLexer()}
	lx.lexer.Add([]byte(`;[^\n]*`), skip) // skip comments
	for _, kw := range keywords {
		lx.lexer.Add([]byte(kw), makeToken(kw))
	}
	for _, op := range append(ops, literals...) {
		r := "\\" + strings.Join(strings.Split(op, ""), "\\")
		lx.lexer.Add([]byte(r), makeToken(op))
	}
	lx.lexer.Add([]byte(`([a-z]|[A-Z])([a-z]|[A-Z]|[0-9]|_)*`), makeToken("ID"))
	lx.lexer.Add([]byte(`\-?[0-9]+`), makeNumber())
	lx.lexer.Add([]byte(`( |\,|\t|\n|\r)+`), skip)
	if err := lx.lexer.Compile(); err != nil {
		gtrace.SyntaxTracer.Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return lx, nil
}

// DefaultLexer returns a lexer which is compiled once and shared by all callers.
func DefaultLexer() (*Lexer, error) {
	lexerOnce.Do(func() {
		sharedLexer, lexerErr = NewLexer()
	})
	return sharedLexer, lexerErr
}

// Scanner creates a scanner for a given input.
func (lx *Lexer) Scanner(input string) (*Scanner, error) {
	s, err := lx.lexer.Scanner([]byte(input))
	if err != nil {
		return &Scanner{}, err
	}
	return &Scanner{scanner: s, Error: logError}, nil
}

// skip is an action which ignores the scanned match.
func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(name string) lexmachine.Action {
	id, ok := tokenIds[name]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", name))
	}
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

func makeNumber() lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		n, err := strconv.Atoi(string(m.Bytes))
		if err != nil { // out of range, left to the parser
			return s.Token(int(Num), nil, m), nil
		}
		return s.Token(int(Num), n, m), nil
	}
}

// --- Scanner ---------------------------------------------------------------

// Scanner splits a line of input into tokens.
type Scanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

// Default error reporting function for scanners
func logError(e error) {
	gtrace.SyntaxTracer.Errorf("scanner error: " + e.Error())
}

// SetErrorHandler sets an error handler for the scanner.
func (s *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		s.Error = logError
		return
	}
	s.Error = h
}

// NextToken returns the next token of the input. At the end of the input it
// returns a token of category EOF, for any number of calls. Unrecognized input
// is reported to the error handler and skipped.
func (s *Scanner) NextToken() Token {
	if s.scanner == nil {
		return Token{toktype: EOF}
	}
	for {
		tok, err, eof := s.scanner.Next()
		if err != nil {
			s.Error(err)
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				return Token{toktype: EOF, span: Span{uint64(s.scanner.TC), uint64(s.scanner.TC)}}
			}
			tc := ui.FailTC
			if tc <= ui.StartTC { // always skip at least one byte
				tc = ui.StartTC + 1
			}
			s.scanner.TC = tc
			continue
		}
		if eof {
			at := uint64(len(s.scanner.Text))
			return Token{toktype: EOF, span: Span{at, at}}
		}
		if tok == nil { // trailing skipped input
			continue
		}
		token := tok.(*lexmachine.Token)
		tracer().Debugf("token %q at %d", string(token.Lexeme), token.TC)
		from := uint64(token.TC)
		return Token{
			toktype: TokType(token.Type),
			lexeme:  string(token.Lexeme),
			value:   token.Value,
			span:    Span{from, from + uint64(len(token.Lexeme))},
		}
	}
}

// --- Tokens and spans ------------------------------------------------------

// Token is a token of the set language.
//
//	TokType = Num      // category of the token
//	Lexeme  = "-12"    // as it appeared in the input
//	Value   = -12      // int for numbers, the lexeme otherwise
//	Span    = (4…7)    // byte positions in the input
type Token struct {
	toktype TokType
	lexeme  string
	value   interface{}
	span    Span
}

// TokType returns the category of the token.
func (t Token) TokType() TokType {
	return t.toktype
}

// Lexeme returns the token's text.
func (t Token) Lexeme() string {
	return t.lexeme
}

// Value returns the value of the token.
func (t Token) Value() interface{} {
	return t.value
}

// Span returns the input positions covered by the token.
func (t Token) Span() Span {
	return t.span
}

func (t Token) String() string {
	if t.toktype == EOF {
		return TokenName(EOF)
	}
	return strconv.Quote(t.lexeme)
}

// Span captures a run of input positions. It denotes a start position and the
// position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Extend returns the smallest span covering s and other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
