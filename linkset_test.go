package linkset

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

func TestNaturalOrder(t *testing.T) {
	c := Natural[int]()
	if c.Compare(1, 2) >= 0 || c.Compare(2, 1) <= 0 || c.Compare(3, 3) != 0 {
		t.Errorf("natural order of ints broken")
	}
	if !c.Less(1, 2) || c.Less(2, 2) {
		t.Errorf("less broken")
	}
	s := Natural[string]()
	if !s.Less("a", "b") {
		t.Errorf("natural order of strings broken")
	}
	if c.Name() != "a <= b" {
		t.Errorf("unexpected name %q", c.Name())
	}
}

func TestReverse(t *testing.T) {
	r := Reverse(Natural[int]())
	if !r.Less(2, 1) {
		t.Errorf("expected 2 < 1 in reverse order")
	}
	if r.Name() != "reverse(a <= b)" {
		t.Errorf("unexpected name %q", r.Name())
	}
	anon := Reverse(NewComparator[int]("", func(a, b int) int { return a - b }))
	if anon.Name() != "" {
		t.Errorf("expected reverse of unnamed comparator to be unnamed")
	}
	if Reverse[int](nil) != nil {
		t.Errorf("expected reverse of no comparator to be nil")
	}
}

func TestCompatible(t *testing.T) {
	a, b := Natural[int](), Natural[int]()
	if !a.Compatible(b) {
		t.Errorf("expected comparators of equal name to be compatible")
	}
	fn := func(a, b int) int { return a - b }
	u, v := NewComparator("", fn), NewComparator("", fn)
	if !u.Compatible(u) {
		t.Errorf("expected comparator to be compatible with itself")
	}
	if u.Compatible(v) {
		t.Errorf("expected unnamed comparators to be incompatible")
	}
	if a.Compatible(Reverse(a)) {
		t.Errorf("expected order and reverse order to be incompatible")
	}
	var none *Comparator[int]
	if none.Compatible(a) || a.Compatible(none) {
		t.Errorf("expected missing comparator to be incompatible")
	}
	if NewComparator[int]("x", nil) != nil {
		t.Errorf("expected no comparator without a comparison function")
	}
	if none.String() != "<no comparator>" || !strings.HasPrefix(u.String(), "<comparator ") {
		t.Errorf("unexpected comparator strings %q, %q", none.String(), u.String())
	}
}

func TestGodsRoundTrip(t *testing.T) {
	c := FromGods[int]("int", utils.IntComparator)
	if !c.Less(1, 2) || c.Name() != "int" {
		t.Errorf("adapted gods comparator broken")
	}
	if FromGods[int]("int", nil) != nil {
		t.Errorf("expected nil for missing gods comparator")
	}
	ts := treeset.NewWith(Reverse(Natural[int]()).Gods())
	ts.Add(1, 3, 2)
	got := fmt.Sprint(ts.Values())
	if got != "[3 2 1]" {
		t.Errorf("expected tree set in reverse order, got %s", got)
	}
}

func TestLexicographic(t *testing.T) {
	lex := Lexicographic(Natural[int](), Natural[string]())
	if lex.Name() != "lex(a <= b, a <= b)" {
		t.Errorf("unexpected name %q", lex.Name())
	}
	pairs := []Pair[int, string]{PairOf(1, "b"), PairOf(2, "a"), PairOf(1, "a")}
	if !lex.Less(pairs[0], pairs[1]) {
		t.Errorf("expected %v < %v", pairs[0], pairs[1])
	}
	if !lex.Less(pairs[2], pairs[0]) {
		t.Errorf("expected %v < %v", pairs[2], pairs[0])
	}
	if lex.Compare(PairOf(1, "a"), pairs[2]) != 0 {
		t.Errorf("expected equal pairs to compare as 0")
	}
	if pairs[0].String() != "(1, b)" {
		t.Errorf("unexpected pair string %q", pairs[0].String())
	}
	if Lexicographic[int, int](nil, Natural[int]()) != nil {
		t.Errorf("expected nil for missing component comparator")
	}
}

func TestErrors(t *testing.T) {
	var err error = fmt.Errorf("build: %w", &InvalidOrderingError{Index: 2, Prev: 5, Next: 3})
	var order *InvalidOrderingError
	if !errors.As(err, &order) || order.Index != 2 {
		t.Errorf("expected to unwrap ordering error, got %v", err)
	}
	err = &DuplicateKeyError{Index: 1, Key: 7}
	if err.Error() != "duplicate key 7 at position 1" {
		t.Errorf("unexpected message %q", err.Error())
	}
	err = Violation("difference", "comparator %s incompatible", "x")
	var violation *InvariantViolationError
	if !errors.As(err, &violation) || violation.Op != "difference" {
		t.Errorf("expected invariant violation, got %v", err)
	}
	if err.Error() != "difference: invariant violated: comparator x incompatible" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
