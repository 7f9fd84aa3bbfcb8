package visit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/linkset"
	"github.com/npillmayer/linkset/chain"
	"github.com/npillmayer/linkset/sets"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var kinds = []sets.Kind{sets.AsCopy, sets.InPlace}

func visited(t *testing.T, k sets.Kind, keys ...int) *Set[int] {
	t.Helper()
	s, err := Build(k, keys, linkset.Natural[int]())
	if err != nil {
		t.Fatalf("cannot build visited set %v: %v", keys, err)
	}
	return s
}

func TestCounted(t *testing.T) {
	c := Count("x")
	if c.Peek() != "x" || c.Visits() != 0 {
		t.Errorf("expected peek not to visit")
	}
	c.Observe()
	c.Visit()
	if c.Visits() != 2 {
		t.Errorf("expected 2 visits, have %d", c.Visits())
	}
	c.Reduce(5)
	if c.Visits() != 0 {
		t.Errorf("expected reduce not to go below 0, is %d", c.Visits())
	}
	if c.String() != "x(0)" {
		t.Errorf("unexpected string %q", c.String())
	}
}

func TestComparingVisitsBothArguments(t *testing.T) {
	cmp := Comparing(linkset.Natural[int]())
	a, b := Count(1), Count(2)
	if cmp.Compare(a, b) >= 0 {
		t.Errorf("expected 1 < 2")
	}
	if a.Visits() != 1 || b.Visits() != 1 {
		t.Errorf("expected both arguments to be visited once, are %d and %d", a.Visits(), b.Visits())
	}
	if Comparing[int](nil) != nil {
		t.Errorf("expected no counting comparator for missing comparator")
	}
	if !cmp.Compatible(Comparing(linkset.Natural[int]())) {
		t.Errorf("expected counting comparators of equal name to be compatible")
	}
}

func TestBuildResetsCounts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkset.visit")
	defer teardown()
	//
	for _, k := range kinds {
		s := visited(t, k, 1, 2, 3, 4)
		if diff := cmp.Diff([]int{0, 0, 0, 0}, s.Visits()); diff != "" {
			t.Errorf("expected no visits after build (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{1, 2, 3, 4}, s.PeekKeys()); diff != "" {
			t.Errorf("unexpected keys (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff([]int{0, 0, 0, 0}, s.Visits()); diff != "" {
			t.Errorf("expected peeking not to visit (-want +got):\n%s", diff)
		}
	}
	if _, err := Build(sets.AsCopy, []int{2, 1}, linkset.Natural[int]()); err == nil {
		t.Errorf("expected unordered keys to be rejected")
	}
}

// Fixtures for pointer movement. Source and other visitation give the expected
// number of comparator calls per element.
var differenceFixtures = []struct {
	name          string
	source, other []int
	want          []int
	sourceVisits  []int
	otherVisits   []int
}{
	{"x < y and x = y", []int{1, 2, 3, 5}, []int{2, 3}, []int{1, 5}, []int{1, 1, 1, 0}, []int{2, 1}},
	{"x smaller y", []int{1, 2, 3}, []int{4}, []int{1, 2, 3}, []int{1, 1, 1}, []int{3}},
	{"x greater y", []int{5}, []int{1, 2, 3}, []int{5}, []int{3}, []int{1, 1, 1}},
	{"other empty", []int{1, 2}, []int{}, []int{1, 2}, []int{0, 0}, []int{}},
	{"source empty", []int{}, []int{1, 2}, []int{}, []int{}, []int{0, 0}},
}

func TestDifferenceVisitation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkset.visit")
	defer teardown()
	//
	for _, k := range kinds {
		for _, f := range differenceFixtures {
			source, other := visited(t, k, f.source...), visited(t, k, f.other...)
			sourceCopy := source.DeepCopy() // source may get consumed
			r, err := Of(source.Difference(other))
			if err != nil {
				t.Fatalf("%s/%s: %v", k, f.name, err)
			}
			if diff := cmp.Diff(f.want, r.PeekKeys()); diff != "" {
				t.Errorf("%s/%s: result mismatch (-want +got):\n%s", k, f.name, diff)
			}
			if diff := cmp.Diff(f.sourceVisits, sourceCopy.Visits()); diff != "" {
				t.Errorf("%s/%s: source visits mismatch (-want +got):\n%s", k, f.name, diff)
			}
			if diff := cmp.Diff(f.otherVisits, other.Visits()); diff != "" {
				t.Errorf("%s/%s: other visits mismatch (-want +got):\n%s", k, f.name, diff)
			}
		}
	}
}

func TestIntersectionVisitation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkset.visit")
	defer teardown()
	//
	for _, k := range kinds {
		s := visited(t, k, 1, 2, 3, 5, 8)
		o := visited(t, k, 2, 3, 8, 9)
		scopy := s.DeepCopy()
		r, err := Of(s.Intersection(o))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{2, 3, 8}, r.PeekKeys()); diff != "" {
			t.Errorf("%s: intersection mismatch (-want +got):\n%s", k, diff)
		}
		if diff := cmp.Diff([]int{1, 1, 1, 1, 1}, scopy.Visits()); diff != "" {
			t.Errorf("%s: source visits mismatch (-want +got):\n%s", k, diff)
		}
		if diff := cmp.Diff([]int{2, 1, 2, 0}, o.Visits()); diff != "" {
			t.Errorf("%s: other visits mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestThreeWayIntersectionVisitation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkset.visit")
	defer teardown()
	//
	for _, k := range kinds {
		s := visited(t, k, 1, 2, 3, 5, 8)
		o := visited(t, k, 2, 3, 8, 9)
		p := visited(t, k, 3, 8)
		scopy := s.DeepCopy()
		r, err := Of(s.Intersection(o, p))
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{3, 8}, r.PeekKeys()); diff != "" {
			t.Errorf("%s: intersection mismatch (-want +got):\n%s", k, diff)
		}
		// the running minimum takes part in n-1 comparisons per step
		if diff := cmp.Diff([]int{2, 2, 2, 2, 2}, scopy.Visits()); diff != "" {
			t.Errorf("%s: source visits mismatch (-want +got):\n%s", k, diff)
		}
		if diff := cmp.Diff([]int{2, 1, 2, 0}, o.Visits()); diff != "" {
			t.Errorf("%s: other visits mismatch (-want +got):\n%s", k, diff)
		}
		if diff := cmp.Diff([]int{3, 2}, p.Visits()); diff != "" {
			t.Errorf("%s: third operand visits mismatch (-want +got):\n%s", k, diff)
		}
	}
}

func TestWhereVisitsOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkset.visit")
	defer teardown()
	//
	for _, k := range kinds {
		s := visited(t, k, 1, 2, 3, 4, 5)
		all := s.Elements()
		r, err := s.Where(func(x int) bool { return x > 2 })
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]int{3, 4, 5}, r.PeekKeys()); diff != "" {
			t.Errorf("%s: subset mismatch (-want +got):\n%s", k, diff)
		}
		for _, c := range all {
			if c.Visits() != 1 {
				t.Errorf("%s: expected %v to be visited exactly once", k, c)
			}
		}
		snap := chain.Take(r.Head())
		if k == sets.InPlace && !s.IsEmpty() {
			t.Errorf("expected in-place source to be consumed")
		}
		if snap.Len() != 3 {
			t.Errorf("expected 3 cells in result, have %d", snap.Len())
		}
	}
}

func TestDeepCopySharesCounters(t *testing.T) {
	s := visited(t, sets.AsCopy, 1, 2)
	c := s.DeepCopy()
	if len(chain.Take(s.Head()).Shared(c.Head())) != 0 {
		t.Errorf("expected deep copy to have new cells")
	}
	s.Elements()[0].Visit()
	if c.Visits()[0] != 1 {
		t.Errorf("expected visits of original to show in copy")
	}
	c.Reset()
	if s.Visits()[0] != 0 {
		t.Errorf("expected reset of copy to show in original")
	}
	if Wrap[int](s) != s || Wrap[int](nil) != nil {
		t.Errorf("expected Wrap not to wrap twice")
	}
}

// A difference comparing every x with every y finds the same result, but
// visits too often. The counters tell.
func TestNaiveDifferenceIsDetected(t *testing.T) {
	source, other := visited(t, sets.AsCopy, 1, 2, 3), visited(t, sets.AsCopy, 2, 3)
	cmp := source.Comparator()
	r, err := Of(source.Subset(func(x *Counted[int]) bool {
		for y := other.Head(); y != nil; y = y.Next {
			if cmp.Compare(x, y.Key) == 0 {
				return false
			}
		}
		return true
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := r.PeekKeys(); len(got) != 1 || got[0] != 1 {
		t.Errorf("expected naive difference {1}, got %v", got)
	}
	minimal := []int{2, 1}
	for i, v := range other.Visits() {
		if v > minimal[i] {
			return // detected
		}
	}
	t.Errorf("expected naive difference to visit other more often than necessary, visits %v", other.Visits())
}
