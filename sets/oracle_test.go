package sets

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/linkset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// randomKeys creates a sorted, duplicate-free slice of keys, together with a
// tree set holding the same keys.
func randomKeys(r *rand.Rand, n, max int) ([]int, *treeset.Set) {
	ts := treeset.NewWith(utils.IntComparator)
	for i := 0; i < n; i++ {
		ts.Add(r.Intn(max))
	}
	keys := make([]int, 0, ts.Size())
	for _, v := range ts.Values() {
		keys = append(keys, v.(int))
	}
	return keys, ts
}

func TestAlgebraAgainstTreeSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkset.sets")
	defer teardown()
	tracing.Select("linkset.sets").SetTraceLevel(tracing.LevelError)
	//
	r := rand.New(rand.NewSource(4711))
	gcmp := linkset.FromGods[int]("int", utils.IntComparator)
	for round := 0; round < 200; round++ {
		a, ta := randomKeys(r, r.Intn(20), 30)
		b, tb := randomKeys(r, r.Intn(20), 30)
		c, tc := randomKeys(r, r.Intn(20), 30)
		wantDiff := []int{}
		wantInter := []int{}
		for _, v := range ta.Values() {
			if !tb.Contains(v) {
				wantDiff = append(wantDiff, v.(int))
			}
			if tb.Contains(v) && tc.Contains(v) {
				wantInter = append(wantInter, v.(int))
			}
		}
		for _, k := range kinds {
			s := build(t, k, gcmp, a...)
			d, err := s.Difference(build(t, k, gcmp, b...))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(wantDiff, Slice(d)); diff != "" {
				t.Errorf("%s: %v ∖ %v mismatch (-want +got):\n%s", k, a, b, diff)
			}
			if err := Validate(d.Head(), gcmp); err != nil {
				t.Errorf("%s: difference not ordered: %v", k, err)
			}
			s = build(t, k, gcmp, a...)
			i, err := s.Intersection(build(t, k, gcmp, b...), build(t, k, gcmp, c...))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(wantInter, Slice(i)); diff != "" {
				t.Errorf("%s: %v ∩ %v ∩ %v mismatch (-want +got):\n%s", k, a, b, c, diff)
			}
			if err := Validate(i.Head(), gcmp); err != nil {
				t.Errorf("%s: intersection not ordered: %v", k, err)
			}
		}
	}
}

func TestSubsetAgainstTreeSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linkset.sets")
	defer teardown()
	//
	r := rand.New(rand.NewSource(815))
	ncmp := linkset.Natural[int]()
	for round := 0; round < 50; round++ {
		a, ta := randomKeys(r, r.Intn(25), 50)
		m := r.Intn(4) + 2
		want := treeset.NewWith(utils.IntComparator)
		for _, v := range ta.Values() {
			if v.(int)%m == 0 {
				want.Add(v)
			}
		}
		for _, k := range kinds {
			s := build(t, k, ncmp, a...)
			sub, err := s.Subset(func(x int) bool { return x%m == 0 })
			if err != nil {
				t.Fatal(err)
			}
			got := Slice(sub)
			if len(got) != want.Size() {
				t.Errorf("%s: subset of %v for mod %d has %d elements, want %d", k, a, m, len(got), want.Size())
				continue
			}
			for _, x := range got {
				if !want.Contains(x) {
					t.Errorf("%s: unexpected element %d in subset", k, x)
				}
			}
		}
	}
}
