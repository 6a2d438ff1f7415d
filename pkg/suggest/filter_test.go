package suggest

import (
	"slices"
	"testing"

	"github.com/bastiangx/wordhint/pkg/constraint"
)

var ranked = []string{"slate", "crane", "trace", "react", "irate", "fjord", "nymph"}

func TestFilterNoConstraints(t *testing.T) {
	got := slices.Collect(Filter(ranked, nil))
	if !slices.Equal(got, ranked) {
		t.Errorf("Filter(nil) = %v, want %v", got, ranked)
	}
}

func TestFilter(t *testing.T) {
	testCases := []struct {
		constraints []constraint.Constraint
		want        []string
		description string
	}{
		{
			[]constraint.Constraint{constraint.NoMatchAt(3, 'a')},
			[]string{"fjord", "nymph"},
			"absent letter excluded at every position",
		},
		{
			[]constraint.Constraint{constraint.ExactMatchAt(2, 'a')},
			[]string{"slate", "crane", "trace", "react", "irate"},
			"exact letter at position 2",
		},
		{
			[]constraint.Constraint{constraint.InexactMatchAt(0, 'r')},
			[]string{"crane", "trace", "irate", "fjord"},
			"misplaced letter never at position 0",
		},
		{
			[]constraint.Constraint{constraint.InexactMatchAt(3, 'r')},
			[]string{"crane", "trace", "react", "irate"},
			"misplaced letter excludes its own position",
		},
		{
			[]constraint.Constraint{
				constraint.ExactMatchAt(2, 'a'),
				constraint.InexactMatchAt(0, 'r'),
				constraint.NoMatchAt(4, 'c'),
			},
			[]string{"irate"},
			"all constraints must hold",
		},
		{
			[]constraint.Constraint{
				constraint.NoMatchAt(2, 'a'),
				constraint.ExactMatchAt(2, 'a'),
			},
			nil,
			"contradiction yields nothing",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := slices.Collect(Filter(ranked, tc.constraints))
			if !slices.Equal(got, tc.want) {
				t.Errorf("Filter() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterSelfMatch(t *testing.T) {
	words := []string{"monkey", "basalt", "planet"}
	constraints := []constraint.Constraint{
		constraint.ExactMatchAt(0, 'p'),
		constraint.ExactMatchAt(1, 'l'),
		constraint.ExactMatchAt(2, 'a'),
		constraint.ExactMatchAt(3, 'n'),
		constraint.ExactMatchAt(4, 'e'),
	}

	got := slices.Collect(Filter(words, constraints))
	if !slices.Equal(got, []string{"planet"}) {
		t.Errorf("Filter() = %v, want [planet]", got)
	}
}

func TestFilterStopsEarly(t *testing.T) {
	seq := Filter(ranked, []constraint.Constraint{constraint.ExactMatchAt(2, 'a')})

	var got []string
	for w := range seq {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []string{"slate", "crane"}) {
		t.Errorf("got %v, want [slate crane]", got)
	}
}

func TestTake(t *testing.T) {
	pulled := 0
	seq := func(yield func(string) bool) {
		for _, w := range ranked {
			pulled++
			if !yield(w) {
				return
			}
		}
	}

	got := Take(seq, 3)
	if !slices.Equal(got, ranked[:3]) {
		t.Errorf("Take(3) = %v, want %v", got, ranked[:3])
	}
	if pulled != 3 {
		t.Errorf("Take(3) pulled %d words, want 3", pulled)
	}

	if got := Take(Filter(ranked, nil), 0); len(got) != len(ranked) {
		t.Errorf("Take(0) = %d words, want all %d", len(got), len(ranked))
	}
	if got := Take(Filter(ranked, nil), 100); len(got) != len(ranked) {
		t.Errorf("Take(100) = %d words, want %d", len(got), len(ranked))
	}
}
