package fundtree

import (
	"testing"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shape renders a tree as nested ids for compact comparisons.
type shape struct {
	ID       string
	Children []shape
}

func shapeOf(n *domain.FundNode) *shape {
	if n == nil {
		return nil
	}
	s := shape{ID: n.ID}
	for _, c := range n.Children {
		s.Children = append(s.Children, *shapeOf(c))
	}
	return &s
}

func TestFilter_EmptyQueryReturnsSameRoot(t *testing.T) {
	root := testutil.SampleTree()
	assert.Same(t, root, Filter(root, ""))
}

func TestFilter_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  *shape
	}{
		{
			name:  "leaf match keeps ancestor chain only",
			query: "PATH",
			want: &shape{ID: "national", Children: []shape{
				{ID: "karnataka", Children: []shape{
					{ID: "hospital-b", Children: []shape{{ID: "pathology"}}},
				}},
			}},
		},
		{
			name:  "matching node drops non-matching children",
			query: "hospital",
			want: &shape{ID: "national", Children: []shape{
				{ID: "karnataka", Children: []shape{{ID: "hospital-b"}, {ID: "hospital-a"}}},
				{ID: "maharashtra", Children: []shape{{ID: "hospital-c"}}},
			}},
		},
		{
			name:  "upper tiers match on their own names",
			query: "health",
			want: &shape{ID: "national", Children: []shape{
				{ID: "karnataka"},
				{ID: "maharashtra"},
			}},
		},
		{
			name:  "no match",
			query: "xyz",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shapeOf(Filter(testutil.SampleTree(), tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Filter(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilter_EverySurvivorMatchesOrHasMatchingDescendant(t *testing.T) {
	for _, q := range []string{"a", "hospital", "logy", "Karnataka"} {
		filtered := Filter(testutil.SampleTree(), q)
		require.NotNil(t, filtered, q)
		domain.Walk(filtered, func(n, _ *domain.FundNode, _ int) bool {
			assert.True(t, MatchCount(n, q) > 0, "query %q: node %s has no match in its subtree", q, n.ID)
			return true
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	for _, q := range []string{"a", "hospital", "PATH", "health", "ology", "Karnataka"} {
		t.Run(q, func(t *testing.T) {
			once := Filter(testutil.SampleTree(), q)
			require.NotNil(t, once)

			twice := Filter(once, q)
			if diff := cmp.Diff(once, twice); diff != "" {
				t.Errorf("second filter changed the tree (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	root := testutil.SampleTree()
	before := testutil.SampleTree()

	_ = Filter(root, "cardio")

	if diff := cmp.Diff(before, root); diff != "" {
		t.Errorf("input tree changed (-before +after):\n%s", diff)
	}
}

func TestFilter_PassesFieldsThrough(t *testing.T) {
	filtered := Filter(testutil.SampleTree(), "pathology")
	require.NotNil(t, filtered)

	ix, err := NewIndex(filtered)
	require.NoError(t, err)
	hb, ok := ix.Node("hospital-b")
	require.True(t, ok)
	assert.Equal(t, "Hospital B", hb.Name)
	assert.Equal(t, int64(500_000_000_000), hb.Amount)
	require.NotNil(t, hb.Allocated)
	assert.Equal(t, int64(600_000_000_000), *hb.Allocated)
	assert.Equal(t, domain.StatusWarning, hb.StatusOrDefault())
}

func TestFilterOrRoot(t *testing.T) {
	root := testutil.SampleTree()

	got, fellBack := FilterOrRoot(root, "nothing-here")
	assert.True(t, fellBack)
	assert.Same(t, root, got)

	got, fellBack = FilterOrRoot(root, "cardio")
	assert.False(t, fellBack)
	assert.Equal(t, 4, domain.Count(got))
}

func TestMatchCount(t *testing.T) {
	root := testutil.SampleTree()
	assert.Equal(t, 0, MatchCount(root, ""))
	assert.Equal(t, 3, MatchCount(root, "hospital"))
	assert.Equal(t, 2, MatchCount(root, "OLOGY"))
}
