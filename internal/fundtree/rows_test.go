package fundtree

import (
	"testing"

	"github.com/fundsflow/fundsflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowIDs(rows []Row) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.Node.ID
	}
	return ids
}

func TestFlatten_AllExpanded(t *testing.T) {
	rows := Flatten(testutil.SampleTree(), NewExpandState())

	assert.Equal(t, []string{
		"national", "karnataka", "hospital-b", "pathology", "cardiology",
		"hospital-a", "maharashtra", "hospital-c",
	}, rowIDs(rows))

	assert.Equal(t, 0, rows[0].Depth)
	assert.Equal(t, 3, rows[3].Depth)
	assert.True(t, rows[0].HasChildren)
	assert.False(t, rows[3].HasChildren)
	assert.True(t, rows[4].IsLast, "cardiology is the last child of hospital-b")
	assert.False(t, rows[2].IsLast)
}

func TestFlatten_AncestorLast(t *testing.T) {
	rows := Flatten(testutil.SampleTree(), nil)

	pathology := rows[RowIndex(rows, "pathology")]
	assert.Equal(t, []bool{false, false}, pathology.AncestorLast)

	hospitalC := rows[RowIndex(rows, "hospital-c")]
	assert.Equal(t, []bool{true}, hospitalC.AncestorLast)

	assert.Empty(t, rows[RowIndex(rows, "karnataka")].AncestorLast)
}

func TestFlatten_CollapsedHidesDescendants(t *testing.T) {
	state := NewExpandState()
	state.Toggle("karnataka")

	rows := Flatten(testutil.SampleTree(), state)
	assert.Equal(t, []string{"national", "karnataka", "maharashtra", "hospital-c"}, rowIDs(rows))

	k := rows[RowIndex(rows, "karnataka")]
	assert.False(t, k.Expanded)
	assert.True(t, k.HasChildren)
}

func TestFlatten_NestedStateSurvivesParentCollapse(t *testing.T) {
	state := NewExpandState()
	state.Toggle("hospital-b")
	state.Toggle("karnataka")
	assert.True(t, state.Toggle("karnataka"))

	rows := Flatten(testutil.SampleTree(), state)
	assert.Equal(t, []string{
		"national", "karnataka", "hospital-b", "hospital-a", "maharashtra", "hospital-c",
	}, rowIDs(rows))
}

func TestFlatten_NilRoot(t *testing.T) {
	assert.Nil(t, Flatten(nil, NewExpandState()))
}

func TestRowIndex_Missing(t *testing.T) {
	rows := Flatten(testutil.SampleTree(), nil)
	assert.Equal(t, -1, RowIndex(rows, "nope"))
}

func TestExpandState_ToggleIsIndependentPerID(t *testing.T) {
	var state ExpandState
	assert.True(t, state.Expanded("a"))

	assert.False(t, state.Toggle("a"))
	assert.False(t, state.Expanded("a"))
	assert.True(t, state.Expanded("b"))

	state.SetExpanded("c", false)
	require.Equal(t, []string{"a", "c"}, state.Collapsed())

	assert.True(t, state.Toggle("a"))
	assert.Equal(t, []string{"c"}, state.Collapsed())
}

func TestExpandState_NilIsAllExpanded(t *testing.T) {
	var state *ExpandState
	assert.True(t, state.Expanded("anything"))
	assert.Nil(t, state.Collapsed())
}
