package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeService_LoadSeedsOnFirstUse(t *testing.T) {
	env := newTestEnv(t)
	svc := env.treeService()
	ctx := context.Background()

	for _, d := range svc.Dashboards() {
		root, err := svc.Load(ctx, d)
		require.NoError(t, err, d)
		assert.NotEmpty(t, root.Children, d)
	}

	totals, err := env.ledger.Totals(ctx, domain.DashboardGovernment)
	require.NoError(t, err)
	assert.Equal(t, 6, totals.Count)

	// A second load reads the stored tree and does not seed again.
	_, err = svc.Load(ctx, domain.DashboardGovernment)
	require.NoError(t, err)
	again, err := env.ledger.Totals(ctx, domain.DashboardGovernment)
	require.NoError(t, err)
	assert.Equal(t, totals, again)
}

func TestTreeService_LoadUnknownDashboard(t *testing.T) {
	svc := newTestEnv(t).treeService()

	_, err := svc.Load(context.Background(), "treasury")
	assert.ErrorIs(t, err, ErrUnknownDashboard)
}

func TestTreeService_Search(t *testing.T) {
	env := newTestEnv(t)
	svc := env.treeService()
	ctx := context.Background()

	res, err := svc.Search(ctx, domain.DashboardGovernment, "patho")
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, 1, res.Matches)
	assert.Equal(t, 4, domain.Count(res.Root))

	res, err = svc.Search(ctx, domain.DashboardGovernment, "zzz")
	require.NoError(t, err)
	assert.True(t, res.Fallback)
	assert.Equal(t, 0, res.Matches)
	assert.Equal(t, 9, domain.Count(res.Root))

	res, err = svc.Search(ctx, domain.DashboardInstitution, "")
	require.NoError(t, err)
	assert.False(t, res.Fallback)
	assert.Equal(t, 10, domain.Count(res.Root))

	assert.Equal(t, []string{"search-tree", "search-tree", "search-tree"}, env.events.names())
	assert.Equal(t, false, env.events.last().Fields["fallback"])
}

func TestTreeService_ImportReplacesTree(t *testing.T) {
	env := newTestEnv(t)
	svc := env.treeService()
	ctx := context.Background()

	res, err := svc.Import(ctx, domain.DashboardGovernment, testutil.SampleTree())
	require.NoError(t, err)
	assert.Equal(t, 8, res.NodeCount)

	root, err := svc.Load(ctx, domain.DashboardGovernment)
	require.NoError(t, err)
	assert.Equal(t, "national", root.ID)

	last := env.events.last()
	assert.Equal(t, "import-tree", last.Name)
	assert.True(t, last.Success)
}

func TestTreeService_ImportRejectsInvalidTree(t *testing.T) {
	env := newTestEnv(t)
	svc := env.treeService()

	bad := testutil.NewTestNode("r", "Root", 1, testutil.WithType(domain.NodeNational),
		testutil.WithChildren(
			testutil.NewTestNode("x", "A", -1),
			testutil.NewTestNode("x", "B", 1),
		))
	_, err := svc.Import(context.Background(), domain.DashboardGovernment, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")
	assert.False(t, env.events.last().Success)

	has, err := env.trees.HasTree(context.Background(), domain.DashboardGovernment)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestTreeService_ImportRollsBackOnWriteFailure(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, err := env.treeService().Load(ctx, domain.DashboardGovernment)
	require.NoError(t, err)

	// Exec #1 clears the old rows, #2 inserts the root, #3 fails.
	failing := testutil.NewFailingWritesUoW(env.db, 3, errors.New("injected insert failure"))
	svc := NewTreeService(env.trees, failing)

	_, err = svc.Import(ctx, domain.DashboardGovernment, testutil.SampleTree())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected insert failure")

	root, err := env.trees.LoadTree(ctx, domain.DashboardGovernment)
	require.NoError(t, err)
	assert.Equal(t, "national-001", root.ID)
}

func TestTreeService_ImportFile(t *testing.T) {
	svc := newTestEnv(t).treeService()
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("id: r\nname: Root\namount: 100\ntype: national\n"), 0o644))

	res, err := svc.ImportFile(context.Background(), domain.DashboardInstitution, path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.NodeCount)

	_, err = svc.ImportFile(context.Background(), domain.DashboardInstitution, filepath.Join(t.TempDir(), "tree.txt"))
	assert.ErrorContains(t, err, "unsupported import file")
}
