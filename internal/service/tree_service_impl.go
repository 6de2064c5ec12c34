package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fundsflow/fundsflow/internal/db"
	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/fundtree"
	"github.com/fundsflow/fundsflow/internal/importer"
	"github.com/fundsflow/fundsflow/internal/repository"
)

type treeService struct {
	trees    repository.FundTreeRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTreeService(trees repository.FundTreeRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TreeService {
	return &treeService{
		trees:    trees,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *treeService) Dashboards() []domain.Dashboard {
	return append([]domain.Dashboard(nil), domain.Dashboards...)
}

func (s *treeService) Load(ctx context.Context, dashboard domain.Dashboard) (*domain.FundNode, error) {
	if err := checkDashboard(dashboard); err != nil {
		return nil, err
	}
	root, err := s.trees.LoadTree(ctx, dashboard)
	if err == nil {
		return root, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading %s tree: %w", dashboard, err)
	}

	if _, err := ensureSeeded(ctx, s.uow, dashboard); err != nil {
		return nil, err
	}
	root, err = s.trees.LoadTree(ctx, dashboard)
	if err != nil {
		return nil, fmt.Errorf("loading %s tree: %w", dashboard, err)
	}
	return root, nil
}

func (s *treeService) Search(ctx context.Context, dashboard domain.Dashboard, query string) (result *SearchResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"dashboard": string(dashboard),
		"query":     query,
	}
	defer observeUseCase(ctx, s.observer, "search-tree", startedAt, fields, &err)

	root, err := s.Load(ctx, dashboard)
	if err != nil {
		return nil, err
	}

	filtered, fellBack := fundtree.FilterOrRoot(root, query)
	result = &SearchResult{
		Root:     filtered,
		Query:    query,
		Matches:  fundtree.MatchCount(root, query),
		Fallback: fellBack,
	}
	fields["matches"] = result.Matches
	fields["fallback"] = fellBack
	return result, nil
}

func (s *treeService) Import(ctx context.Context, dashboard domain.Dashboard, root *domain.FundNode) (result *ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"dashboard": string(dashboard)}
	defer observeUseCase(ctx, s.observer, "import-tree", startedAt, fields, &err)

	if err = checkDashboard(dashboard); err != nil {
		return nil, err
	}
	if errs := importer.ValidateTree(root); len(errs) > 0 {
		err = formatValidationErrors(errs)
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteFundTreeRepo(tx).ReplaceTree(ctx, dashboard, root)
	})
	if err != nil {
		return nil, fmt.Errorf("storing %s tree: %w", dashboard, err)
	}

	result = &ImportResult{Dashboard: dashboard, NodeCount: domain.Count(root)}
	fields["node_count"] = result.NodeCount
	return result, nil
}

func (s *treeService) ImportFile(ctx context.Context, dashboard domain.Dashboard, path string) (*ImportResult, error) {
	root, err := importer.LoadTree(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.Import(ctx, dashboard, root)
}
