package service

import (
	"context"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/fundtree"
)

type anomalyService struct {
	trees TreeService
}

func NewAnomalyService(trees TreeService) AnomalyService {
	return &anomalyService{trees: trees}
}

func (s *anomalyService) List(ctx context.Context, dashboard domain.Dashboard) ([]domain.Anomaly, error) {
	root, err := s.trees.Load(ctx, dashboard)
	if err != nil {
		return nil, err
	}
	return fundtree.Overspends(root), nil
}
