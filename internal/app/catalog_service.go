package app

import (
	"context"
	"errors"

	"sciquest-service/internal/domain"
)

// featuredCount is the fixed size of the featured subset.
const featuredCount = 6

// ExperimentStore abstracts how the catalog is stored (in-memory, Postgres).
// AllExperiments applies the curriculum-unit membership filter before the
// remaining predicates; an unknown unit code yields an empty result, not an
// error. Result order is the insertion order of the underlying store.
type ExperimentStore interface {
	AllExperiments(ctx context.Context, filter domain.ExperimentFilter) ([]domain.Experiment, error)
	ExperimentByID(ctx context.Context, id int64) (domain.Experiment, error)
	FeaturedExperiments(ctx context.Context, limit int) ([]domain.Experiment, error)
}

// CatalogService serves catalog reads. Purely read-only; no side effects.
type CatalogService struct {
	experiments ExperimentStore
}

func NewCatalogService(experiments ExperimentStore) *CatalogService {
	return &CatalogService{experiments: experiments}
}

// Experiments returns the subset matching every set field of the filter.
func (s *CatalogService) Experiments(ctx context.Context, filter domain.ExperimentFilter) ([]domain.Experiment, error) {
	return s.experiments.AllExperiments(ctx, filter)
}

func (s *CatalogService) ExperimentByID(ctx context.Context, id int64) (domain.Experiment, error) {
	return s.experiments.ExperimentByID(ctx, id)
}

func (s *CatalogService) Featured(ctx context.Context) ([]domain.Experiment, error) {
	return s.experiments.FeaturedExperiments(ctx, featuredCount)
}

// Related resolves the experiment's stored related-id list into full records.
// Ids that no longer resolve are skipped; a missing experiment yields an
// empty list rather than an error.
func (s *CatalogService) Related(ctx context.Context, id int64) ([]domain.Experiment, error) {
	exp, err := s.experiments.ExperimentByID(ctx, id)
	if errors.Is(err, domain.ErrExperimentNotFound) {
		return []domain.Experiment{}, nil
	}
	if err != nil {
		return nil, err
	}

	related := make([]domain.Experiment, 0, len(exp.RelatedExperiments))
	for _, relID := range exp.RelatedExperiments {
		rel, err := s.experiments.ExperimentByID(ctx, relID)
		if errors.Is(err, domain.ErrExperimentNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		related = append(related, rel)
	}
	return related, nil
}
