package app

import (
	"context"

	"sciquest-service/internal/domain"
)

// CurriculumStore abstracts read-only curriculum metadata.
type CurriculumStore interface {
	AllUnits(ctx context.Context) ([]domain.CurriculumUnit, error)
	UnitsByStage(ctx context.Context, stage string) ([]domain.CurriculumUnit, error)
	// UnitByCode returns domain.ErrUnitNotFound for an unknown unit code.
	UnitByCode(ctx context.Context, code string) (domain.CurriculumUnit, error)
	UnitsForExperiment(ctx context.Context, experimentID int64) ([]domain.CurriculumUnit, error)
}

// CurriculumService serves curriculum reads.
type CurriculumService struct {
	units CurriculumStore
}

func NewCurriculumService(units CurriculumStore) *CurriculumService {
	return &CurriculumService{units: units}
}

func (s *CurriculumService) AllUnits(ctx context.Context) ([]domain.CurriculumUnit, error) {
	return s.units.AllUnits(ctx)
}

func (s *CurriculumService) UnitsByStage(ctx context.Context, stage string) ([]domain.CurriculumUnit, error) {
	return s.units.UnitsByStage(ctx, stage)
}

func (s *CurriculumService) UnitByCode(ctx context.Context, code string) (domain.CurriculumUnit, error) {
	return s.units.UnitByCode(ctx, code)
}

func (s *CurriculumService) UnitsForExperiment(ctx context.Context, experimentID int64) ([]domain.CurriculumUnit, error) {
	return s.units.UnitsForExperiment(ctx, experimentID)
}
