package seed

import (
	"context"
	"fmt"

	"sciquest-service/internal/domain"
)

// Store is the writable surface a backend exposes for seeding. Both the
// in-memory store and the Postgres store implement it.
type Store interface {
	CreateExperiment(ctx context.Context, exp domain.Experiment) (domain.Experiment, error)
	SetRelatedExperiments(ctx context.Context, id int64, related []int64) error
	CreateQuiz(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error)
	CreateQuizQuestion(ctx context.Context, question domain.QuizQuestion) (domain.QuizQuestion, error)
	CreateCurriculumUnit(ctx context.Context, unit domain.CurriculumUnit) (domain.CurriculumUnit, error)
	LinkExperimentUnit(ctx context.Context, experimentID, unitID int64) error
}

// Apply loads the fixture catalog: curriculum units first, then experiments,
// then the seed-time related-experiment derivation, unit mappings and
// quizzes. Related experiments are computed once here by category/stage
// proximity and stored; they are never recomputed on read.
func Apply(ctx context.Context, store Store) error {
	unitsByCode := make(map[string]domain.CurriculumUnit)
	for _, unit := range CurriculumUnits() {
		created, err := store.CreateCurriculumUnit(ctx, unit)
		if err != nil {
			return fmt.Errorf("seed curriculum unit %s: %w", unit.UnitID, err)
		}
		unitsByCode[created.UnitID] = created
	}

	inserted := make([]domain.Experiment, 0)
	for _, exp := range Experiments() {
		created, err := store.CreateExperiment(ctx, exp)
		if err != nil {
			return fmt.Errorf("seed experiment %q: %w", exp.Title, err)
		}
		inserted = append(inserted, created)
	}

	for _, exp := range inserted {
		related := relatedFor(exp, inserted)
		if len(related) == 0 {
			continue
		}
		if err := store.SetRelatedExperiments(ctx, exp.ID, related); err != nil {
			return fmt.Errorf("seed related for %q: %w", exp.Title, err)
		}
	}

	for title, codes := range UnitMappings() {
		exp, ok := experimentByTitle(inserted, title)
		if !ok {
			continue
		}
		for _, code := range codes {
			unit, ok := unitsByCode[code]
			if !ok {
				continue
			}
			if err := store.LinkExperimentUnit(ctx, exp.ID, unit.ID); err != nil {
				return fmt.Errorf("seed unit link %s: %w", code, err)
			}
		}
	}

	for _, fixture := range Quizzes() {
		exp, ok := experimentByTitle(inserted, fixture.ExperimentTitle)
		if !ok {
			continue
		}
		quiz := fixture.Quiz
		quiz.ExperimentID = exp.ID
		created, err := store.CreateQuiz(ctx, quiz)
		if err != nil {
			return fmt.Errorf("seed quiz %q: %w", quiz.Title, err)
		}
		for _, question := range fixture.Questions {
			question.QuizID = created.ID
			if _, err := store.CreateQuizQuestion(ctx, question); err != nil {
				return fmt.Errorf("seed question for %q: %w", quiz.Title, err)
			}
		}
	}
	return nil
}

// relatedFor picks up to two same-category experiments, then one more from
// the same curriculum stage.
func relatedFor(exp domain.Experiment, all []domain.Experiment) []int64 {
	related := make([]int64, 0, 3)
	for _, other := range all {
		if len(related) == 2 {
			break
		}
		if other.ID != exp.ID && other.Category == exp.Category {
			related = append(related, other.ID)
		}
	}
	for _, other := range all {
		if other.ID == exp.ID || other.CurriculumStage != exp.CurriculumStage {
			continue
		}
		if containsID(related, other.ID) {
			continue
		}
		related = append(related, other.ID)
		break
	}
	return related
}

func containsID(ids []int64, id int64) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func experimentByTitle(experiments []domain.Experiment, title string) (domain.Experiment, bool) {
	for _, exp := range experiments {
		if exp.Title == title {
			return exp, true
		}
	}
	return domain.Experiment{}, false
}
