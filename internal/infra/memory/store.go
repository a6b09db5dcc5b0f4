package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"sciquest-service/internal/domain"
)

type unitLink struct {
	experimentID int64
	unitID       int64
}

// Store is a process-lifetime implementation of every storage capability,
// backed by keyed maps and insertion-ordered slices. It satisfies the same
// contract as the Postgres store; callers never branch on the backend.
type Store struct {
	mu sync.RWMutex

	experiments []domain.Experiment
	quizzes     []domain.Quiz
	questions   []domain.QuizQuestion
	attempts    []domain.QuizAttempt
	progress    []domain.ExperimentProgress
	units       []domain.CurriculumUnit
	links       []unitLink

	nextExperimentID int64
	nextQuizID       int64
	nextQuestionID   int64
	nextAttemptID    int64
	nextProgressID   int64
	nextUnitID       int64

	clock func() time.Time
}

func NewStore() *Store {
	return &Store{clock: time.Now}
}

// NewStoreWithClock is test-only for deterministic progress timestamps.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{clock: now}
}

// --- experiments ---

func (s *Store) AllExperiments(_ context.Context, filter domain.ExperimentFilter) ([]domain.Experiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := s.experiments

	// Membership filter first: it is the most selective, and an unknown unit
	// code short-circuits to an empty result.
	if filter.CurriculumUnitID != "" {
		unit, ok := s.unitByCodeLocked(filter.CurriculumUnitID)
		if !ok {
			return []domain.Experiment{}, nil
		}
		members := make(map[int64]bool)
		for _, link := range s.links {
			if link.unitID == unit.ID {
				members[link.experimentID] = true
			}
		}
		narrowed := make([]domain.Experiment, 0, len(members))
		for _, exp := range candidates {
			if members[exp.ID] {
				narrowed = append(narrowed, exp)
			}
		}
		candidates = narrowed
	}

	matched := make([]domain.Experiment, 0, len(candidates))
	for _, exp := range candidates {
		if filter.Matches(exp) {
			matched = append(matched, exp)
		}
	}
	return matched, nil
}

func (s *Store) ExperimentByID(_ context.Context, id int64) (domain.Experiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, exp := range s.experiments {
		if exp.ID == id {
			return exp, nil
		}
	}
	return domain.Experiment{}, domain.ErrExperimentNotFound
}

func (s *Store) FeaturedExperiments(_ context.Context, limit int) ([]domain.Experiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit > len(s.experiments) {
		limit = len(s.experiments)
	}
	featured := make([]domain.Experiment, limit)
	copy(featured, s.experiments[:limit])
	return featured, nil
}

func (s *Store) CreateExperiment(_ context.Context, exp domain.Experiment) (domain.Experiment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextExperimentID++
	exp.ID = s.nextExperimentID
	s.experiments = append(s.experiments, exp)
	return exp, nil
}

func (s *Store) SetRelatedExperiments(_ context.Context, id int64, related []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.experiments {
		if s.experiments[i].ID == id {
			s.experiments[i].RelatedExperiments = related
			return nil
		}
	}
	return domain.ErrExperimentNotFound
}

// --- quizzes ---

func (s *Store) QuizByID(_ context.Context, id int64) (domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, quiz := range s.quizzes {
		if quiz.ID == id {
			return quiz, nil
		}
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

func (s *Store) QuizByExperiment(_ context.Context, experimentID int64) (*domain.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// First match wins; the relation is 1:1 in practice but not enforced.
	for _, quiz := range s.quizzes {
		if quiz.ExperimentID == experimentID {
			q := quiz
			return &q, nil
		}
	}
	return nil, nil
}

func (s *Store) QuestionsByQuiz(_ context.Context, quizID int64) ([]domain.QuizQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	questions := make([]domain.QuizQuestion, 0, 4)
	for _, q := range s.questions {
		if q.QuizID == quizID {
			questions = append(questions, q)
		}
	}
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].OrderIndex < questions[j].OrderIndex
	})
	return questions, nil
}

func (s *Store) InsertAttempt(_ context.Context, attempt domain.QuizAttempt) (domain.QuizAttempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAttemptID++
	attempt.ID = s.nextAttemptID
	answers := make([]int, len(attempt.Answers))
	copy(answers, attempt.Answers)
	attempt.Answers = answers
	s.attempts = append(s.attempts, attempt)
	return attempt, nil
}

func (s *Store) AttemptsByUser(_ context.Context, userID string, quizID int64) ([]domain.QuizAttempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attempts := make([]domain.QuizAttempt, 0)
	// Reverse insertion order so equal timestamps still come out newest-first.
	for i := len(s.attempts) - 1; i >= 0; i-- {
		a := s.attempts[i]
		if a.UserID == userID && a.QuizID == quizID {
			attempts = append(attempts, a)
		}
	}
	sort.SliceStable(attempts, func(i, j int) bool {
		return attempts[i].CompletedAt.After(attempts[j].CompletedAt)
	})
	return attempts, nil
}

func (s *Store) CreateQuiz(_ context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextQuizID++
	quiz.ID = s.nextQuizID
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = s.clock()
	}
	s.quizzes = append(s.quizzes, quiz)
	return quiz, nil
}

func (s *Store) CreateQuizQuestion(_ context.Context, question domain.QuizQuestion) (domain.QuizQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextQuestionID++
	question.ID = s.nextQuestionID
	s.questions = append(s.questions, question)
	return question, nil
}

// --- progress ---

func (s *Store) Progress(_ context.Context, userID string, experimentID int64) (*domain.ExperimentProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.progressLocked(userID, experimentID); ok {
		copied := p
		return &copied, nil
	}
	return nil, nil
}

func (s *Store) AllProgressByUser(_ context.Context, userID string) ([]domain.ExperimentProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]domain.ExperimentProgress, 0)
	for _, p := range s.progress {
		if p.UserID == userID {
			records = append(records, p)
		}
	}
	return records, nil
}

func (s *Store) UpsertProgress(_ context.Context, upsert domain.ProgressUpsert) (domain.ExperimentProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	for i := range s.progress {
		p := &s.progress[i]
		if p.UserID == upsert.UserID && p.ExperimentID == upsert.ExperimentID {
			p.Completed = upsert.Completed
			p.Notes = upsert.Notes
			p.CompletedAt = upsert.CompletedAt
			p.UpdatedAt = now
			return *p, nil
		}
	}

	s.nextProgressID++
	created := domain.ExperimentProgress{
		ID:           s.nextProgressID,
		UserID:       upsert.UserID,
		ExperimentID: upsert.ExperimentID,
		Completed:    upsert.Completed,
		Notes:        upsert.Notes,
		CompletedAt:  upsert.CompletedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.progress = append(s.progress, created)
	return created, nil
}

func (s *Store) progressLocked(userID string, experimentID int64) (domain.ExperimentProgress, bool) {
	for _, p := range s.progress {
		if p.UserID == userID && p.ExperimentID == experimentID {
			return p, true
		}
	}
	return domain.ExperimentProgress{}, false
}

// --- curriculum ---

func (s *Store) AllUnits(_ context.Context) ([]domain.CurriculumUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	units := make([]domain.CurriculumUnit, len(s.units))
	copy(units, s.units)
	sortUnits(units)
	return units, nil
}

func (s *Store) UnitsByStage(_ context.Context, stage string) ([]domain.CurriculumUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	units := make([]domain.CurriculumUnit, 0)
	for _, u := range s.units {
		if u.Stage == stage {
			units = append(units, u)
		}
	}
	sortUnits(units)
	return units, nil
}

func (s *Store) UnitByCode(_ context.Context, code string) (domain.CurriculumUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if unit, ok := s.unitByCodeLocked(code); ok {
		return unit, nil
	}
	return domain.CurriculumUnit{}, domain.ErrUnitNotFound
}

func (s *Store) UnitsForExperiment(_ context.Context, experimentID int64) ([]domain.CurriculumUnit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unitIDs := make(map[int64]bool)
	for _, link := range s.links {
		if link.experimentID == experimentID {
			unitIDs[link.unitID] = true
		}
	}
	units := make([]domain.CurriculumUnit, 0, len(unitIDs))
	for _, u := range s.units {
		if unitIDs[u.ID] {
			units = append(units, u)
		}
	}
	sortUnits(units)
	return units, nil
}

func (s *Store) CreateCurriculumUnit(_ context.Context, unit domain.CurriculumUnit) (domain.CurriculumUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextUnitID++
	unit.ID = s.nextUnitID
	s.units = append(s.units, unit)
	return unit, nil
}

func (s *Store) LinkExperimentUnit(_ context.Context, experimentID, unitID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.links = append(s.links, unitLink{experimentID: experimentID, unitID: unitID})
	return nil
}

func (s *Store) unitByCodeLocked(code string) (domain.CurriculumUnit, bool) {
	for _, u := range s.units {
		if u.UnitID == code {
			return u, true
		}
	}
	return domain.CurriculumUnit{}, false
}

func sortUnits(units []domain.CurriculumUnit) {
	sort.SliceStable(units, func(i, j int) bool {
		if units[i].Stage != units[j].Stage {
			return units[i].Stage < units[j].Stage
		}
		return units[i].Term < units[j].Term
	})
}
