package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"sciquest-service/internal/domain"
)

// Store implements every storage capability on top of a pgx connection
// pool. Experiments keep their full document in a JSONB column alongside
// the columns the catalog filter needs; everything else is relational.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// --- experiments ---

func (s *Store) AllExperiments(ctx context.Context, filter domain.ExperimentFilter) ([]domain.Experiment, error) {
	var (
		where []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.CurriculumUnitID != "" {
		var unitID int64
		err := s.pool.QueryRow(ctx,
			`SELECT id FROM curriculum_units WHERE unit_id=$1`, filter.CurriculumUnitID).Scan(&unitID)
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Experiment{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("resolve curriculum unit: %w", err)
		}
		where = append(where, fmt.Sprintf(
			"id IN (SELECT experiment_id FROM experiment_curriculum_units WHERE curriculum_unit_id=%s)", arg(unitID)))
	}
	if filter.Category != "" {
		where = append(where, "category="+arg(filter.Category))
	}
	if filter.CurriculumStage != "" {
		where = append(where, "curriculum_stage="+arg(filter.CurriculumStage))
	}
	if filter.Difficulty != "" {
		where = append(where, "difficulty="+arg(filter.Difficulty))
	}
	if filter.HouseholdItemsOnly {
		where = append(where, "household_items_only=TRUE")
	}
	if filter.MaxDuration > 0 {
		where = append(where, "duration<="+arg(filter.MaxDuration))
	}
	if filter.SearchQuery != "" {
		pattern := "%" + filter.SearchQuery + "%"
		p := arg(pattern)
		where = append(where, fmt.Sprintf("(title ILIKE %s OR description ILIKE %s OR category ILIKE %s)", p, p, p))
	}

	query := `SELECT id, doc FROM experiments`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list experiments: %w", err)
	}
	defer rows.Close()

	experiments := make([]domain.Experiment, 0)
	for rows.Next() {
		exp, err := scanExperiment(rows)
		if err != nil {
			return nil, err
		}
		experiments = append(experiments, exp)
	}
	return experiments, rows.Err()
}

func (s *Store) ExperimentByID(ctx context.Context, id int64) (domain.Experiment, error) {
	row := s.pool.QueryRow(ctx, `SELECT id, doc FROM experiments WHERE id=$1`, id)
	exp, err := scanExperiment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Experiment{}, domain.ErrExperimentNotFound
	}
	return exp, err
}

func (s *Store) FeaturedExperiments(ctx context.Context, limit int) ([]domain.Experiment, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, doc FROM experiments ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list featured experiments: %w", err)
	}
	defer rows.Close()

	experiments := make([]domain.Experiment, 0, limit)
	for rows.Next() {
		exp, err := scanExperiment(rows)
		if err != nil {
			return nil, err
		}
		experiments = append(experiments, exp)
	}
	return experiments, rows.Err()
}

func (s *Store) CreateExperiment(ctx context.Context, exp domain.Experiment) (domain.Experiment, error) {
	doc, err := json.Marshal(exp)
	if err != nil {
		return domain.Experiment{}, fmt.Errorf("marshal experiment: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO experiments (title, description, category, curriculum_stage, difficulty, duration, household_items_only, doc)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		exp.Title, exp.Description, exp.Category, exp.CurriculumStage,
		exp.Difficulty, exp.Duration, exp.HouseholdItemsOnly, doc,
	).Scan(&exp.ID)
	if err != nil {
		return domain.Experiment{}, fmt.Errorf("insert experiment: %w", err)
	}
	return exp, nil
}

func (s *Store) SetRelatedExperiments(ctx context.Context, id int64, related []int64) error {
	encoded, err := json.Marshal(related)
	if err != nil {
		return fmt.Errorf("marshal related ids: %w", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE experiments SET doc = jsonb_set(doc, '{relatedExperiments}', $2::jsonb) WHERE id=$1`,
		id, encoded)
	if err != nil {
		return fmt.Errorf("update related experiments: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrExperimentNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanExperiment decodes the JSONB document and restores the serial id,
// which is authoritative over whatever the document carries.
func scanExperiment(row rowScanner) (domain.Experiment, error) {
	var (
		id  int64
		doc []byte
	)
	if err := row.Scan(&id, &doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Experiment{}, err
		}
		return domain.Experiment{}, fmt.Errorf("scan experiment: %w", err)
	}
	var exp domain.Experiment
	if err := json.Unmarshal(doc, &exp); err != nil {
		return domain.Experiment{}, fmt.Errorf("unmarshal experiment: %w", err)
	}
	exp.ID = id
	return exp, nil
}

// --- quizzes ---

func (s *Store) QuizByID(ctx context.Context, id int64) (domain.Quiz, error) {
	quiz, err := s.scanQuiz(s.pool.QueryRow(ctx, `
		SELECT id, experiment_id, title, description, passing_score, created_at
		FROM quizzes WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	return quiz, err
}

func (s *Store) QuizByExperiment(ctx context.Context, experimentID int64) (*domain.Quiz, error) {
	quiz, err := s.scanQuiz(s.pool.QueryRow(ctx, `
		SELECT id, experiment_id, title, description, passing_score, created_at
		FROM quizzes WHERE experiment_id=$1 ORDER BY id LIMIT 1`, experimentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *Store) scanQuiz(row rowScanner) (domain.Quiz, error) {
	var (
		quiz domain.Quiz
		desc *string
	)
	err := row.Scan(&quiz.ID, &quiz.ExperimentID, &quiz.Title, &desc, &quiz.PassingScore, &quiz.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Quiz{}, err
		}
		return domain.Quiz{}, fmt.Errorf("scan quiz: %w", err)
	}
	if desc != nil {
		quiz.Description = *desc
	}
	return quiz, nil
}

func (s *Store) QuestionsByQuiz(ctx context.Context, quizID int64) ([]domain.QuizQuestion, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, quiz_id, question_text, options, correct_answer_index, explanation, order_index
		FROM quiz_questions WHERE quiz_id=$1 ORDER BY order_index, id`, quizID)
	if err != nil {
		return nil, fmt.Errorf("list quiz questions: %w", err)
	}
	defer rows.Close()

	questions := make([]domain.QuizQuestion, 0, 4)
	for rows.Next() {
		var (
			q           domain.QuizQuestion
			options     []byte
			explanation *string
		)
		if err := rows.Scan(&q.ID, &q.QuizID, &q.QuestionText, &options, &q.CorrectAnswerIndex, &explanation, &q.OrderIndex); err != nil {
			return nil, fmt.Errorf("scan quiz question: %w", err)
		}
		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, fmt.Errorf("unmarshal question options: %w", err)
		}
		if explanation != nil {
			q.Explanation = *explanation
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (s *Store) InsertAttempt(ctx context.Context, attempt domain.QuizAttempt) (domain.QuizAttempt, error) {
	answers, err := json.Marshal(attempt.Answers)
	if err != nil {
		return domain.QuizAttempt{}, fmt.Errorf("marshal answers: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO quiz_attempts (user_id, quiz_id, score, answers, passed, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		attempt.UserID, attempt.QuizID, attempt.Score, answers, attempt.Passed, attempt.CompletedAt,
	).Scan(&attempt.ID)
	if err != nil {
		return domain.QuizAttempt{}, fmt.Errorf("insert quiz attempt: %w", err)
	}
	return attempt, nil
}

func (s *Store) AttemptsByUser(ctx context.Context, userID string, quizID int64) ([]domain.QuizAttempt, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, quiz_id, score, answers, passed, completed_at
		FROM quiz_attempts WHERE user_id=$1 AND quiz_id=$2
		ORDER BY completed_at DESC, id DESC`, userID, quizID)
	if err != nil {
		return nil, fmt.Errorf("list quiz attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]domain.QuizAttempt, 0)
	for rows.Next() {
		var (
			a       domain.QuizAttempt
			answers []byte
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.QuizID, &a.Score, &answers, &a.Passed, &a.CompletedAt); err != nil {
			return nil, fmt.Errorf("scan quiz attempt: %w", err)
		}
		if err := json.Unmarshal(answers, &a.Answers); err != nil {
			return nil, fmt.Errorf("unmarshal attempt answers: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}

func (s *Store) CreateQuiz(ctx context.Context, quiz domain.Quiz) (domain.Quiz, error) {
	err := s.pool.QueryRow(ctx, `
		INSERT INTO quizzes (experiment_id, title, description, passing_score)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		quiz.ExperimentID, quiz.Title, nullable(quiz.Description), quiz.PassingScore,
	).Scan(&quiz.ID, &quiz.CreatedAt)
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("insert quiz: %w", err)
	}
	return quiz, nil
}

func (s *Store) CreateQuizQuestion(ctx context.Context, question domain.QuizQuestion) (domain.QuizQuestion, error) {
	options, err := json.Marshal(question.Options)
	if err != nil {
		return domain.QuizQuestion{}, fmt.Errorf("marshal question options: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO quiz_questions (quiz_id, question_text, options, correct_answer_index, explanation, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		question.QuizID, question.QuestionText, options,
		question.CorrectAnswerIndex, nullable(question.Explanation), question.OrderIndex,
	).Scan(&question.ID)
	if err != nil {
		return domain.QuizQuestion{}, fmt.Errorf("insert quiz question: %w", err)
	}
	return question, nil
}

// --- progress ---

func (s *Store) Progress(ctx context.Context, userID string, experimentID int64) (*domain.ExperimentProgress, error) {
	p, err := s.scanProgress(s.pool.QueryRow(ctx, `
		SELECT id, user_id, experiment_id, completed, notes, completed_at, created_at, updated_at
		FROM experiment_progress WHERE user_id=$1 AND experiment_id=$2`, userID, experimentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) AllProgressByUser(ctx context.Context, userID string) ([]domain.ExperimentProgress, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, experiment_id, completed, notes, completed_at, created_at, updated_at
		FROM experiment_progress WHERE user_id=$1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ExperimentProgress, 0)
	for rows.Next() {
		p, err := s.scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}
	return records, rows.Err()
}

func (s *Store) UpsertProgress(ctx context.Context, upsert domain.ProgressUpsert) (domain.ExperimentProgress, error) {
	p, err := s.scanProgress(s.pool.QueryRow(ctx, `
		INSERT INTO experiment_progress (user_id, experiment_id, completed, notes, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, experiment_id) DO UPDATE SET
			completed = EXCLUDED.completed,
			notes = EXCLUDED.notes,
			completed_at = EXCLUDED.completed_at,
			updated_at = now()
		RETURNING id, user_id, experiment_id, completed, notes, completed_at, created_at, updated_at`,
		upsert.UserID, upsert.ExperimentID, upsert.Completed, upsert.Notes, upsert.CompletedAt))
	if err != nil {
		return domain.ExperimentProgress{}, fmt.Errorf("upsert progress: %w", err)
	}
	return p, nil
}

func (s *Store) scanProgress(row rowScanner) (domain.ExperimentProgress, error) {
	var p domain.ExperimentProgress
	err := row.Scan(&p.ID, &p.UserID, &p.ExperimentID, &p.Completed, &p.Notes, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ExperimentProgress{}, err
		}
		return domain.ExperimentProgress{}, fmt.Errorf("scan progress: %w", err)
	}
	return p, nil
}

// --- curriculum ---

func (s *Store) AllUnits(ctx context.Context) ([]domain.CurriculumUnit, error) {
	return s.queryUnits(ctx, `
		SELECT id, unit_id, stage, component, term, name, description, outcomes, weeks
		FROM curriculum_units ORDER BY stage, term, id`)
}

func (s *Store) UnitsByStage(ctx context.Context, stage string) ([]domain.CurriculumUnit, error) {
	return s.queryUnits(ctx, `
		SELECT id, unit_id, stage, component, term, name, description, outcomes, weeks
		FROM curriculum_units WHERE stage=$1 ORDER BY stage, term, id`, stage)
}

func (s *Store) UnitByCode(ctx context.Context, code string) (domain.CurriculumUnit, error) {
	unit, err := scanUnit(s.pool.QueryRow(ctx, `
		SELECT id, unit_id, stage, component, term, name, description, outcomes, weeks
		FROM curriculum_units WHERE unit_id=$1`, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.CurriculumUnit{}, domain.ErrUnitNotFound
	}
	return unit, err
}

func (s *Store) UnitsForExperiment(ctx context.Context, experimentID int64) ([]domain.CurriculumUnit, error) {
	return s.queryUnits(ctx, `
		SELECT u.id, u.unit_id, u.stage, u.component, u.term, u.name, u.description, u.outcomes, u.weeks
		FROM curriculum_units u
		JOIN experiment_curriculum_units link ON link.curriculum_unit_id = u.id
		WHERE link.experiment_id=$1
		ORDER BY u.stage, u.term, u.id`, experimentID)
}

func (s *Store) CreateCurriculumUnit(ctx context.Context, unit domain.CurriculumUnit) (domain.CurriculumUnit, error) {
	outcomes, err := json.Marshal(unit.Outcomes)
	if err != nil {
		return domain.CurriculumUnit{}, fmt.Errorf("marshal unit outcomes: %w", err)
	}
	err = s.pool.QueryRow(ctx, `
		INSERT INTO curriculum_units (unit_id, stage, component, term, name, description, outcomes, weeks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		unit.UnitID, unit.Stage, nullable(unit.Component), unit.Term,
		unit.Name, unit.Description, outcomes, unit.Weeks,
	).Scan(&unit.ID)
	if err != nil {
		return domain.CurriculumUnit{}, fmt.Errorf("insert curriculum unit: %w", err)
	}
	return unit, nil
}

func (s *Store) LinkExperimentUnit(ctx context.Context, experimentID, unitID int64) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO experiment_curriculum_units (experiment_id, curriculum_unit_id)
		VALUES ($1, $2)`, experimentID, unitID)
	if err != nil {
		return fmt.Errorf("link experiment to unit: %w", err)
	}
	return nil
}

func (s *Store) queryUnits(ctx context.Context, query string, args ...interface{}) ([]domain.CurriculumUnit, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list curriculum units: %w", err)
	}
	defer rows.Close()

	units := make([]domain.CurriculumUnit, 0)
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

func scanUnit(row rowScanner) (domain.CurriculumUnit, error) {
	var (
		unit      domain.CurriculumUnit
		component *string
		outcomes  []byte
	)
	err := row.Scan(&unit.ID, &unit.UnitID, &unit.Stage, &component, &unit.Term,
		&unit.Name, &unit.Description, &outcomes, &unit.Weeks)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CurriculumUnit{}, err
		}
		return domain.CurriculumUnit{}, fmt.Errorf("scan curriculum unit: %w", err)
	}
	if component != nil {
		unit.Component = *component
	}
	if err := json.Unmarshal(outcomes, &unit.Outcomes); err != nil {
		return domain.CurriculumUnit{}, fmt.Errorf("unmarshal unit outcomes: %w", err)
	}
	return unit, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
