package domain

import "time"

// ExperimentStep is one numbered instruction within an experiment.
type ExperimentStep struct {
	StepNumber    int    `json:"stepNumber"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"imageUrl,omitempty"`
	SafetyWarning string `json:"safetyWarning,omitempty"`
}

// Experiment is a catalogued science activity with steps, materials and
// explanatory content.
type Experiment struct {
	ID                 int64            `json:"id"`
	Title              string           `json:"title"`
	Description        string           `json:"description"`
	Category           string           `json:"category"`
	CurriculumStage    string           `json:"curriculumStage"`
	Difficulty         string           `json:"difficulty"`
	Duration           int              `json:"duration"` // minutes, always > 0
	MaterialsNeeded    []string         `json:"materialsNeeded"`
	HouseholdItemsOnly bool             `json:"householdItemsOnly"`
	ThumbnailURL       string           `json:"thumbnailUrl"`
	Steps              []ExperimentStep `json:"steps"`
	ScienceExplained   string           `json:"scienceExplained"`
	LearningOutcomes   []string         `json:"learningOutcomes"`
	SafetyNotes        []string         `json:"safetyNotes,omitempty"`
	RelatedExperiments []int64          `json:"relatedExperiments,omitempty"`
	VideoURL           string           `json:"videoUrl,omitempty"`
}

// Quiz is the fixed question set attached to one experiment.
type Quiz struct {
	ID           int64     `json:"id"`
	ExperimentID int64     `json:"experimentId"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	PassingScore int       `json:"passingScore"` // percentage, inclusive threshold
	CreatedAt    time.Time `json:"createdAt"`
}

// QuizQuestion is a single multiple-choice question.
// CorrectAnswerIndex is always a valid index into Options.
type QuizQuestion struct {
	ID                 int64    `json:"id"`
	QuizID             int64    `json:"quizId"`
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation,omitempty"`
	OrderIndex         int      `json:"orderIndex"`
}

// SanitizedQuestion is the student-facing view of a question: the answer key
// and explanation are never included.
type SanitizedQuestion struct {
	ID           int64    `json:"id"`
	QuestionText string   `json:"questionText"`
	Options      []string `json:"options"`
	OrderIndex   int      `json:"orderIndex"`
}

// Sanitize strips the fields that must never reach the question-list endpoint.
func (q QuizQuestion) Sanitize() SanitizedQuestion {
	return SanitizedQuestion{
		ID:           q.ID,
		QuestionText: q.QuestionText,
		Options:      q.Options,
		OrderIndex:   q.OrderIndex,
	}
}

// QuizAttempt is one immutable, scored submission. Attempts are append-only:
// resubmission creates a new row, prior history is retained.
type QuizAttempt struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	QuizID      int64     `json:"quizId"`
	Score       int       `json:"score"` // 0-100 percentage
	Answers     []int     `json:"answers"`
	Passed      bool      `json:"passed"`
	CompletedAt time.Time `json:"completedAt"`
}

// ExperimentProgress is per-user, per-experiment completion state. At most
// one record exists per (user, experiment) pair; writes are last-write-wins.
type ExperimentProgress struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"userId"`
	ExperimentID int64      `json:"experimentId"`
	Completed    bool       `json:"completed"`
	Notes        *string    `json:"notes"`
	CompletedAt  *time.Time `json:"completedAt"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ProgressUpsert carries the writable progress fields.
type ProgressUpsert struct {
	UserID       string
	ExperimentID int64
	Completed    bool
	Notes        *string
	CompletedAt  *time.Time
}

// CurriculumUnit is a syllabus grouping experiments can be tagged against.
// UnitID is the stable external code (e.g. "s1-t1"), distinct from the
// surrogate ID used by the junction relation.
type CurriculumUnit struct {
	ID          int64    `json:"id"`
	UnitID      string   `json:"unitId"`
	Stage       string   `json:"stage"`
	Component   string   `json:"component,omitempty"`
	Term        int      `json:"term"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Outcomes    []string `json:"outcomes"`
	Weeks       int      `json:"weeks"`
}
