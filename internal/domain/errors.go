package domain

import "errors"

var (
	// ErrExperimentNotFound indicates the experiment id resolves to nothing.
	ErrExperimentNotFound = errors.New("experiment not found")
	// ErrQuizNotFound indicates the quiz id resolves to nothing.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizEmpty indicates a quiz with zero questions; such a quiz cannot be submitted.
	ErrQuizEmpty = errors.New("no questions found for this quiz")
	// ErrUnitNotFound indicates an unknown curriculum unit code.
	ErrUnitNotFound = errors.New("curriculum unit not found")
	// ErrInvalidSubmission marks structural validation failures of a quiz
	// submission. Wrapped errors carry the per-answer detail.
	ErrInvalidSubmission = errors.New("invalid submission")
)
