package domain

import (
	"fmt"
	"math"
)

// SubmittedAnswer is one entry of a quiz submission.
type SubmittedAnswer struct {
	QuestionID     int64 `json:"questionId"`
	SelectedOption int   `json:"selectedOption"`
}

// QuestionResult is the per-question breakdown returned after grading. Unlike
// the question-list endpoint, correct answers are exposed here: the attempt
// has already been recorded.
type QuestionResult struct {
	QuestionID    int64    `json:"questionId"`
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	UserAnswer    int      `json:"userAnswer"`
	CorrectAnswer int      `json:"correctAnswer"`
	IsCorrect     bool     `json:"isCorrect"`
	Explanation   string   `json:"explanation,omitempty"`
}

// GradeResult is the outcome of grading one valid submission.
type GradeResult struct {
	Score          int // 0-100, rounded half-up
	Passed         bool
	CorrectAnswers int
	// OrderedAnswers holds the selected option per question in the quiz's
	// question order, regardless of submission order.
	OrderedAnswers []int
	Results        []QuestionResult
}

// GradeSubmission validates answers against the quiz's question set and
// scores them. Validation enforces an exact bijection between submitted
// question ids and the quiz's question ids, and range-checks every selected
// option; any violation returns an error wrapping ErrInvalidSubmission and
// nothing is graded. Questions must arrive in display order.
func GradeSubmission(questions []QuizQuestion, passingScore int, answers []SubmittedAnswer) (GradeResult, error) {
	if len(answers) != len(questions) {
		return GradeResult{}, fmt.Errorf("%w: number of answers (%d) must match number of questions (%d)",
			ErrInvalidSubmission, len(answers), len(questions))
	}

	byID := make(map[int64]QuizQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	seen := make(map[int64]bool, len(answers))
	for i, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			return GradeResult{}, fmt.Errorf("%w: answer at index %d: questionId %d does not belong to this quiz",
				ErrInvalidSubmission, i, ans.QuestionID)
		}
		if seen[ans.QuestionID] {
			return GradeResult{}, fmt.Errorf("%w: duplicate answer for questionId %d", ErrInvalidSubmission, ans.QuestionID)
		}
		seen[ans.QuestionID] = true
		if ans.SelectedOption < 0 || ans.SelectedOption >= len(q.Options) {
			return GradeResult{}, fmt.Errorf("%w: answer for question %d: selectedOption must be between 0 and %d",
				ErrInvalidSubmission, ans.QuestionID, len(q.Options)-1)
		}
	}
	// Count match plus no duplicates already implies completeness, but the
	// missing id names the actionable detail for the caller.
	for _, q := range questions {
		if !seen[q.ID] {
			return GradeResult{}, fmt.Errorf("%w: missing answer for questionId %d", ErrInvalidSubmission, q.ID)
		}
	}

	selected := make(map[int64]int, len(answers))
	for _, ans := range answers {
		selected[ans.QuestionID] = ans.SelectedOption
	}

	correct := 0
	ordered := make([]int, len(questions))
	results := make([]QuestionResult, len(questions))
	for i, q := range questions {
		choice := selected[q.ID]
		ordered[i] = choice
		isCorrect := choice == q.CorrectAnswerIndex
		if isCorrect {
			correct++
		}
		results[i] = QuestionResult{
			QuestionID:    q.ID,
			QuestionText:  q.QuestionText,
			Options:       q.Options,
			UserAnswer:    choice,
			CorrectAnswer: q.CorrectAnswerIndex,
			IsCorrect:     isCorrect,
			Explanation:   q.Explanation,
		}
	}

	// Half-up rounding: 2/3 correct is 67, not 66.
	score := int(math.Round(float64(correct) / float64(len(questions)) * 100))
	return GradeResult{
		Score:          score,
		Passed:         score >= passingScore,
		CorrectAnswers: correct,
		OrderedAnswers: ordered,
		Results:        results,
	}, nil
}
