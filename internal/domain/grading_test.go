package domain

import (
	"errors"
	"testing"
)

func fourQuestions() []QuizQuestion {
	// Correct indices 1, 2, 2, 1.
	return []QuizQuestion{
		{ID: 11, QuizID: 1, QuestionText: "Q1", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 1, OrderIndex: 0},
		{ID: 12, QuizID: 1, QuestionText: "Q2", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 2, OrderIndex: 1},
		{ID: 13, QuizID: 1, QuestionText: "Q3", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 2, OrderIndex: 2, Explanation: "because"},
		{ID: 14, QuizID: 1, QuestionText: "Q4", Options: []string{"a", "b", "c"}, CorrectAnswerIndex: 1, OrderIndex: 3},
	}
}

func threeQuestions() []QuizQuestion {
	return []QuizQuestion{
		{ID: 1, Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
		{ID: 2, Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
		{ID: 3, Options: []string{"a", "b"}, CorrectAnswerIndex: 0},
	}
}

func TestGradeScoreRounding(t *testing.T) {
	cases := []struct {
		name    string
		correct int
		want    int
	}{
		{"none", 0, 0},
		{"one of three", 1, 33},
		{"two of three rounds up", 2, 67},
		{"all", 3, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			questions := threeQuestions()
			answers := make([]SubmittedAnswer, len(questions))
			for i, q := range questions {
				selected := 1 // wrong
				if i < tc.correct {
					selected = 0
				}
				answers[i] = SubmittedAnswer{QuestionID: q.ID, SelectedOption: selected}
			}
			graded, err := GradeSubmission(questions, 70, answers)
			if err != nil {
				t.Fatalf("grade: %v", err)
			}
			if graded.Score != tc.want {
				t.Fatalf("expected score %d, got %d", tc.want, graded.Score)
			}
			if graded.CorrectAnswers != tc.correct {
				t.Fatalf("expected %d correct, got %d", tc.correct, graded.CorrectAnswers)
			}
		})
	}
}

func TestGradePassBoundaryInclusive(t *testing.T) {
	// 7 of 10 correct is exactly the 70 threshold.
	questions := make([]QuizQuestion, 10)
	answers := make([]SubmittedAnswer, 10)
	for i := range questions {
		questions[i] = QuizQuestion{ID: int64(i + 1), Options: []string{"a", "b"}, CorrectAnswerIndex: 0}
		selected := 1
		if i < 7 {
			selected = 0
		}
		answers[i] = SubmittedAnswer{QuestionID: int64(i + 1), SelectedOption: selected}
	}
	graded, err := GradeSubmission(questions, 70, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if graded.Score != 70 {
		t.Fatalf("expected score 70, got %d", graded.Score)
	}
	if !graded.Passed {
		t.Fatalf("score equal to passing score must pass")
	}
}

func TestGradeScenarioBreakdown(t *testing.T) {
	answers := []SubmittedAnswer{
		{QuestionID: 11, SelectedOption: 1},
		{QuestionID: 12, SelectedOption: 2},
		{QuestionID: 13, SelectedOption: 0},
		{QuestionID: 14, SelectedOption: 1},
	}
	graded, err := GradeSubmission(fourQuestions(), 70, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if graded.Score != 75 || graded.CorrectAnswers != 3 {
		t.Fatalf("expected score 75 with 3 correct, got %d/%d", graded.Score, graded.CorrectAnswers)
	}
	if graded.Results[2].IsCorrect {
		t.Fatalf("expected third question marked incorrect")
	}
	if graded.Results[2].UserAnswer != 0 || graded.Results[2].CorrectAnswer != 2 {
		t.Fatalf("unexpected breakdown: %+v", graded.Results[2])
	}
	if !graded.Passed {
		t.Fatalf("75 >= 70 must pass")
	}
}

func TestGradeReordersAnswersToQuestionOrder(t *testing.T) {
	answers := []SubmittedAnswer{
		{QuestionID: 14, SelectedOption: 1},
		{QuestionID: 11, SelectedOption: 1},
		{QuestionID: 13, SelectedOption: 2},
		{QuestionID: 12, SelectedOption: 0},
	}
	graded, err := GradeSubmission(fourQuestions(), 70, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	want := []int{1, 0, 2, 1}
	for i, selected := range want {
		if graded.OrderedAnswers[i] != selected {
			t.Fatalf("expected ordered answers %v, got %v", want, graded.OrderedAnswers)
		}
	}
}

func TestGradeRejectsInvalidSubmissions(t *testing.T) {
	cases := []struct {
		name    string
		answers []SubmittedAnswer
	}{
		{"too few answers", []SubmittedAnswer{{QuestionID: 11, SelectedOption: 1}}},
		{"too many answers", []SubmittedAnswer{
			{QuestionID: 11, SelectedOption: 1}, {QuestionID: 12, SelectedOption: 1},
			{QuestionID: 13, SelectedOption: 1}, {QuestionID: 14, SelectedOption: 1},
			{QuestionID: 14, SelectedOption: 1},
		}},
		{"duplicate question", []SubmittedAnswer{
			{QuestionID: 11, SelectedOption: 1}, {QuestionID: 11, SelectedOption: 1},
			{QuestionID: 13, SelectedOption: 1}, {QuestionID: 14, SelectedOption: 1},
		}},
		{"unknown question", []SubmittedAnswer{
			{QuestionID: 99, SelectedOption: 1}, {QuestionID: 12, SelectedOption: 1},
			{QuestionID: 13, SelectedOption: 1}, {QuestionID: 14, SelectedOption: 1},
		}},
		{"negative option", []SubmittedAnswer{
			{QuestionID: 11, SelectedOption: -1}, {QuestionID: 12, SelectedOption: 1},
			{QuestionID: 13, SelectedOption: 1}, {QuestionID: 14, SelectedOption: 1},
		}},
		{"option out of range", []SubmittedAnswer{
			{QuestionID: 11, SelectedOption: 3}, {QuestionID: 12, SelectedOption: 1},
			{QuestionID: 13, SelectedOption: 1}, {QuestionID: 14, SelectedOption: 1},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GradeSubmission(fourQuestions(), 70, tc.answers)
			if !errors.Is(err, ErrInvalidSubmission) {
				t.Fatalf("expected invalid submission, got %v", err)
			}
		})
	}
}

func TestGradeIsDeterministic(t *testing.T) {
	answers := []SubmittedAnswer{
		{QuestionID: 11, SelectedOption: 1},
		{QuestionID: 12, SelectedOption: 0},
		{QuestionID: 13, SelectedOption: 2},
		{QuestionID: 14, SelectedOption: 1},
	}
	first, err := GradeSubmission(fourQuestions(), 70, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	second, err := GradeSubmission(fourQuestions(), 70, answers)
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if first.Score != second.Score || first.CorrectAnswers != second.CorrectAnswers {
		t.Fatalf("same submission graded differently: %d vs %d", first.Score, second.Score)
	}
}
