package http

import (
	"encoding/json"
	"net/http"

	"sciquest-service/internal/domain"
	"sciquest-service/internal/transport/http/auth"
)

func (h *Handlers) quizByExperiment(w http.ResponseWriter, r *http.Request) {
	experimentID, ok := pathID(w, r, "experimentID")
	if !ok {
		return
	}
	quiz, err := h.quizzes.QuizByExperiment(r.Context(), experimentID)
	if err != nil {
		writeError(w, err)
		return
	}
	// null, not 404: an experiment without a quiz is a normal state.
	writeJSON(w, http.StatusOK, quiz)
}

func (h *Handlers) quizQuestions(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(w, r, "quizID")
	if !ok {
		return
	}
	questions, err := h.quizzes.Questions(r.Context(), quizID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

func (h *Handlers) submitQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(w, r, "quizID")
	if !ok {
		return
	}
	userID, _ := auth.Subject(r.Context())

	var req struct {
		Answers []domain.SubmittedAnswer `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid submission payload")
		return
	}

	result, err := h.quizzes.Submit(r.Context(), userID, quizID, req.Answers)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) quizAttempts(w http.ResponseWriter, r *http.Request) {
	quizID, ok := pathID(w, r, "quizID")
	if !ok {
		return
	}
	userID, _ := auth.Subject(r.Context())

	attempts, err := h.quizzes.Attempts(r.Context(), userID, quizID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attempts)
}
