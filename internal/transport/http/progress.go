package http

import (
	"encoding/json"
	"net/http"

	"sciquest-service/internal/transport/http/auth"
)

func (h *Handlers) allProgress(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.Subject(r.Context())
	records, err := h.progress.AllByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *Handlers) getProgress(w http.ResponseWriter, r *http.Request) {
	experimentID, ok := pathID(w, r, "experimentID")
	if !ok {
		return
	}
	userID, _ := auth.Subject(r.Context())

	record, err := h.progress.Get(r.Context(), userID, experimentID)
	if err != nil {
		writeError(w, err)
		return
	}
	// null when no record exists yet; clients treat that as "not started".
	writeJSON(w, http.StatusOK, record)
}

func (h *Handlers) upsertProgress(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.Subject(r.Context())

	var req struct {
		ExperimentID int64   `json:"experimentId"`
		Completed    bool    `json:"completed"`
		Notes        *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid progress payload")
		return
	}
	if req.ExperimentID <= 0 {
		badRequest(w, "experimentId is required")
		return
	}

	record, err := h.progress.Record(r.Context(), userID, req.ExperimentID, req.Completed, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handlers) updateProgressNotes(w http.ResponseWriter, r *http.Request) {
	experimentID, ok := pathID(w, r, "experimentID")
	if !ok {
		return
	}
	userID, _ := auth.Subject(r.Context())

	var req struct {
		Notes *string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Notes == nil {
		badRequest(w, "notes must be a string")
		return
	}

	record, err := h.progress.UpdateNotes(r.Context(), userID, experimentID, *req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *Handlers) setProgressCompleted(w http.ResponseWriter, r *http.Request) {
	experimentID, ok := pathID(w, r, "experimentID")
	if !ok {
		return
	}
	userID, _ := auth.Subject(r.Context())

	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		badRequest(w, "completed must be a boolean")
		return
	}

	record, err := h.progress.SetCompleted(r.Context(), userID, experimentID, *req.Completed)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}
