package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"sciquest-service/internal/domain"
)

func (h *Handlers) listExperiments(w http.ResponseWriter, r *http.Request) {
	filter, err := parseExperimentFilter(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}
	experiments, err := h.catalog.Experiments(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, experiments)
}

func (h *Handlers) featuredExperiments(w http.ResponseWriter, r *http.Request) {
	experiments, err := h.catalog.Featured(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, experiments)
}

func (h *Handlers) relatedExperiments(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "experimentID")
	if !ok {
		return
	}
	related, err := h.catalog.Related(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, related)
}

func (h *Handlers) getExperiment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "experimentID")
	if !ok {
		return
	}
	exp, err := h.catalog.ExperimentByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, exp)
}

func (h *Handlers) experimentCurriculum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "experimentID")
	if !ok {
		return
	}
	units, err := h.curriculum.UnitsForExperiment(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func parseExperimentFilter(r *http.Request) (domain.ExperimentFilter, error) {
	q := r.URL.Query()
	filter := domain.ExperimentFilter{
		Category:         q.Get("category"),
		CurriculumStage:  q.Get("curriculumStage"),
		Difficulty:       q.Get("difficulty"),
		SearchQuery:      q.Get("searchQuery"),
		CurriculumUnitID: q.Get("curriculumUnitId"),
	}

	switch q.Get("householdItemsOnly") {
	case "", "false":
	case "true":
		filter.HouseholdItemsOnly = true
	default:
		return domain.ExperimentFilter{}, errors.New("householdItemsOnly must be true or false")
	}

	if raw := q.Get("maxDuration"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil || max < 0 {
			return domain.ExperimentFilter{}, errors.New("maxDuration must be a non-negative integer")
		}
		filter.MaxDuration = max
	}
	return filter, nil
}

// pathID parses a numeric path parameter, answering 400 itself on failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, "invalid "+name)
		return 0, false
	}
	return id, true
}
