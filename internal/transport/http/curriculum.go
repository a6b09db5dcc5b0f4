package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) allCurriculum(w http.ResponseWriter, r *http.Request) {
	units, err := h.curriculum.AllUnits(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *Handlers) curriculumByStage(w http.ResponseWriter, r *http.Request) {
	units, err := h.curriculum.UnitsByStage(r.Context(), chi.URLParam(r, "stage"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, units)
}

func (h *Handlers) curriculumUnit(w http.ResponseWriter, r *http.Request) {
	unit, err := h.curriculum.UnitByCode(r.Context(), chi.URLParam(r, "unitID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unit)
}
