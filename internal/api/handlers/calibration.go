package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/go-chi/chi/v5"
)

type CalibrationHandler struct{}

func NewCalibrationHandler() *CalibrationHandler {
	return &CalibrationHandler{}
}

func (h *CalibrationHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ljpw.CalibrationPoints)
}

func (h *CalibrationHandler) Presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ljpw.Presets)
}

type validateRequest struct {
	Score ljpw.Vector `json:"score"`
}

// Validate compares a vector against a named calibration point.
func (h *CalibrationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := ljpw.ValidateAgainst(req.Score, key)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
