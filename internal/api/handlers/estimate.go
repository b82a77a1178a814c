package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/estimator"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/google/uuid"
)

type EstimateHandler struct {
	svc *service.EstimateService
}

func NewEstimateHandler(svc *service.EstimateService) *EstimateHandler {
	return &EstimateHandler{svc: svc}
}

type estimateRequest struct {
	Metrics   *estimator.OrgMetrics `json:"metrics,omitempty"`
	Text      string                `json:"text,omitempty"`
	SubjectID string                `json:"subject_id,omitempty"`
	Event     string                `json:"event,omitempty"`
}

// Estimate derives LJPW scores from indirect evidence. Results carry a
// confidence and are never authoritative measurements.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svcReq := service.EstimateRequest{
		Metrics: req.Metrics,
		Text:    req.Text,
		Event:   req.Event,
	}
	if req.SubjectID != "" {
		id, err := uuid.Parse(req.SubjectID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid subject_id")
			return
		}
		svcReq.SubjectID = &id
	}

	res, err := h.svc.Estimate(r.Context(), svcReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEstimateNoInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSubjectNotFound):
			writeError(w, http.StatusBadRequest, "subject not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to estimate")
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}
