package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/google/uuid"
)

type ScoreHandler struct {
	svc *service.ScoreService
}

func NewScoreHandler(svc *service.ScoreService) *ScoreHandler {
	return &ScoreHandler{svc: svc}
}

type scoreRequest struct {
	Score      ljpw.Vector      `json:"score"`
	ProfileID  string           `json:"profile_id,omitempty"`
	Preset     string           `json:"preset,omitempty"`
	Thresholds *ljpw.Thresholds `json:"thresholds,omitempty"`
	Weights    *ljpw.Weights    `json:"weights,omitempty"`
	Anchor     *ljpw.Vector     `json:"anchor,omitempty"`
}

func (h *ScoreHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	svcReq := service.ScoreRequest{
		Score:      req.Score,
		Preset:     req.Preset,
		Thresholds: req.Thresholds,
		Weights:    req.Weights,
		Anchor:     req.Anchor,
	}
	if req.ProfileID != "" {
		id, err := uuid.Parse(req.ProfileID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid profile_id")
			return
		}
		svcReq.ProfileID = &id
	}

	report, err := h.svc.Evaluate(r.Context(), svcReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "profile not found")
		case errors.Is(err, service.ErrPresetWithCustom):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, report)
}
