package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type profileRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Anchor      *ljpw.Vector     `json:"anchor,omitempty"`
	Weights     *ljpw.Weights    `json:"weights,omitempty"`
	Thresholds  *ljpw.Thresholds `json:"thresholds,omitempty"`
	Preset      string           `json:"preset,omitempty"`
	Reference   string           `json:"reference,omitempty"`
}

func (req *profileRequest) apply(p *domain.Profile) error {
	p.Name = req.Name
	p.Description = req.Description
	p.Reference = domain.Reference(req.Reference)
	if req.Anchor != nil {
		p.Anchor = *req.Anchor
	}
	if req.Weights != nil {
		p.Weights = *req.Weights
	}
	if req.Preset != "" {
		if req.Thresholds != nil {
			return service.ErrPresetWithCustom
		}
		th, err := ljpw.PresetThresholds(req.Preset)
		if err != nil {
			return err
		}
		p.Thresholds = th
	}
	if req.Thresholds != nil {
		p.Thresholds = *req.Thresholds
	}
	return nil
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var profile domain.Profile
	if err := req.apply(&profile); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Create(r.Context(), &profile); err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNameMissing),
			errors.Is(err, service.ErrInvalidReference),
			errors.Is(err, service.ErrInvalidWeights):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProfileConflict):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create profile")
		}
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	profile, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list profiles")
		return
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	writeJSON(w, http.StatusOK, profiles)
}

// Update replaces a profile's configuration. Existing assessments keep
// their scores; their classifications are refreshed by the background
// sweeper.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile id")
		return
	}

	current, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		req.Name = current.Name
	}
	if req.Reference == "" {
		req.Reference = string(current.Reference)
	}

	updated := *current
	if err := req.apply(&updated); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Update(r.Context(), &updated); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidReference),
			errors.Is(err, service.ErrInvalidWeights):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "profile not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update profile")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
