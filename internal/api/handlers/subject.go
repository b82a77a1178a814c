package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type SubjectHandler struct {
	svc *service.SubjectService
}

func NewSubjectHandler(svc *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{svc: svc}
}

type createSubjectRequest struct {
	ProfileID string         `json:"profile_id"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSubjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profileID, err := uuid.Parse(req.ProfileID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid profile_id")
		return
	}

	subject := &domain.Subject{
		ProfileID: profileID,
		Name:      req.Name,
		Kind:      domain.SubjectKind(req.Kind),
		Metadata:  req.Metadata,
	}

	if err := h.svc.Create(r.Context(), subject); err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNameMissing),
			errors.Is(err, service.ErrSubjectInvalidKind):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusBadRequest, "profile not found")
		case errors.Is(err, service.ErrSubjectConflict):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to create subject")
		}
		return
	}

	writeJSON(w, http.StatusCreated, subject)
}

func (h *SubjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	subject, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			writeError(w, http.StatusNotFound, "subject not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get subject")
		return
	}

	writeJSON(w, http.StatusOK, subject)
}

func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	var profileID *uuid.UUID
	if raw := r.URL.Query().Get("profile_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid profile_id")
			return
		}
		profileID = &id
	}

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	subjects, err := h.svc.List(r.Context(), profileID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list subjects")
		return
	}
	if subjects == nil {
		subjects = []domain.Subject{}
	}
	writeJSON(w, http.StatusOK, subjects)
}
