package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AssessmentHandler struct {
	svc *service.AssessmentService
}

func NewAssessmentHandler(svc *service.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

type createAssessmentRequest struct {
	SubjectID  string      `json:"subject_id"`
	Score      ljpw.Vector `json:"score"`
	ObservedAt *time.Time  `json:"observed_at,omitempty"`
	Event      string      `json:"event,omitempty"`
	Source     string      `json:"source,omitempty"`
	Confidence float64     `json:"confidence,omitempty"`
}

func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject_id")
		return
	}

	a := &domain.Assessment{
		SubjectID:  subjectID,
		Score:      req.Score,
		Event:      req.Event,
		Source:     domain.Source(req.Source),
		Confidence: req.Confidence,
	}
	if req.ObservedAt != nil {
		a.ObservedAt = *req.ObservedAt
	}

	if err := h.svc.Create(r.Context(), a); err != nil {
		switch {
		case errors.Is(err, service.ErrAssessmentInvalidSource):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSubjectNotFound):
			writeError(w, http.StatusBadRequest, "subject not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create assessment")
		}
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

func (h *AssessmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid assessment id")
		return
	}

	a, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAssessmentNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get assessment")
		return
	}

	writeJSON(w, http.StatusOK, a)
}

func (h *AssessmentHandler) ListBySubject(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	assessments, err := h.svc.ListBySubject(r.Context(), subjectID)
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			writeError(w, http.StatusNotFound, "subject not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list assessments")
		return
	}
	if assessments == nil {
		assessments = []domain.Assessment{}
	}
	writeJSON(w, http.StatusOK, assessments)
}

type similarRequest struct {
	Score       ljpw.Vector `json:"score"`
	Limit       int         `json:"limit,omitempty"`
	MaxDistance float64     `json:"max_distance,omitempty"`
}

// FindSimilar searches stored assessments by LJPW signature proximity.
func (h *AssessmentHandler) FindSimilar(w http.ResponseWriter, r *http.Request) {
	var req similarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 10
	}

	results, err := h.svc.FindSimilar(r.Context(), req.Score, domain.SimilarOpts{
		Limit:       req.Limit,
		MaxDistance: req.MaxDistance,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search assessments")
		return
	}
	if results == nil {
		results = []domain.AssessmentWithDistance{}
	}
	writeJSON(w, http.StatusOK, results)
}
