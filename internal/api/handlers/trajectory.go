package handlers

import (
	"errors"
	"net/http"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TrajectoryHandler struct {
	svc *service.TrajectoryService
}

func NewTrajectoryHandler(svc *service.TrajectoryService) *TrajectoryHandler {
	return &TrajectoryHandler{svc: svc}
}

func (h *TrajectoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	traj, err := h.svc.Analyze(r.Context(), subjectID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNotFound):
			writeError(w, http.StatusNotFound, "subject not found")
		case errors.Is(err, service.ErrTrajectoryEmpty):
			writeError(w, http.StatusNotFound, "subject has no assessments")
		default:
			writeError(w, http.StatusInternalServerError, "failed to analyze trajectory")
		}
		return
	}

	writeJSON(w, http.StatusOK, traj)
}
