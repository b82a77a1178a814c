package handlers

import (
	"net/http"
	"strconv"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type RankingHandler struct {
	svc *service.RankingService
}

func NewRankingHandler(svc *service.RankingService) *RankingHandler {
	return &RankingHandler{svc: svc}
}

// Top returns subjects ordered by the harmony of their most recent
// assessment.
func (h *RankingHandler) Top(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	standings, err := h.svc.Top(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load standings")
		return
	}
	if standings == nil {
		standings = []domain.SubjectStanding{}
	}
	writeJSON(w, http.StatusOK, standings)
}

// Rank returns one subject's leaderboard position.
func (h *RankingHandler) Rank(w http.ResponseWriter, r *http.Request) {
	subjectID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid subject id")
		return
	}

	rank, err := h.svc.RankOf(r.Context(), subjectID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to look up rank")
		return
	}
	if rank < 0 {
		writeError(w, http.StatusNotFound, "subject not ranked")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"subject_id": subjectID, "rank": rank})
}
