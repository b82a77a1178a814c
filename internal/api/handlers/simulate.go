package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
)

type SimulateHandler struct{}

func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{}
}

type simulateRequest struct {
	Initial  ljpw.Vector          `json:"initial"`
	Velocity ljpw.Vector          `json:"velocity,omitempty"`
	Params   *ljpw.DynamicsParams `json:"params,omitempty"`
	Steps    int                  `json:"steps,omitempty"`
}

// Simulate runs the coupled-oscillator model from an initial state.
func (h *SimulateHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	params := ljpw.DefaultDynamicsParams()
	if req.Params != nil {
		params = *req.Params
	}
	if req.Steps > 0 {
		params.Steps = req.Steps
	}
	if params.Steps > 100000 {
		writeError(w, http.StatusBadRequest, "steps must be at most 100000")
		return
	}

	result, err := ljpw.Simulate(req.Initial, req.Velocity, params)
	if err != nil {
		if errors.Is(err, ljpw.ErrBadSimulation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if errors.Is(err, ljpw.ErrDivergedSimulation) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
